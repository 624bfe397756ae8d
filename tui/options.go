// ABOUTME: TUI mode configuration and command-line options
// ABOUTME: Defines input parameters and injected dependencies for running the TUI

package tui

import "cutline/timeline"

// Options contains configuration for running the TUI
type Options struct {
	ProjectPath string   // Path to the project file
	OutputPath  string   // Path for saving (defaults to ProjectPath)
	MediaFiles  []string // Files preloaded into the media bin
	DryRun      bool     // If true, don't save changes to disk
	DebugLog    bool     // Enable debug logging to file
}

// Dependencies holds all external dependencies for the TUI
// This allows for clean dependency injection and easy testing
type Dependencies struct {
	Config      ConfigProvider
	LoadProject func(path string) (timeline.Project, error)
	SaveProject func(path string, p timeline.Project) error
	BuildClip   func(path string, start timeline.Time) (timeline.Clip, error)
	Debugf      func(format string, args ...interface{})
	ConfigPath  string
}
