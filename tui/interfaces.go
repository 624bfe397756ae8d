// ABOUTME: Interfaces defining dependencies for the TUI package
// ABOUTME: Allows clean separation and easy testing with mocks

package tui

import "cutline/config"

// ConfigProvider provides thread-safe access to editor configuration
type ConfigProvider interface {
	Get() config.EditorConfig
	Update(cfg config.EditorConfig)
}
