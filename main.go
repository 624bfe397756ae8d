// ABOUTME: Entry point for the cutline timeline editor
// ABOUTME: Handles command-line parsing, profiling, and routing to TUI, view, and inspect modes

// Package main provides the entry point for cutline, a terminal non-linear video editor.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"

	"cutline/config"
	"cutline/media"
	"cutline/timeline"
	"cutline/tui"
)

func main() {
	os.Exit(run())
}

func run() int {
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to file")
	memprofile := flag.String("memprofile", "", "write memory profile to file")
	view := flag.Bool("view", false, "watch the project file read-only with live reload")
	inspect := flag.Bool("inspect", false, "print a project summary and exit")
	debug := flag.Bool("debug", false, "enable debug logging to cutline-debug.log")
	dryRun := flag.Bool("dry-run", false, "edit without writing changes to disk")
	output := flag.String("output", "", "write the project to this file (default: overwrite input)")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Println("Usage: cutline [flags] <project.json> [media files...]")
		fmt.Println("Example: cutline holiday.json clips/beach.mp4 clips/theme.mp3")
		fmt.Println("\nFlags:")
		flag.PrintDefaults()

		return 1
	}

	projectPath := args[0]
	mediaFiles := args[1:]

	if *cpuprofile != "" {
		stopCPUProfile := setupCPUProfile(*cpuprofile)
		defer stopCPUProfile()
	}

	if *memprofile != "" {
		defer writeMemoryProfile(*memprofile)
	}

	if *debug {
		if err := SetupDebugLog("cutline-debug.log"); err != nil {
			log.Printf("Failed to setup debug log: %v", err)

			return 1
		}
	}

	if *inspect {
		if err := RunInspect(projectPath, os.Stdout); err != nil {
			log.Printf("Inspect error: %v", err)

			return 1
		}

		return 0
	}

	if *view {
		if err := RunViewMode(projectPath); err != nil {
			log.Printf("View error: %v", err)

			return 1
		}

		return 0
	}

	opts := tui.Options{
		ProjectPath: projectPath,
		OutputPath:  *output,
		MediaFiles:  mediaFiles,
		DryRun:      *dryRun,
		DebugLog:    *debug,
	}

	if err := tui.Run(opts, buildDependencies(mediaFiles)); err != nil {
		log.Printf("TUI error: %v", err)

		return 1
	}

	return 0
}

// buildDependencies wires config, persistence, and media probing into the
// TUI. Probing goes through the sqlite cache when it opens; a cache
// failure falls back to direct ffprobe calls.
func buildDependencies(mediaFiles []string) tui.Dependencies {
	configPath := config.GetConfigPath()
	cfg, _ := config.LoadConfig(configPath)
	sharedCfg := config.NewSharedConfig(cfg)

	prober := media.Probe

	cache, err := media.OpenCache(cacheDBPath())
	if err != nil {
		debugf("[MAIN] Probe cache unavailable: %v", err)
	} else {
		prober = func(path string) (media.Info, error) {
			return cache.CachedProbe(path, media.Probe)
		}
	}

	// Warm the cache for the whole bin before the first add
	if len(mediaFiles) > 0 {
		media.ProbeAll(mediaFiles, prober)
	}

	return tui.Dependencies{
		Config:      sharedCfg,
		LoadProject: timeline.LoadProject,
		SaveProject: timeline.SaveProject,
		BuildClip: func(path string, start timeline.Time) (timeline.Clip, error) {
			return media.ClipFromFile(path, start, prober)
		},
		Debugf:     debugf,
		ConfigPath: configPath,
	}
}

// cacheDBPath returns the probe cache location under the user config dir
func cacheDBPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "cutline-cache.db"
	}

	return filepath.Join(configDir, "cutline", "cache.db")
}

// setupCPUProfile starts CPU profiling, returns cleanup function
func setupCPUProfile(filename string) func() {
	f, err := os.Create(filename)
	if err != nil {
		log.Fatalf("could not create CPU profile: %v", err)
	}

	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		log.Fatalf("could not start CPU profile: %v", err)
	}

	return func() {
		pprof.StopCPUProfile()

		if err := f.Close(); err != nil {
			log.Printf("Warning: failed to close CPU profile: %v", err)
		}
	}
}

// writeMemoryProfile writes memory profile to file
func writeMemoryProfile(filename string) {
	f, err := os.Create(filename)
	if err != nil {
		log.Printf("could not create memory profile: %v", err)

		return
	}

	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("Warning: failed to close memory profile: %v", err)
		}
	}()

	runtime.GC()

	if err := pprof.WriteHeapProfile(f); err != nil {
		log.Printf("could not write memory profile: %v", err)
	}
}
