// ABOUTME: Editor configuration management
// ABOUTME: Handles loading/saving TOML config files with fallback to defaults

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
)

// EditorConfig holds all tunable editor parameters
type EditorConfig struct {
	// Undo history depth
	MaxHistory int `toml:"max_history"`

	// Nudge step in milliseconds for keyboard clip moves
	NudgeMillis int64 `toml:"nudge_millis"`

	// Write the project file after every successful edit
	Autosave bool `toml:"autosave"`

	// Track layout for new projects
	VideoTracks int `toml:"video_tracks"`
	AudioTracks int `toml:"audio_tracks"`

	// Initial timeline zoom in pixels per second
	DefaultZoom float64 `toml:"default_zoom"`
}

// DefaultConfig returns the default editor configuration
func DefaultConfig() EditorConfig {
	return EditorConfig{
		MaxHistory:  50,
		NudgeMillis: 100,
		Autosave:    true,
		VideoTracks: 2,
		AudioTracks: 2,
		DefaultZoom: 100,
	}
}

// GetConfigPath returns the default config file path
// First tries current directory, then falls back to ~/.config/cutline/config.toml
func GetConfigPath() string {
	// First try current directory
	if _, err := os.Stat("./cutline.toml"); err == nil {
		return "./cutline.toml"
	}

	// Then try ~/.config/cutline/config.toml
	home, err := os.UserHomeDir()
	if err != nil {
		return "./cutline.toml"
	}

	return filepath.Join(home, ".config", "cutline", "config.toml")
}

// LoadConfig loads configuration from a TOML file
// If the file doesn't exist or fails to load, returns default config
func LoadConfig(path string) (EditorConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// File doesn't exist, return defaults
			return DefaultConfig(), nil
		}
		return DefaultConfig(), fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse TOML
	var config EditorConfig
	if err := toml.Unmarshal(data, &config); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config file: %w", err)
	}

	return sanitize(config), nil
}

// SaveConfig saves configuration to a TOML file
func SaveConfig(path string, config EditorConfig) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			fmt.Printf("Warning: failed to close config file: %v\n", err)
		}
	}()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// sanitize clamps hand-edited values back into workable ranges
func sanitize(config EditorConfig) EditorConfig {
	defaults := DefaultConfig()

	if config.MaxHistory < 1 {
		config.MaxHistory = defaults.MaxHistory
	}

	if config.NudgeMillis < 1 {
		config.NudgeMillis = defaults.NudgeMillis
	}

	if config.VideoTracks < 1 {
		config.VideoTracks = defaults.VideoTracks
	}

	if config.AudioTracks < 0 {
		config.AudioTracks = defaults.AudioTracks
	}

	if config.DefaultZoom <= 0 {
		config.DefaultZoom = defaults.DefaultZoom
	}

	return config
}

// SharedConfig wraps EditorConfig with a mutex for thread-safe access
// between the TUI and background save goroutines
type SharedConfig struct {
	mu     sync.RWMutex
	config EditorConfig
}

// NewSharedConfig wraps a starting config value
func NewSharedConfig(cfg EditorConfig) *SharedConfig {
	return &SharedConfig{config: cfg}
}

// Get returns a copy of the current config (thread-safe read)
func (sc *SharedConfig) Get() EditorConfig {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.config
}

// Update updates the config (thread-safe write)
func (sc *SharedConfig) Update(config EditorConfig) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.config = config
}
