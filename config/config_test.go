// ABOUTME: Tests for configuration load/save functionality
// ABOUTME: Validates TOML parsing, default fallback, and value sanitizing

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.MaxHistory != 50 {
		t.Errorf("Expected MaxHistory 50, got %d", cfg.MaxHistory)
	}

	if !cfg.Autosave {
		t.Error("Expected Autosave enabled by default")
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	// Create temp file
	tmpfile, err := os.CreateTemp(t.TempDir(), "cutline-*.toml")
	if err != nil {
		t.Fatal(err)
	}

	defer os.Remove(tmpfile.Name())
	tmpfile.Close()

	cfg := DefaultConfig()
	cfg.MaxHistory = 200
	cfg.NudgeMillis = 250
	cfg.Autosave = false

	if err := SaveConfig(tmpfile.Name(), cfg); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	// Load it back
	loaded, err := LoadConfig(tmpfile.Name())
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if loaded.MaxHistory != 200 {
		t.Errorf("MaxHistory mismatch: got %d, want 200", loaded.MaxHistory)
	}

	if loaded.NudgeMillis != 250 {
		t.Errorf("NudgeMillis mismatch: got %d, want 250", loaded.NudgeMillis)
	}

	if loaded.Autosave {
		t.Error("Autosave should round-trip as disabled")
	}
}

func TestLoadNonExistentConfig(t *testing.T) {
	// Loading non-existent file should return defaults without error
	cfg, err := LoadConfig("/nonexistent/path/config.toml")
	if err != nil {
		t.Errorf("Expected no error for non-existent file, got: %v", err)
	}

	defaults := DefaultConfig()
	if cfg.MaxHistory != defaults.MaxHistory {
		t.Errorf("Expected default MaxHistory %d, got %d", defaults.MaxHistory, cfg.MaxHistory)
	}
}

func TestLoadInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("max_history = \"not a number"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err == nil {
		t.Error("Expected an error for malformed TOML")
	}

	// Still usable defaults
	if cfg.MaxHistory != DefaultConfig().MaxHistory {
		t.Errorf("Expected default MaxHistory on parse failure, got %d", cfg.MaxHistory)
	}
}

func TestLoadSanitizesValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cutline.toml")
	content := "max_history = 0\nnudge_millis = -5\nvideo_tracks = 0\ndefault_zoom = -1.0\n"

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	defaults := DefaultConfig()

	if cfg.MaxHistory != defaults.MaxHistory {
		t.Errorf("MaxHistory = %d, want default %d", cfg.MaxHistory, defaults.MaxHistory)
	}

	if cfg.NudgeMillis != defaults.NudgeMillis {
		t.Errorf("NudgeMillis = %d, want default %d", cfg.NudgeMillis, defaults.NudgeMillis)
	}

	if cfg.VideoTracks != defaults.VideoTracks {
		t.Errorf("VideoTracks = %d, want default %d", cfg.VideoTracks, defaults.VideoTracks)
	}

	if cfg.DefaultZoom != defaults.DefaultZoom {
		t.Errorf("DefaultZoom = %v, want default %v", cfg.DefaultZoom, defaults.DefaultZoom)
	}
}

func TestSharedConfig(t *testing.T) {
	sc := NewSharedConfig(DefaultConfig())

	cfg := sc.Get()
	cfg.MaxHistory = 10
	sc.Update(cfg)

	if got := sc.Get().MaxHistory; got != 10 {
		t.Errorf("MaxHistory = %d, want 10", got)
	}
}
