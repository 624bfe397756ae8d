// ABOUTME: Tests for probing, naming, caching, and clip construction
// ABOUTME: Stubs the prober so no ffprobe binary is needed

package media

import (
	"os"
	"path/filepath"
	"testing"

	"cutline/timeline"
)

func TestParseProbeOutput(t *testing.T) {
	output := []byte(`{
		"streams": [
			{"codec_type": "video", "width": 1920, "height": 1080},
			{"codec_type": "audio"}
		],
		"format": {"duration": "12.500000"}
	}`)

	info, err := parseProbeOutput(output)
	if err != nil {
		t.Fatalf("parseProbeOutput failed: %v", err)
	}

	if info.DurationMicros != 12500000 {
		t.Errorf("DurationMicros = %d, want 12500000", info.DurationMicros)
	}

	if info.Width != 1920 || info.Height != 1080 {
		t.Errorf("frame size = %dx%d, want 1920x1080", info.Width, info.Height)
	}
}

func TestParseProbeOutputAudioOnly(t *testing.T) {
	output := []byte(`{
		"streams": [{"codec_type": "audio"}],
		"format": {"duration": "3.000000"}
	}`)

	info, err := parseProbeOutput(output)
	if err != nil {
		t.Fatalf("parseProbeOutput failed: %v", err)
	}

	if info.DurationMicros != 3000000 {
		t.Errorf("DurationMicros = %d, want 3000000", info.DurationMicros)
	}

	if info.Width != 0 || info.Height != 0 {
		t.Errorf("audio-only file should have no frame size, got %dx%d", info.Width, info.Height)
	}
}

func TestParseProbeOutputInvalid(t *testing.T) {
	if _, err := parseProbeOutput([]byte("not json")); err == nil {
		t.Error("expected an error for malformed output")
	}

	if _, err := parseProbeOutput([]byte(`{"format": {"duration": "n/a"}}`)); err == nil {
		t.Error("expected an error for an unparsable duration")
	}
}

func TestClipNameFallback(t *testing.T) {
	// No such file: name falls back to the basename without extension
	if got := ClipName("/media/holiday footage.mp4"); got != "holiday footage" {
		t.Errorf("ClipName = %q, want %q", got, "holiday footage")
	}

	// A real file that is not taggable media behaves the same
	path := filepath.Join(t.TempDir(), "notes.mp3")
	if err := os.WriteFile(path, []byte("not audio"), 0644); err != nil {
		t.Fatal(err)
	}

	if got := ClipName(path); got != "notes" {
		t.Errorf("ClipName = %q, want %q", got, "notes")
	}
}

func TestTypeForFile(t *testing.T) {
	tests := []struct {
		path string
		want timeline.ClipType
	}{
		{"/media/a.mp4", timeline.ClipVideo},
		{"/media/b.MOV", timeline.ClipVideo},
		{"/media/c.mp3", timeline.ClipAudio},
		{"/media/d.FLAC", timeline.ClipAudio},
		{"/media/e", timeline.ClipVideo},
	}

	for _, tt := range tests {
		if got := TypeForFile(tt.path); got != tt.want {
			t.Errorf("TypeForFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestClipFromFile(t *testing.T) {
	probe := func(path string) (Info, error) {
		return Info{DurationMicros: 5000000, Width: 1280, Height: 720}, nil
	}

	clip, err := ClipFromFile("/media/intro.mp4", timeline.FromSeconds(2), probe)
	if err != nil {
		t.Fatalf("ClipFromFile failed: %v", err)
	}

	if clip.Type != timeline.ClipVideo {
		t.Errorf("Type = %v, want video", clip.Type)
	}

	if clip.SourceDuration != timeline.FromSeconds(5) {
		t.Errorf("SourceDuration = %v, want 5s", clip.SourceDuration)
	}

	if clip.Duration != clip.SourceDuration {
		t.Errorf("new clip should cover the full source, duration %v", clip.Duration)
	}

	if clip.TimelineStart != timeline.FromSeconds(2) {
		t.Errorf("TimelineStart = %v, want 2s", clip.TimelineStart)
	}

	if clip.Name != "intro" {
		t.Errorf("Name = %q, want %q", clip.Name, "intro")
	}
}

func TestClipFromFileZeroDuration(t *testing.T) {
	probe := func(path string) (Info, error) {
		return Info{DurationMicros: 0}, nil
	}

	if _, err := ClipFromFile("/media/broken.mp4", timeline.Zero, probe); err == nil {
		t.Error("expected an error for a zero-duration source")
	}
}

func TestCache(t *testing.T) {
	cache, err := OpenCache(filepath.Join(t.TempDir(), "cache", "probes.db"))
	if err != nil {
		t.Fatalf("OpenCache failed: %v", err)
	}
	defer cache.Close()

	info := Info{DurationMicros: 7000000, Width: 640, Height: 480}

	// Miss before any store
	if _, ok, err := cache.Get("/media/a.mp4", 100); err != nil || ok {
		t.Fatalf("Get before Put: ok=%v err=%v, want miss", ok, err)
	}

	if err := cache.Put("/media/a.mp4", 100, info); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, ok, err := cache.Get("/media/a.mp4", 100)
	if err != nil || !ok {
		t.Fatalf("Get after Put: ok=%v err=%v, want hit", ok, err)
	}

	if got != info {
		t.Errorf("cached info = %+v, want %+v", got, info)
	}

	// A different mtime is a different file version
	if _, ok, _ := cache.Get("/media/a.mp4", 200); ok {
		t.Error("changed mtime should miss the cache")
	}
}

func TestCachedProbe(t *testing.T) {
	cache, err := OpenCache(filepath.Join(t.TempDir(), "probes.db"))
	if err != nil {
		t.Fatalf("OpenCache failed: %v", err)
	}
	defer cache.Close()

	path := filepath.Join(t.TempDir(), "clip.mp4")
	if err := os.WriteFile(path, []byte("fake media"), 0644); err != nil {
		t.Fatal(err)
	}

	calls := 0
	probe := func(string) (Info, error) {
		calls++

		return Info{DurationMicros: 1000000}, nil
	}

	for i := 0; i < 3; i++ {
		info, err := cache.CachedProbe(path, probe)
		if err != nil {
			t.Fatalf("CachedProbe failed: %v", err)
		}

		if info.DurationMicros != 1000000 {
			t.Errorf("DurationMicros = %d, want 1000000", info.DurationMicros)
		}
	}

	if calls != 1 {
		t.Errorf("prober ran %d times, want 1 (cache hits after the first)", calls)
	}
}

func TestCachedProbeMissingFile(t *testing.T) {
	cache, err := OpenCache(filepath.Join(t.TempDir(), "probes.db"))
	if err != nil {
		t.Fatalf("OpenCache failed: %v", err)
	}
	defer cache.Close()

	probe := func(string) (Info, error) { return Info{}, nil }

	if _, err := cache.CachedProbe("/nonexistent/clip.mp4", probe); err == nil {
		t.Error("expected an error for a missing file")
	}
}
