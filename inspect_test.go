// ABOUTME: Tests for the inspect mode project summary
// ABOUTME: Writes a project to a temp file and checks the rendered output

package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"cutline/timeline"
)

func TestRunInspect(t *testing.T) {
	p := timeline.NewProject("summer cut", 1, 1)

	clip := timeline.NewClip(timeline.ClipVideo, "beach", "/media/beach.mp4",
		timeline.FromSeconds(2), timeline.FromSeconds(5))
	clip.TrackIndex = 0
	p.Tracks[0].Clips = append(p.Tracks[0].Clips, clip)
	p.RecomputeDuration()

	path := filepath.Join(t.TempDir(), "project.json")
	if err := timeline.SaveProject(path, p); err != nil {
		t.Fatalf("SaveProject failed: %v", err)
	}

	var buf bytes.Buffer
	if err := RunInspect(path, &buf); err != nil {
		t.Fatalf("RunInspect failed: %v", err)
	}

	out := buf.String()

	for _, want := range []string{
		"Project: summer cut",
		"Tracks: 1 video, 1 audio, 0 text",
		"beach",
		"/media/beach.mp4",
		"(empty)", // The audio track has no clips
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunInspectMissingFile(t *testing.T) {
	var buf bytes.Buffer
	if err := RunInspect("/nonexistent/project.json", &buf); err == nil {
		t.Error("expected error for missing project file")
	}
}
