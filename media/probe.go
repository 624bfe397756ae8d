// ABOUTME: Media file probing via ffprobe
// ABOUTME: Extracts duration and frame size from ffprobe's JSON output

package media

import (
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
)

// Info is what the editor needs to know about a source file.
type Info struct {
	DurationMicros int64
	Width          int
	Height         int
}

// Prober resolves a path to media info. Production code uses Probe or a
// Cache's CachedProbe; tests substitute a stub.
type Prober func(path string) (Info, error)

// Probe runs ffprobe on the file and parses duration and frame size
func Probe(path string) (Info, error) {
	cmd := exec.Command("ffprobe", "-v", "quiet", "-print_format", "json",
		"-show_format", "-show_streams", path)

	output, err := cmd.Output()
	if err != nil {
		return Info{}, fmt.Errorf("ffprobe failed for %s: %w", path, err)
	}

	return parseProbeOutput(output)
}

// parseProbeOutput decodes ffprobe's JSON. Duration comes from the
// format section; width and height from the first stream that has them
// (audio-only files leave them zero).
func parseProbeOutput(output []byte) (Info, error) {
	var result struct {
		Format struct {
			Duration string `json:"duration"`
		} `json:"format"`
		Streams []struct {
			Width  int `json:"width"`
			Height int `json:"height"`
		} `json:"streams"`
	}

	if err := json.Unmarshal(output, &result); err != nil {
		return Info{}, fmt.Errorf("failed to parse ffprobe output: %w", err)
	}

	seconds, err := strconv.ParseFloat(result.Format.Duration, 64)
	if err != nil {
		return Info{}, fmt.Errorf("failed to parse duration %q: %w", result.Format.Duration, err)
	}

	info := Info{DurationMicros: int64(seconds * 1e6)}

	for _, s := range result.Streams {
		if s.Width > 0 && s.Height > 0 {
			info.Width = s.Width
			info.Height = s.Height

			break
		}
	}

	return info, nil
}
