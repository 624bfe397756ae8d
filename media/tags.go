// ABOUTME: Clip naming from embedded media metadata
// ABOUTME: Reads ID3/Vorbis/MP4 tags with a filename fallback

package media

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"

	"cutline/timeline"
)

// ClipName derives a display name for a media file. The embedded tag
// title wins; files without readable tags fall back to the base filename
// without its extension.
func ClipName(path string) string {
	fallback := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	file, err := os.Open(path)
	if err != nil {
		return fallback
	}
	defer func() { _ = file.Close() }()

	metadata, err := tag.ReadFrom(file)
	if err != nil {
		return fallback
	}

	if title := metadata.Title(); title != "" {
		return title
	}

	return fallback
}

// TypeForFile guesses the clip type from the file extension.
func TypeForFile(path string) timeline.ClipType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3", ".wav", ".flac", ".ogg", ".m4a", ".aac":
		return timeline.ClipAudio
	}

	return timeline.ClipVideo
}
