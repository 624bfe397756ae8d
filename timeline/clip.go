// ABOUTME: Clip entity representing a placed, trimmed piece of source media
// ABOUTME: Clips are immutable values mutated only via With* copy helpers

package timeline

import "github.com/google/uuid"

// ClipType identifies what kind of media a clip carries.
type ClipType string

// Clip media kinds.
const (
	ClipVideo ClipType = "video"
	ClipAudio ClipType = "audio"
	ClipText  ClipType = "text"
)

// NewID returns a fresh opaque entity identifier.
func NewID() string {
	return uuid.New().String()
}

// Clip is one piece of media placed on a track. TimelineStart and Duration
// position it on the timeline; SourceStart and SourceDuration describe the
// trim window into the underlying media file.
type Clip struct {
	ID             string   `json:"id"`
	Type           ClipType `json:"type"`
	Name           string   `json:"name"`
	TimelineStart  Time     `json:"timelineStartUs"`
	Duration       Time     `json:"durationUs"`
	SourceStart    Time     `json:"sourceStartUs"`
	SourceDuration Time     `json:"sourceDurationUs"`
	SourcePath     string   `json:"sourcePath"`
	TrackIndex     int      `json:"trackIndex"`
}

// NewClip creates a clip covering the full source, positioned at start.
func NewClip(clipType ClipType, name, sourcePath string, start, sourceDuration Time) Clip {
	return Clip{
		ID:             NewID(),
		Type:           clipType,
		Name:           name,
		TimelineStart:  start,
		Duration:       sourceDuration,
		SourceStart:    Zero,
		SourceDuration: sourceDuration,
		SourcePath:     sourcePath,
	}
}

// TimelineEnd returns the exclusive end of the clip on the timeline.
func (c Clip) TimelineEnd() Time {
	return c.TimelineStart + c.Duration
}

// TimelineRange returns the half-open interval the clip occupies.
func (c Clip) TimelineRange() Range {
	return Range{Start: c.TimelineStart, Duration: c.Duration}
}

// WithStart returns a copy of the clip moved to a new timeline position.
func (c Clip) WithStart(start Time) Clip {
	c.TimelineStart = start

	return c
}

// WithTrackIndex returns a copy of the clip tagged with a track position.
func (c Clip) WithTrackIndex(index int) Clip {
	c.TrackIndex = index

	return c
}

// WithTrim returns a copy with a new trim window and timeline position.
func (c Clip) WithTrim(timelineStart, duration, sourceStart Time) Clip {
	c.TimelineStart = timelineStart
	c.Duration = duration
	c.SourceStart = sourceStart

	return c
}

// WithName returns a renamed copy of the clip.
func (c Clip) WithName(name string) Clip {
	c.Name = name

	return c
}
