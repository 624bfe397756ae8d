// ABOUTME: Project aggregate root - tracks, clips, playhead and view state
// ABOUTME: Duration is a derived cache recomputed after every structural change

package timeline

import "fmt"

// Zoom limits in pixels per second of timeline.
const (
	MinZoom = 10.0
	MaxZoom = 1000.0
)

// Settings holds per-project render parameters.
type Settings struct {
	FrameRate float64 `json:"frameRate"`
	Width     int     `json:"width"`
	Height    int     `json:"height"`
}

// DefaultSettings returns the settings applied to new projects.
func DefaultSettings() Settings {
	return Settings{FrameRate: 30, Width: 1920, Height: 1080}
}

// Project is the aggregate root for one edit. Duration is a cache of the
// maximum clip end over all tracks; it is recomputed, never hand-set.
type Project struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Tracks   []Track  `json:"tracks"`
	Settings Settings `json:"settings"`
	Duration Time     `json:"durationUs"`
	Playhead Time     `json:"playheadUs"`
	InPoint  *Time    `json:"inPointUs,omitempty"`
	OutPoint *Time    `json:"outPointUs,omitempty"`
	Zoom     float64  `json:"zoom"`
	Scroll   float64  `json:"scroll"`
}

// NewProject creates a named project with the requested number of empty
// video and audio tracks, video lanes first.
func NewProject(name string, videoTracks, audioTracks int) Project {
	p := Project{
		ID:       NewID(),
		Name:     name,
		Settings: DefaultSettings(),
		Zoom:     100,
	}

	for i := 0; i < videoTracks; i++ {
		p.Tracks = append(p.Tracks, NewTrack(TrackVideo, TrackName(TrackVideo, i+1)))
	}

	for i := 0; i < audioTracks; i++ {
		p.Tracks = append(p.Tracks, NewTrack(TrackAudio, TrackName(TrackAudio, i+1)))
	}

	return p
}

// TrackName builds the display name for the nth track of a type, e.g. "Video 2".
func TrackName(tt TrackType, n int) string {
	return fmt.Sprintf("%s %d", tt.Label(), n)
}

// Clone returns a deep copy of the project. The copy shares nothing
// mutable with the original, so a rejected mutation computed against a
// clone leaves the prior value untouched.
func (p Project) Clone() Project {
	tracksCopy := make([]Track, len(p.Tracks))
	for i := range p.Tracks {
		tracksCopy[i] = p.Tracks[i].Clone()
	}

	p.Tracks = tracksCopy

	if p.InPoint != nil {
		in := *p.InPoint
		p.InPoint = &in
	}

	if p.OutPoint != nil {
		out := *p.OutPoint
		p.OutPoint = &out
	}

	return p
}

// FindTrack returns the index of the track with the given id, or -1.
func (p *Project) FindTrack(trackID string) int {
	for i := range p.Tracks {
		if p.Tracks[i].ID == trackID {
			return i
		}
	}

	return -1
}

// FindClip locates a clip anywhere in the project.
// Returns the track index, clip index within the track, and whether found.
func (p *Project) FindClip(clipID string) (trackIdx, clipIdx int, ok bool) {
	for ti := range p.Tracks {
		if ci := p.Tracks[ti].FindClip(clipID); ci >= 0 {
			return ti, ci, true
		}
	}

	return 0, 0, false
}

// TrackCount returns the number of tracks of the given type.
func (p *Project) TrackCount(tt TrackType) int {
	count := 0

	for i := range p.Tracks {
		if p.Tracks[i].Type == tt {
			count++
		}
	}

	return count
}

// RecomputeDuration refreshes the cached project duration from clip ends.
func (p *Project) RecomputeDuration() {
	var max Time

	for ti := range p.Tracks {
		for ci := range p.Tracks[ti].Clips {
			if end := p.Tracks[ti].Clips[ci].TimelineEnd(); end > max {
				max = end
			}
		}
	}

	p.Duration = max
}

// SyncTrackIndices rewrites every clip's TrackIndex to match the position
// of the track that holds it. Called after track insertion, removal or
// reordering.
func (p *Project) SyncTrackIndices() {
	for ti := range p.Tracks {
		for ci := range p.Tracks[ti].Clips {
			p.Tracks[ti].Clips[ci].TrackIndex = ti
		}
	}
}

// ClipBoundaries returns every clip start and end across all tracks,
// unsorted and with duplicates. Used for playhead snapping.
func (p *Project) ClipBoundaries() []Time {
	var bounds []Time

	for ti := range p.Tracks {
		for ci := range p.Tracks[ti].Clips {
			c := &p.Tracks[ti].Clips[ci]
			bounds = append(bounds, c.TimelineStart, c.TimelineEnd())
		}
	}

	return bounds
}
