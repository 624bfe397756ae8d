// ABOUTME: Track entity - an ordered, typed lane of non-overlapping clips
// ABOUTME: Provides clip lookup, insertion and removal over the clip list

package timeline

// TrackType identifies what kind of lane a track is.
type TrackType string

// Track lane kinds. Ordering within a project is significant: video tracks
// cluster at the top, audio tracks at the bottom.
const (
	TrackVideo  TrackType = "video"
	TrackAudio  TrackType = "audio"
	TrackText   TrackType = "text"
	TrackEffect TrackType = "effect"
)

// Label returns the display label used when naming new tracks.
func (tt TrackType) Label() string {
	switch tt {
	case TrackVideo:
		return "Video"
	case TrackAudio:
		return "Audio"
	case TrackText:
		return "Text"
	case TrackEffect:
		return "Effect"
	}

	return "Track"
}

// Track is an ordered lane holding clips of one type. The track's identity
// is stable; its clip list is freely mutated by the editor.
type Track struct {
	ID    string    `json:"id"`
	Type  TrackType `json:"type"`
	Name  string    `json:"name"`
	Clips []Clip    `json:"clips"`
}

// NewTrack creates an empty named track.
func NewTrack(trackType TrackType, name string) Track {
	return Track{
		ID:   NewID(),
		Type: trackType,
		Name: name,
	}
}

// FindClip returns the index of the clip with the given id, or -1.
func (t *Track) FindClip(clipID string) int {
	for i := range t.Clips {
		if t.Clips[i].ID == clipID {
			return i
		}
	}

	return -1
}

// RemoveClip removes the clip with the given id from the track.
// Returns false if the track does not contain it.
func (t *Track) RemoveClip(clipID string) bool {
	i := t.FindClip(clipID)
	if i < 0 {
		return false
	}

	t.Clips = append(t.Clips[:i], t.Clips[i+1:]...)

	return true
}

// HasRoom reports whether r can be placed on the track without
// overlapping any clip other than the one with excludeID.
func (t *Track) HasRoom(r Range, excludeID string) bool {
	for i := range t.Clips {
		if t.Clips[i].ID == excludeID {
			continue
		}

		if t.Clips[i].TimelineRange().Overlaps(r) {
			return false
		}
	}

	return true
}

// Clone returns a deep copy of the track.
func (t Track) Clone() Track {
	clipsCopy := make([]Clip, len(t.Clips))
	copy(clipsCopy, t.Clips)
	t.Clips = clipsCopy

	return t
}
