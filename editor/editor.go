// ABOUTME: The Editor - canonical project state plus validated mutation operations
// ABOUTME: Structural edits are cloned, validated, committed atomically, and recorded as commands

package editor

import "cutline/timeline"

// PlaybackState is the transport state machine.
type PlaybackState int

// Transport states.
const (
	Stopped PlaybackState = iota
	Playing
	Paused
)

// String returns a display label for the playback state.
func (ps PlaybackState) String() string {
	switch ps {
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	}

	return "stopped"
}

// MinClipDuration is the resize floor: one frame at 30 fps.
const MinClipDuration = timeline.Time(33 * 1000)

// State is the full editor state handed to consumers. Every mutation
// replaces it with a new value; callers must treat it as read-only.
type State struct {
	Project  timeline.Project
	Selected map[string]struct{}
	Playback PlaybackState
	Dirty    bool
}

// Editor owns the project state and the undo/redo history.
// It is single-owner, single-goroutine state: all operations run to
// completion with no internal suspension, and readers always observe a
// fully applied (or fully rejected) mutation.
type Editor struct {
	store   *stateStore
	history *History
}

// New creates an editor over a project with an empty history.
func New(project timeline.Project, maxHistory int) *Editor {
	project.RecomputeDuration()
	project.SyncTrackIndices()

	return &Editor{
		store: &stateStore{state: State{
			Project:  project,
			Selected: map[string]struct{}{},
		}},
		history: NewHistory(maxHistory),
	}
}

// State returns the current editor state value.
func (e *Editor) State() State {
	return e.store.state
}

// Project returns the current project value.
func (e *Editor) Project() timeline.Project {
	return e.store.state.Project
}

// LoadProject replaces all state with a freshly loaded project and
// clears the history.
func (e *Editor) LoadProject(p timeline.Project) {
	p.RecomputeDuration()
	p.SyncTrackIndices()

	e.store = &stateStore{state: State{
		Project:  p,
		Selected: map[string]struct{}{},
	}}
	e.history.Clear()
}

// Undo reverses the most recent edit. Returns false when the history is
// empty or the inverse could no longer apply.
func (e *Editor) Undo() bool {
	if !e.history.Undo(e.store) {
		return false
	}

	return true
}

// Redo re-applies the most recently undone edit.
func (e *Editor) Redo() bool {
	return e.history.Redo(e.store)
}

// History exposes the undo/redo stacks for status display and tuning.
func (e *Editor) History() *History {
	return e.history
}

// ClearDirty marks the state as saved.
func (e *Editor) ClearDirty() {
	e.store.state.Dirty = false
}

// ========== Structural operations (validated, undoable) ==========

// AddTrack creates a named track of the given type and splices it in at
// the type's insertion position: video immediately after the last video
// track, audio at the very end, text and effect after the last video
// track. Always succeeds and returns the new track.
func (e *Editor) AddTrack(tt timeline.TrackType) timeline.Track {
	p := &e.store.state.Project
	track := timeline.NewTrack(tt, timeline.TrackName(tt, p.TrackCount(tt)+1))

	index := len(p.Tracks)
	if tt != timeline.TrackAudio {
		index = 0

		for i := range p.Tracks {
			if p.Tracks[i].Type == timeline.TrackVideo {
				index = i + 1
			}
		}
	}

	e.history.Execute(&AddTrackCommand{Track: track, Index: index}, e.store)

	return track
}

// RemoveTrack deletes a track and everything on it. Clips on the track
// are dropped from the selection. Returns false for an unknown id.
func (e *Editor) RemoveTrack(trackID string) bool {
	ti := e.store.state.Project.FindTrack(trackID)
	if ti < 0 {
		return false
	}

	cmd := &DeleteTrackCommand{
		Track: e.store.state.Project.Tracks[ti].Clone(),
		Index: ti,
	}

	return e.history.Execute(cmd, e.store)
}

// AddClip places a clip on the identified track. Rejects the clip if the
// track does not exist, the duration is not positive, or the placement
// would overlap an existing clip on that track.
func (e *Editor) AddClip(trackID string, clip timeline.Clip) bool {
	ti := e.store.state.Project.FindTrack(trackID)
	if ti < 0 {
		return false
	}

	if clip.Duration <= timeline.Zero {
		return false
	}

	clip = clip.WithTrackIndex(ti)
	if !e.store.state.Project.Tracks[ti].HasRoom(clip.TimelineRange(), "") {
		return false
	}

	return e.history.Execute(&AddClipCommand{TrackID: trackID, Clip: clip}, e.store)
}

// RemoveClip deletes a clip wherever it lives and drops it from the
// selection. Returns false if no track contains it.
func (e *Editor) RemoveClip(clipID string) bool {
	ti, ci, ok := e.store.state.Project.FindClip(clipID)
	if !ok {
		return false
	}

	cmd := &DeleteClipCommand{
		TrackID: e.store.state.Project.Tracks[ti].ID,
		Clip:    e.store.state.Project.Tracks[ti].Clips[ci],
	}

	return e.history.Execute(cmd, e.store)
}

// MoveClip repositions a clip in time, optionally onto another track
// (pass nil to stay on the current track). The new start is clamped to
// zero; the move is rejected if the track index is out of bounds or the
// clip would overlap any other clip on the target track.
func (e *Editor) MoveClip(clipID string, newStart timeline.Time, newTrackIndex *int) bool {
	p := &e.store.state.Project

	ti, ci, ok := p.FindClip(clipID)
	if !ok {
		return false
	}

	target := ti
	if newTrackIndex != nil {
		target = *newTrackIndex
	}

	if target < 0 || target >= len(p.Tracks) {
		return false
	}

	if newStart < timeline.Zero {
		newStart = timeline.Zero
	}

	clip := p.Tracks[ti].Clips[ci]
	moved := clip.WithStart(newStart).WithTrackIndex(target)

	if !p.Tracks[target].HasRoom(moved.TimelineRange(), clipID) {
		return false
	}

	return e.history.Execute(&MoveClipCommand{Before: clip, After: moved}, e.store)
}

// ResizeClip changes a clip's duration. The floor is one frame at 30 fps;
// durations beyond the source length clamp down to it. With fromStart the
// trim delta shifts both TimelineStart and SourceStart forward, and the
// resize is rejected if either would go negative. Any resize is rejected
// if the result would overlap a neighbour.
func (e *Editor) ResizeClip(clipID string, newDuration timeline.Time, fromStart bool) bool {
	p := &e.store.state.Project

	ti, ci, ok := p.FindClip(clipID)
	if !ok {
		return false
	}

	if newDuration < MinClipDuration {
		return false
	}

	clip := p.Tracks[ti].Clips[ci]
	if newDuration > clip.SourceDuration {
		newDuration = clip.SourceDuration
	}

	resized := clip
	if fromStart {
		delta := clip.Duration - newDuration

		start := clip.TimelineStart + delta
		sourceStart := clip.SourceStart + delta

		if start < timeline.Zero || sourceStart < timeline.Zero {
			return false
		}

		resized = clip.WithTrim(start, newDuration, sourceStart)
	} else {
		resized = clip.WithTrim(clip.TimelineStart, newDuration, clip.SourceStart)
	}

	if !p.Tracks[ti].HasRoom(resized.TimelineRange(), clipID) {
		return false
	}

	return e.history.Execute(&ResizeClipCommand{Before: clip, After: resized}, e.store)
}

// RenameClip changes a clip's display name.
func (e *Editor) RenameClip(clipID, name string) bool {
	ti, ci, ok := e.store.state.Project.FindClip(clipID)
	if !ok {
		return false
	}

	cmd := NewChangeClipProperty("rename clip", e.store.state.Project.Tracks[ti].Clips[ci], name,
		func(c timeline.Clip, v string) timeline.Clip { return c.WithName(v) })

	return e.history.Execute(cmd, e.store)
}

// MoveClips shifts a group of clips by the same delta as one undoable
// edit, e.g. dragging a multi-clip selection. The delta is clamped so no
// clip starts before zero. The whole move is rejected if any shifted
// clip would overlap a clip outside the group.
func (e *Editor) MoveClips(clipIDs []string, delta timeline.Time) bool {
	if len(clipIDs) == 0 {
		return false
	}

	p := &e.store.state.Project

	type placement struct {
		clip  timeline.Clip
		track int
	}

	group := make(map[string]struct{}, len(clipIDs))
	moves := make([]placement, 0, len(clipIDs))

	for _, id := range clipIDs {
		ti, ci, ok := p.FindClip(id)
		if !ok {
			return false
		}

		group[id] = struct{}{}
		moves = append(moves, placement{clip: p.Tracks[ti].Clips[ci], track: ti})
	}

	// Clamp the delta so the earliest clip lands at zero, not negative
	for _, m := range moves {
		if m.clip.TimelineStart+delta < timeline.Zero {
			delta = -m.clip.TimelineStart
		}
	}

	// Each shifted clip must clear every clip on its track outside the
	// group; clips inside the group keep their relative spacing so they
	// cannot collide with each other.
	for _, m := range moves {
		shifted := m.clip.TimelineRange()
		shifted.Start += delta

		for i := range p.Tracks[m.track].Clips {
			other := &p.Tracks[m.track].Clips[i]
			if _, inGroup := group[other.ID]; inGroup {
				continue
			}

			if other.TimelineRange().Overlaps(shifted) {
				return false
			}
		}
	}

	composite := &CompositeCommand{Label: "move clips"}
	for _, m := range moves {
		composite.Commands = append(composite.Commands, &MoveClipCommand{
			Before: m.clip,
			After:  m.clip.WithStart(m.clip.TimelineStart + delta),
		})
	}

	return e.history.Execute(composite, e.store)
}
