// ABOUTME: Interfaces decoupling the command layer from concrete editor state
// ABOUTME: Commands mutate the project only through ProjectNotifier methods

// Package editor holds the canonical project state and exposes the
// mutation operations of the timeline editor. Every structural mutation
// is validated against the current project, captured as a reversible
// command, and executed through the undo/redo history, so any edit can
// be unwound. Rejected mutations leave the prior state untouched.
package editor

import "cutline/timeline"

// ProjectNotifier is the mutation surface commands operate against.
// The methods are primitives: they apply changes verbatim, without
// placement validation, and report false only when the referenced entity
// no longer exists. Each call replaces the project atomically, so a
// failed call leaves state unchanged.
type ProjectNotifier interface {
	// UpdateProject replaces the whole project value.
	UpdateProject(p timeline.Project)

	// UpdateClip replaces the clip with the same id. If the clip's
	// TrackIndex differs from its current track, the clip moves to the
	// indexed track.
	UpdateClip(c timeline.Clip) bool

	// AddClip appends a clip to the identified track.
	AddClip(trackID string, c timeline.Clip) bool

	// RemoveClip deletes a clip wherever it lives.
	RemoveClip(clipID string) bool

	// AddTrack splices a track in at the given position.
	AddTrack(t timeline.Track, index int)

	// RemoveTrack deletes the identified track and everything on it.
	RemoveTrack(trackID string) bool
}
