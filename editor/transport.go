// ABOUTME: Playhead, zoom, scroll, playback, and in/out point operations
// ABOUTME: Pure view-state transitions - direct, always successful, not undoable

package editor

import "cutline/timeline"

// Zoom step applied by ZoomIn/ZoomOut.
const zoomFactor = 1.25

// SetPlayhead positions the playhead, clamped to [0, project duration].
func (e *Editor) SetPlayhead(t timeline.Time) {
	e.store.state.Project.Playhead = t.Clamp(timeline.Zero, e.store.state.Project.Duration)
}

// MovePlayhead shifts the playhead by a signed delta, clamped.
func (e *Editor) MovePlayhead(delta timeline.Time) {
	e.SetPlayhead(e.store.state.Project.Playhead + delta)
}

// JumpToNextClip moves the playhead to the nearest clip boundary (start
// or end, on any track) strictly after the current position. No-op when
// there is none.
func (e *Editor) JumpToNextClip() {
	playhead := e.store.state.Project.Playhead

	var nearest timeline.Time

	found := false

	for _, b := range e.store.state.Project.ClipBoundaries() {
		if b > playhead && (!found || b < nearest) {
			nearest = b
			found = true
		}
	}

	if found {
		e.SetPlayhead(nearest)
	}
}

// JumpToPreviousClip moves the playhead to the nearest clip boundary
// strictly before the current position. No-op when there is none.
func (e *Editor) JumpToPreviousClip() {
	playhead := e.store.state.Project.Playhead

	var nearest timeline.Time

	found := false

	for _, b := range e.store.state.Project.ClipBoundaries() {
		if b < playhead && (!found || b > nearest) {
			nearest = b
			found = true
		}
	}

	if found {
		e.SetPlayhead(nearest)
	}
}

// SetZoom sets the zoom in pixels per second, clamped to the allowed range.
func (e *Editor) SetZoom(pixelsPerSecond float64) {
	if pixelsPerSecond < timeline.MinZoom {
		pixelsPerSecond = timeline.MinZoom
	}

	if pixelsPerSecond > timeline.MaxZoom {
		pixelsPerSecond = timeline.MaxZoom
	}

	e.store.state.Project.Zoom = pixelsPerSecond
}

// ZoomIn increases the zoom by one step.
func (e *Editor) ZoomIn() {
	e.SetZoom(e.store.state.Project.Zoom * zoomFactor)
}

// ZoomOut decreases the zoom by one step.
func (e *Editor) ZoomOut() {
	e.SetZoom(e.store.state.Project.Zoom / zoomFactor)
}

// ZoomToFit derives the zoom from the available pixel width so the whole
// project is visible, and resets the scroll.
func (e *Editor) ZoomToFit(widthPixels float64) {
	seconds := e.store.state.Project.Duration.Seconds()
	if seconds <= 0 || widthPixels <= 0 {
		return
	}

	e.SetZoom(widthPixels / seconds)
	e.store.state.Project.Scroll = 0
}

// SetScroll sets the horizontal scroll offset in pixels, floored at zero.
func (e *Editor) SetScroll(offset float64) {
	if offset < 0 {
		offset = 0
	}

	e.store.state.Project.Scroll = offset
}

// Play starts playback from the current playhead.
func (e *Editor) Play() {
	e.store.state.Playback = Playing
}

// Pause suspends playback, keeping the playhead where it is.
func (e *Editor) Pause() {
	if e.store.state.Playback == Playing {
		e.store.state.Playback = Paused
	}
}

// Stop halts playback and resets the playhead to the in point if one is
// set, otherwise to zero.
func (e *Editor) Stop() {
	e.store.state.Playback = Stopped

	if e.store.state.Project.InPoint != nil {
		e.SetPlayhead(*e.store.state.Project.InPoint)
	} else {
		e.SetPlayhead(timeline.Zero)
	}
}

// TogglePlayback flips between playing and paused/stopped.
func (e *Editor) TogglePlayback() {
	if e.store.state.Playback == Playing {
		e.store.state.Playback = Paused
	} else {
		e.store.state.Playback = Playing
	}
}

// SetInPoint sets the in point and marks the project dirty.
func (e *Editor) SetInPoint(t timeline.Time) {
	in := t.Clamp(timeline.Zero, e.store.state.Project.Duration)
	e.store.state.Project.InPoint = &in
	e.store.state.Dirty = true
}

// SetOutPoint sets the out point and marks the project dirty.
func (e *Editor) SetOutPoint(t timeline.Time) {
	out := t.Clamp(timeline.Zero, e.store.state.Project.Duration)
	e.store.state.Project.OutPoint = &out
	e.store.state.Dirty = true
}

// MarkIn sets the in point at the playhead.
func (e *Editor) MarkIn() {
	e.SetInPoint(e.store.state.Project.Playhead)
}

// MarkOut sets the out point at the playhead.
func (e *Editor) MarkOut() {
	e.SetOutPoint(e.store.state.Project.Playhead)
}

// ClearInOutPoints removes both points and marks the project dirty.
func (e *Editor) ClearInOutPoints() {
	e.store.state.Project.InPoint = nil
	e.store.state.Project.OutPoint = nil
	e.store.state.Dirty = true
}
