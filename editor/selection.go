// ABOUTME: Clip selection operations - view state, never part of the project
// ABOUTME: Selection changes always succeed and are not undoable

package editor

import "cutline/timeline"

// SelectClip selects a single clip, replacing the current selection.
// With additive set (shift-click semantics) the clip's membership is
// toggled instead. Unknown ids are ignored.
func (e *Editor) SelectClip(clipID string, additive bool) {
	if _, _, ok := e.store.state.Project.FindClip(clipID); !ok {
		return
	}

	if !additive {
		e.store.state.Selected = map[string]struct{}{clipID: {}}

		return
	}

	next := make(map[string]struct{}, len(e.store.state.Selected)+1)
	for id := range e.store.state.Selected {
		next[id] = struct{}{}
	}

	if _, selected := next[clipID]; selected {
		delete(next, clipID)
	} else {
		next[clipID] = struct{}{}
	}

	e.store.state.Selected = next
}

// SelectClips replaces the selection with the given clips.
func (e *Editor) SelectClips(clipIDs []string) {
	next := make(map[string]struct{}, len(clipIDs))

	for _, id := range clipIDs {
		if _, _, ok := e.store.state.Project.FindClip(id); ok {
			next[id] = struct{}{}
		}
	}

	e.store.state.Selected = next
}

// SelectClipsInRange selects every clip whose timeline range overlaps r,
// across all tracks (rubber-band selection).
func (e *Editor) SelectClipsInRange(r timeline.Range) {
	next := map[string]struct{}{}

	p := &e.store.state.Project
	for ti := range p.Tracks {
		for ci := range p.Tracks[ti].Clips {
			c := &p.Tracks[ti].Clips[ci]
			if c.TimelineRange().Overlaps(r) {
				next[c.ID] = struct{}{}
			}
		}
	}

	e.store.state.Selected = next
}

// ClearSelection empties the selection.
func (e *Editor) ClearSelection() {
	e.store.state.Selected = map[string]struct{}{}
}

// IsSelected reports whether a clip is in the selection.
func (e *Editor) IsSelected(clipID string) bool {
	_, ok := e.store.state.Selected[clipID]

	return ok
}

// SelectedIDs returns the selected clip ids in timeline order.
func (e *Editor) SelectedIDs() []string {
	var ids []string

	p := &e.store.state.Project
	for ti := range p.Tracks {
		for ci := range p.Tracks[ti].Clips {
			if e.IsSelected(p.Tracks[ti].Clips[ci].ID) {
				ids = append(ids, p.Tracks[ti].Clips[ci].ID)
			}
		}
	}

	return ids
}
