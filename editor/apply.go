// ABOUTME: ProjectNotifier implementation - the raw apply layer behind commands
// ABOUTME: Every primitive clones the project, mutates the clone, and commits atomically

package editor

import (
	"sort"

	"cutline/timeline"
)

// stateStore owns the editor state and implements ProjectNotifier.
// Commands only ever see this surface; the Editor's public operations
// validate against the current state, then drive mutations through it.
type stateStore struct {
	state State
}

// commit installs a mutated project clone as the new state: derived
// values are recomputed, clip lists are kept sorted by start so equal
// states always have equal representations, and the state is marked
// dirty.
func (s *stateStore) commit(p timeline.Project) {
	p.RecomputeDuration()
	p.SyncTrackIndices()

	for ti := range p.Tracks {
		clips := p.Tracks[ti].Clips
		sort.SliceStable(clips, func(a, b int) bool {
			return clips[a].TimelineStart < clips[b].TimelineStart
		})
	}

	s.state.Project = p
	s.state.Dirty = true
}

// UpdateProject replaces the whole project value.
func (s *stateStore) UpdateProject(p timeline.Project) {
	s.commit(p.Clone())
}

// UpdateClip replaces the clip with the same id, moving it between
// tracks when its TrackIndex points elsewhere.
func (s *stateStore) UpdateClip(c timeline.Clip) bool {
	p := s.state.Project.Clone()

	ti, ci, ok := p.FindClip(c.ID)
	if !ok {
		return false
	}

	if c.TrackIndex == ti {
		p.Tracks[ti].Clips[ci] = c
	} else {
		if c.TrackIndex < 0 || c.TrackIndex >= len(p.Tracks) {
			return false
		}

		p.Tracks[ti].RemoveClip(c.ID)
		p.Tracks[c.TrackIndex].Clips = append(p.Tracks[c.TrackIndex].Clips, c)
	}

	s.commit(p)

	return true
}

// AddClip appends a clip to the identified track. Placement is trusted;
// validation happens before the command is built.
func (s *stateStore) AddClip(trackID string, c timeline.Clip) bool {
	p := s.state.Project.Clone()

	ti := p.FindTrack(trackID)
	if ti < 0 {
		return false
	}

	p.Tracks[ti].Clips = append(p.Tracks[ti].Clips, c.WithTrackIndex(ti))
	s.commit(p)

	return true
}

// RemoveClip deletes a clip and drops it from the selection.
func (s *stateStore) RemoveClip(clipID string) bool {
	p := s.state.Project.Clone()

	ti, _, ok := p.FindClip(clipID)
	if !ok {
		return false
	}

	p.Tracks[ti].RemoveClip(clipID)
	s.dropSelection(clipID)
	s.commit(p)

	return true
}

// AddTrack splices a track in at the given position (clamped to the
// valid range).
func (s *stateStore) AddTrack(t timeline.Track, index int) {
	p := s.state.Project.Clone()

	if index < 0 {
		index = 0
	}

	if index > len(p.Tracks) {
		index = len(p.Tracks)
	}

	p.Tracks = append(p.Tracks, timeline.Track{})
	copy(p.Tracks[index+1:], p.Tracks[index:])
	p.Tracks[index] = t.Clone()

	s.commit(p)
}

// RemoveTrack deletes the identified track; its clips leave the
// selection with it.
func (s *stateStore) RemoveTrack(trackID string) bool {
	p := s.state.Project.Clone()

	ti := p.FindTrack(trackID)
	if ti < 0 {
		return false
	}

	for ci := range p.Tracks[ti].Clips {
		s.dropSelection(p.Tracks[ti].Clips[ci].ID)
	}

	p.Tracks = append(p.Tracks[:ti], p.Tracks[ti+1:]...)
	s.commit(p)

	return true
}

// dropSelection removes one clip id from the selection, copy-on-write.
func (s *stateStore) dropSelection(clipID string) {
	if _, ok := s.state.Selected[clipID]; !ok {
		return
	}

	next := make(map[string]struct{}, len(s.state.Selected))
	for id := range s.state.Selected {
		if id != clipID {
			next[id] = struct{}{}
		}
	}

	s.state.Selected = next
}
