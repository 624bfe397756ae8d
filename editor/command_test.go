// ABOUTME: Tests for reversible command variants
// ABOUTME: Verifies execute/undo round trips restore the exact prior project

package editor

import (
	"reflect"
	"testing"

	"cutline/timeline"
)

// newTestStore builds a store over a two-track project with one clip on
// each track, normalized the same way commit normalizes.
func newTestStore() (*stateStore, timeline.Clip, timeline.Clip) {
	p := timeline.NewProject("test", 1, 1)

	v := timeline.NewClip(timeline.ClipVideo, "intro", "/media/intro.mp4", 0, timeline.FromSeconds(5))
	a := timeline.NewClip(timeline.ClipAudio, "music", "/media/music.mp3", 0, timeline.FromSeconds(8))

	p.Tracks[0].Clips = append(p.Tracks[0].Clips, v)
	p.Tracks[1].Clips = append(p.Tracks[1].Clips, a)
	p.RecomputeDuration()
	p.SyncTrackIndices()

	s := &stateStore{state: State{Project: p, Selected: map[string]struct{}{}}}

	return s, s.state.Project.Tracks[0].Clips[0], s.state.Project.Tracks[1].Clips[0]
}

// roundTrip executes then undoes a command and fails unless the project
// comes back exactly as it was.
func roundTrip(t *testing.T, s *stateStore, cmd Command) {
	t.Helper()

	before := s.state.Project.Clone()

	if !cmd.Execute(s) {
		t.Fatal("Execute should succeed")
	}

	if reflect.DeepEqual(before, s.state.Project) {
		t.Fatal("Execute did not change the project")
	}

	if !cmd.Undo(s) {
		t.Fatal("Undo should succeed")
	}

	if !reflect.DeepEqual(before, s.state.Project) {
		t.Errorf("Undo did not restore the project\nbefore: %+v\nafter:  %+v", before, s.state.Project)
	}
}

func TestMoveClipCommand_RoundTrip(t *testing.T) {
	s, v, _ := newTestStore()

	cmd := &MoveClipCommand{
		Before: v,
		After:  v.WithStart(timeline.FromSeconds(10)),
	}

	roundTrip(t, s, cmd)
}

func TestMoveClipCommand_CrossTrack(t *testing.T) {
	s, _, a := newTestStore()

	// Move the audio clip onto the video track and clear of the clip there
	cmd := &MoveClipCommand{
		Before: a,
		After:  a.WithStart(timeline.FromSeconds(20)).WithTrackIndex(0),
	}

	if !cmd.Execute(s) {
		t.Fatal("Execute should succeed")
	}

	if got := len(s.state.Project.Tracks[0].Clips); got != 2 {
		t.Errorf("target track has %d clips, want 2", got)
	}

	if got := len(s.state.Project.Tracks[1].Clips); got != 0 {
		t.Errorf("source track has %d clips, want 0", got)
	}

	if !cmd.Undo(s) {
		t.Fatal("Undo should succeed")
	}

	if got := len(s.state.Project.Tracks[1].Clips); got != 1 {
		t.Errorf("after undo source track has %d clips, want 1", got)
	}
}

func TestMoveClipCommand_UnknownClipFails(t *testing.T) {
	s, v, _ := newTestStore()

	ghost := v
	ghost.ID = "nonexistent"

	cmd := &MoveClipCommand{Before: ghost, After: ghost.WithStart(timeline.FromSeconds(1))}

	if cmd.Execute(s) {
		t.Error("Execute should fail for an unknown clip")
	}
}

func TestResizeClipCommand_RoundTrip(t *testing.T) {
	s, v, _ := newTestStore()

	cmd := &ResizeClipCommand{
		Before: v,
		After:  v.WithTrim(v.TimelineStart, timeline.FromSeconds(2), v.SourceStart),
	}

	roundTrip(t, s, cmd)
}

func TestAddClipCommand_RoundTrip(t *testing.T) {
	s, _, _ := newTestStore()

	clip := timeline.NewClip(timeline.ClipVideo, "outro", "/media/outro.mp4",
		timeline.FromSeconds(6), timeline.FromSeconds(3))

	cmd := &AddClipCommand{TrackID: s.state.Project.Tracks[0].ID, Clip: clip}

	roundTrip(t, s, cmd)
}

func TestAddClipCommand_UnknownTrackFails(t *testing.T) {
	s, _, _ := newTestStore()

	clip := timeline.NewClip(timeline.ClipVideo, "outro", "/media/outro.mp4", 0, timeline.FromSeconds(3))
	cmd := &AddClipCommand{TrackID: "nonexistent", Clip: clip}

	if cmd.Execute(s) {
		t.Error("Execute should fail for an unknown track")
	}
}

func TestDeleteClipCommand_RoundTrip(t *testing.T) {
	s, v, _ := newTestStore()

	cmd := &DeleteClipCommand{TrackID: s.state.Project.Tracks[0].ID, Clip: v}

	roundTrip(t, s, cmd)
}

func TestAddTrackCommand_RoundTrip(t *testing.T) {
	s, _, _ := newTestStore()

	cmd := &AddTrackCommand{
		Track: timeline.NewTrack(timeline.TrackVideo, "Video 2"),
		Index: 1,
	}

	roundTrip(t, s, cmd)
}

func TestDeleteTrackCommand_RestoresClipsAndPosition(t *testing.T) {
	s, _, _ := newTestStore()

	cmd := &DeleteTrackCommand{
		Track: s.state.Project.Tracks[0].Clone(),
		Index: 0,
	}

	before := s.state.Project.Clone()

	if !cmd.Execute(s) {
		t.Fatal("Execute should succeed")
	}

	if got := len(s.state.Project.Tracks); got != 1 {
		t.Fatalf("project has %d tracks after delete, want 1", got)
	}

	if !cmd.Undo(s) {
		t.Fatal("Undo should succeed")
	}

	if !reflect.DeepEqual(before, s.state.Project) {
		t.Error("Undo did not restore the track with its clips at its old position")
	}
}

func TestChangeClipPropertyCommand_Rename(t *testing.T) {
	s, v, _ := newTestStore()

	cmd := NewChangeClipProperty("rename clip", v, "cold open",
		func(c timeline.Clip, name string) timeline.Clip { return c.WithName(name) })

	if cmd.Name() != "rename clip" {
		t.Errorf("Name = %q, want %q", cmd.Name(), "rename clip")
	}

	roundTrip(t, s, cmd)
}

func TestCompositeCommand_UndoReversesOrder(t *testing.T) {
	s, v, _ := newTestStore()

	// Two sequential moves of the same clip. Undoing them in execute
	// order would restore the intermediate position, not the original.
	step1 := v.WithStart(timeline.FromSeconds(10))
	step2 := step1.WithStart(timeline.FromSeconds(20))

	cmd := &CompositeCommand{
		Label: "move twice",
		Commands: []Command{
			&MoveClipCommand{Before: v, After: step1},
			&MoveClipCommand{Before: step1, After: step2},
		},
	}

	roundTrip(t, s, cmd)
}

func TestCompositeCommand_ExecuteRollsBackOnFailure(t *testing.T) {
	s, v, _ := newTestStore()

	ghost := v
	ghost.ID = "nonexistent"

	cmd := &CompositeCommand{
		Label: "partial",
		Commands: []Command{
			&MoveClipCommand{Before: v, After: v.WithStart(timeline.FromSeconds(10))},
			&MoveClipCommand{Before: ghost, After: ghost.WithStart(timeline.FromSeconds(1))},
		},
	}

	before := s.state.Project.Clone()

	if cmd.Execute(s) {
		t.Fatal("Execute should fail when a sub-command fails")
	}

	if !reflect.DeepEqual(before, s.state.Project) {
		t.Error("failed composite left a partial edit behind")
	}
}
