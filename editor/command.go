// ABOUTME: Reversible command objects wrapping every structural timeline edit
// ABOUTME: Each variant captures full before/after values so replay never re-derives state

package editor

import "cutline/timeline"

// Command is one reversible edit. Execute applies the forward mutation,
// Undo the inverse; both go through the ProjectNotifier only. A command
// is constructed once with everything it needs and never mutated after.
type Command interface {
	// Name is a short human-readable label for status display.
	Name() string
	Execute(n ProjectNotifier) bool
	Undo(n ProjectNotifier) bool
}

// MoveClipCommand repositions a clip in time and/or across tracks.
// Before and After are complete clip values, so both directions are a
// plain replacement.
type MoveClipCommand struct {
	Before timeline.Clip
	After  timeline.Clip
}

func (c *MoveClipCommand) Name() string { return "move clip" }

func (c *MoveClipCommand) Execute(n ProjectNotifier) bool {
	return n.UpdateClip(c.After)
}

func (c *MoveClipCommand) Undo(n ProjectNotifier) bool {
	return n.UpdateClip(c.Before)
}

// ResizeClipCommand trims a clip. A start-anchored resize changes
// TimelineStart, Duration, and SourceStart together, so whole clip
// values are captured for both directions.
type ResizeClipCommand struct {
	Before timeline.Clip
	After  timeline.Clip
}

func (c *ResizeClipCommand) Name() string { return "resize clip" }

func (c *ResizeClipCommand) Execute(n ProjectNotifier) bool {
	return n.UpdateClip(c.After)
}

func (c *ResizeClipCommand) Undo(n ProjectNotifier) bool {
	return n.UpdateClip(c.Before)
}

// AddClipCommand places a new clip on a track.
type AddClipCommand struct {
	TrackID string
	Clip    timeline.Clip
}

func (c *AddClipCommand) Name() string { return "add clip" }

func (c *AddClipCommand) Execute(n ProjectNotifier) bool {
	return n.AddClip(c.TrackID, c.Clip)
}

func (c *AddClipCommand) Undo(n ProjectNotifier) bool {
	return n.RemoveClip(c.Clip.ID)
}

// DeleteClipCommand removes a clip, keeping the full removed value and
// its track so undo can re-insert it verbatim. Re-insertion trusts the
// captured value and runs no overlap validation.
type DeleteClipCommand struct {
	TrackID string
	Clip    timeline.Clip
}

func (c *DeleteClipCommand) Name() string { return "delete clip" }

func (c *DeleteClipCommand) Execute(n ProjectNotifier) bool {
	return n.RemoveClip(c.Clip.ID)
}

func (c *DeleteClipCommand) Undo(n ProjectNotifier) bool {
	return n.AddClip(c.TrackID, c.Clip)
}

// AddTrackCommand splices a new track in at a position.
type AddTrackCommand struct {
	Track timeline.Track
	Index int
}

func (c *AddTrackCommand) Name() string { return "add track" }

func (c *AddTrackCommand) Execute(n ProjectNotifier) bool {
	n.AddTrack(c.Track, c.Index)

	return true
}

func (c *AddTrackCommand) Undo(n ProjectNotifier) bool {
	return n.RemoveTrack(c.Track.ID)
}

// DeleteTrackCommand removes a track, keeping the full track (clips
// included) and its position so undo splices it back where it was.
type DeleteTrackCommand struct {
	Track timeline.Track
	Index int
}

func (c *DeleteTrackCommand) Name() string { return "delete track" }

func (c *DeleteTrackCommand) Execute(n ProjectNotifier) bool {
	return n.RemoveTrack(c.Track.ID)
}

func (c *DeleteTrackCommand) Undo(n ProjectNotifier) bool {
	n.AddTrack(c.Track, c.Index)

	return true
}

// ChangeClipPropertyCommand is a generic single-field edit for properties
// without a dedicated command. The apply function is evaluated once at
// construction; replay uses the captured before/after clip values.
type ChangeClipPropertyCommand struct {
	Label  string
	Before timeline.Clip
	After  timeline.Clip
}

// NewChangeClipProperty builds a property-change command by applying
// the new value to the current clip.
func NewChangeClipProperty[T any](label string, clip timeline.Clip, value T, apply func(timeline.Clip, T) timeline.Clip) *ChangeClipPropertyCommand {
	return &ChangeClipPropertyCommand{
		Label:  label,
		Before: clip,
		After:  apply(clip, value),
	}
}

func (c *ChangeClipPropertyCommand) Name() string { return c.Label }

func (c *ChangeClipPropertyCommand) Execute(n ProjectNotifier) bool {
	return n.UpdateClip(c.After)
}

func (c *ChangeClipPropertyCommand) Undo(n ProjectNotifier) bool {
	return n.UpdateClip(c.Before)
}

// CompositeCommand groups sub-commands into one undoable edit, e.g. a
// multi-clip drag. Undo runs the inverses in reverse order, which
// matters whenever sub-commands touch the same entity.
type CompositeCommand struct {
	Label    string
	Commands []Command
}

func (c *CompositeCommand) Name() string { return c.Label }

// Execute runs the sub-commands in order. If one fails, the already
// executed ones are unwound in reverse so no partial edit is left behind.
func (c *CompositeCommand) Execute(n ProjectNotifier) bool {
	for i, cmd := range c.Commands {
		if !cmd.Execute(n) {
			for j := i - 1; j >= 0; j-- {
				c.Commands[j].Undo(n)
			}

			return false
		}
	}

	return true
}

func (c *CompositeCommand) Undo(n ProjectNotifier) bool {
	ok := true

	for i := len(c.Commands) - 1; i >= 0; i-- {
		if !c.Commands[i].Undo(n) {
			ok = false
		}
	}

	return ok
}
