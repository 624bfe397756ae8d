// ABOUTME: Tests for clip selection operations
// ABOUTME: Verifies replace/toggle semantics and rubber-band range selection

package editor

import (
	"reflect"
	"testing"

	"cutline/timeline"
)

func TestSelectClip(t *testing.T) {
	e := newTestEditor()
	a := addTestClip(t, e, 0, 0, timeline.FromSeconds(2))
	b := addTestClip(t, e, 0, timeline.FromSeconds(3), timeline.FromSeconds(2))

	e.SelectClip(a.ID, false)

	if !e.IsSelected(a.ID) {
		t.Fatal("clip should be selected")
	}

	// Non-additive select replaces
	e.SelectClip(b.ID, false)

	if e.IsSelected(a.ID) {
		t.Error("previous selection should be replaced")
	}

	if !e.IsSelected(b.ID) {
		t.Error("new clip should be selected")
	}

	// Additive select extends
	e.SelectClip(a.ID, true)

	if !e.IsSelected(a.ID) || !e.IsSelected(b.ID) {
		t.Error("additive select should keep both clips selected")
	}

	// Additive select of a selected clip toggles it off
	e.SelectClip(a.ID, true)

	if e.IsSelected(a.ID) {
		t.Error("additive re-select should deselect the clip")
	}

	if !e.IsSelected(b.ID) {
		t.Error("toggle should not touch other clips")
	}
}

func TestSelectClipUnknownIgnored(t *testing.T) {
	e := newTestEditor()
	a := addTestClip(t, e, 0, 0, timeline.FromSeconds(2))

	e.SelectClip(a.ID, false)
	e.SelectClip("nonexistent", false)

	if !e.IsSelected(a.ID) {
		t.Error("selecting an unknown id should not clear the selection")
	}
}

func TestSelectClips(t *testing.T) {
	e := newTestEditor()
	a := addTestClip(t, e, 0, 0, timeline.FromSeconds(2))
	b := addTestClip(t, e, 1, 0, timeline.FromSeconds(2))

	e.SelectClips([]string{a.ID, b.ID, "nonexistent"})

	if !e.IsSelected(a.ID) || !e.IsSelected(b.ID) {
		t.Error("both known clips should be selected")
	}

	if e.IsSelected("nonexistent") {
		t.Error("unknown id should be skipped")
	}
}

func TestSelectClipsInRange(t *testing.T) {
	e := newTestEditor()
	a := addTestClip(t, e, 0, 0, timeline.FromSeconds(2))                          // [0, 2)
	b := addTestClip(t, e, 1, timeline.FromSeconds(1), timeline.FromSeconds(2))    // [1, 3)
	c := addTestClip(t, e, 0, timeline.FromSeconds(5), timeline.FromSeconds(2))    // [5, 7)
	d := addTestClip(t, e, 1, timeline.FromSeconds(3), timeline.FromSeconds(2))    // [3, 5) touches the range end

	e.SelectClipsInRange(timeline.Range{Start: timeline.FromSeconds(1), Duration: timeline.FromSeconds(2)})

	if !e.IsSelected(a.ID) || !e.IsSelected(b.ID) {
		t.Error("clips overlapping the range should be selected")
	}

	if e.IsSelected(c.ID) {
		t.Error("clip outside the range should not be selected")
	}

	if e.IsSelected(d.ID) {
		t.Error("clip merely touching the range end should not be selected")
	}
}

func TestClearSelection(t *testing.T) {
	e := newTestEditor()
	a := addTestClip(t, e, 0, 0, timeline.FromSeconds(2))

	e.SelectClip(a.ID, false)
	e.ClearSelection()

	if e.IsSelected(a.ID) {
		t.Error("ClearSelection should deselect everything")
	}
}

func TestSelectedIDsInTimelineOrder(t *testing.T) {
	e := newTestEditor()
	late := addTestClip(t, e, 0, timeline.FromSeconds(5), timeline.FromSeconds(2))
	early := addTestClip(t, e, 0, 0, timeline.FromSeconds(2))
	other := addTestClip(t, e, 1, 0, timeline.FromSeconds(2))

	e.SelectClips([]string{late.ID, other.ID, early.ID})

	want := []string{early.ID, late.ID, other.ID}
	if got := e.SelectedIDs(); !reflect.DeepEqual(got, want) {
		t.Errorf("SelectedIDs = %v, want track then start order %v", got, want)
	}
}
