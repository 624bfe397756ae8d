// ABOUTME: Tests for History stack operations
// ABOUTME: Verifies undo/redo ordering, redo clearing, and stack size limits

package editor

import "testing"

// stubCommand records execution order and can be made to fail either way.
type stubCommand struct {
	name     string
	failExec bool
	failUndo bool
	log      *[]string
}

func (c *stubCommand) Name() string { return c.name }

func (c *stubCommand) Execute(n ProjectNotifier) bool {
	*c.log = append(*c.log, "exec "+c.name)

	return !c.failExec
}

func (c *stubCommand) Undo(n ProjectNotifier) bool {
	*c.log = append(*c.log, "undo "+c.name)

	return !c.failUndo
}

func TestHistory_ExecuteAndUndo(t *testing.T) {
	var log []string

	h := NewHistory(50)

	if !h.Execute(&stubCommand{name: "a", log: &log}, nil) {
		t.Fatal("Execute should succeed")
	}

	if h.UndoSize() != 1 {
		t.Errorf("UndoSize = %d, want 1", h.UndoSize())
	}

	if !h.Undo(nil) {
		t.Fatal("Undo should succeed")
	}

	if h.UndoSize() != 0 {
		t.Errorf("UndoSize after undo = %d, want 0", h.UndoSize())
	}

	if h.RedoSize() != 1 {
		t.Errorf("RedoSize after undo = %d, want 1", h.RedoSize())
	}
}

func TestHistory_UndoEmpty(t *testing.T) {
	h := NewHistory(50)

	if h.Undo(nil) {
		t.Error("Undo should fail on empty stack")
	}
}

func TestHistory_RedoEmpty(t *testing.T) {
	h := NewHistory(50)

	if h.Redo(nil) {
		t.Error("Redo should fail on empty stack")
	}
}

func TestHistory_FailedExecuteNotRecorded(t *testing.T) {
	var log []string

	h := NewHistory(50)

	if h.Execute(&stubCommand{name: "bad", failExec: true, log: &log}, nil) {
		t.Fatal("Execute should report failure")
	}

	if h.UndoSize() != 0 {
		t.Errorf("failed command was recorded, UndoSize = %d", h.UndoSize())
	}
}

func TestHistory_ExecuteClearsRedo(t *testing.T) {
	var log []string

	h := NewHistory(50)
	h.Execute(&stubCommand{name: "a", log: &log}, nil)
	h.Undo(nil)

	if h.RedoSize() != 1 {
		t.Fatalf("RedoSize = %d, want 1", h.RedoSize())
	}

	h.Execute(&stubCommand{name: "b", log: &log}, nil)

	if h.RedoSize() != 0 {
		t.Errorf("RedoSize after new edit = %d, want 0", h.RedoSize())
	}
}

func TestHistory_MaxSizeEvictsOldest(t *testing.T) {
	var log []string

	h := NewHistory(3)

	for _, name := range []string{"a", "b", "c", "d"} {
		h.Execute(&stubCommand{name: name, log: &log}, nil)
	}

	if h.UndoSize() != 3 {
		t.Fatalf("UndoSize = %d, want 3", h.UndoSize())
	}

	// Oldest ("a") must be gone; undo order is d, c, b
	want := []string{"d", "c", "b"}
	for _, name := range want {
		if got := h.PeekUndo(); got != name {
			t.Errorf("PeekUndo = %q, want %q", got, name)
		}

		h.Undo(nil)
	}

	if h.Undo(nil) {
		t.Error("evicted command should not be undoable")
	}
}

func TestHistory_RedoRoundTrip(t *testing.T) {
	var log []string

	h := NewHistory(50)
	h.Execute(&stubCommand{name: "a", log: &log}, nil)
	h.Undo(nil)

	if !h.Redo(nil) {
		t.Fatal("Redo should succeed")
	}

	if h.UndoSize() != 1 || h.RedoSize() != 0 {
		t.Errorf("after redo: UndoSize = %d RedoSize = %d, want 1 and 0", h.UndoSize(), h.RedoSize())
	}

	wantLog := []string{"exec a", "undo a", "exec a"}
	if len(log) != len(wantLog) {
		t.Fatalf("log has %d entries, want %d", len(log), len(wantLog))
	}

	for i := range wantLog {
		if log[i] != wantLog[i] {
			t.Errorf("log[%d] = %q, want %q", i, log[i], wantLog[i])
		}
	}
}

func TestHistory_FailedUndoDropsCommand(t *testing.T) {
	var log []string

	h := NewHistory(50)
	h.Execute(&stubCommand{name: "a", failUndo: true, log: &log}, nil)

	if h.Undo(nil) {
		t.Fatal("Undo should report failure")
	}

	if h.UndoSize() != 0 {
		t.Errorf("failed command still on undo stack, UndoSize = %d", h.UndoSize())
	}

	if h.RedoSize() != 0 {
		t.Errorf("failed command moved to redo stack, RedoSize = %d", h.RedoSize())
	}
}

func TestHistory_SetMaxHistoryTruncates(t *testing.T) {
	var log []string

	h := NewHistory(10)

	for _, name := range []string{"a", "b", "c", "d", "e"} {
		h.Execute(&stubCommand{name: name, log: &log}, nil)
	}

	h.SetMaxHistory(2)

	if h.UndoSize() != 2 {
		t.Fatalf("UndoSize after shrink = %d, want 2", h.UndoSize())
	}

	if got := h.PeekUndo(); got != "e" {
		t.Errorf("PeekUndo = %q, want %q", got, "e")
	}
}

func TestHistory_Clear(t *testing.T) {
	var log []string

	h := NewHistory(50)
	h.Execute(&stubCommand{name: "a", log: &log}, nil)
	h.Execute(&stubCommand{name: "b", log: &log}, nil)
	h.Undo(nil)

	h.Clear()

	if h.UndoSize() != 0 || h.RedoSize() != 0 {
		t.Errorf("Clear left UndoSize = %d RedoSize = %d", h.UndoSize(), h.RedoSize())
	}

	if h.PeekUndo() != "" {
		t.Errorf("PeekUndo on empty history = %q, want empty", h.PeekUndo())
	}
}
