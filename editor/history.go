// ABOUTME: Undo/redo stack manager over reversible commands
// ABOUTME: Maintains two bounded stacks with FIFO eviction of the oldest entries

package editor

// History manages undo/redo stacks with a maximum size limit.
// Executing a new command always clears the redo stack: the history is
// linear, there is no redo past a fresh edit.
type History struct {
	undoStack []Command
	redoStack []Command
	maxSize   int
}

// NewHistory creates a history with the specified maximum stack size.
func NewHistory(maxSize int) *History {
	if maxSize < 1 {
		maxSize = 1
	}

	return &History{
		undoStack: []Command{},
		redoStack: []Command{},
		maxSize:   maxSize,
	}
}

// Execute runs the command forward and records it.
// Returns false without recording anything if the command fails.
func (h *History) Execute(cmd Command, n ProjectNotifier) bool {
	if !cmd.Execute(n) {
		return false
	}

	h.undoStack = append(h.undoStack, cmd)

	// Enforce max size: evict the oldest entry first
	if len(h.undoStack) > h.maxSize {
		h.undoStack = h.undoStack[1:]
	}

	// Clear redo stack on new edit
	h.redoStack = []Command{}

	return true
}

// Undo reverses the most recent command and moves it to the redo stack.
// Returns false if there is nothing to undo. A command whose inverse can
// no longer apply is dropped rather than left blocking the stack.
func (h *History) Undo(n ProjectNotifier) bool {
	if len(h.undoStack) == 0 {
		return false
	}

	cmd := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]

	if !cmd.Undo(n) {
		return false
	}

	h.redoStack = append(h.redoStack, cmd)

	return true
}

// Redo re-executes the most recently undone command and moves it back to
// the undo stack. Returns false if there is nothing to redo.
func (h *History) Redo(n ProjectNotifier) bool {
	if len(h.redoStack) == 0 {
		return false
	}

	cmd := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]

	if !cmd.Execute(n) {
		return false
	}

	h.undoStack = append(h.undoStack, cmd)

	return true
}

// UndoSize returns the number of commands available to undo.
func (h *History) UndoSize() int {
	return len(h.undoStack)
}

// RedoSize returns the number of commands available to redo.
func (h *History) RedoSize() int {
	return len(h.redoStack)
}

// PeekUndo returns the name of the next command to undo, or "".
func (h *History) PeekUndo() string {
	if len(h.undoStack) == 0 {
		return ""
	}

	return h.undoStack[len(h.undoStack)-1].Name()
}

// Clear empties both stacks, e.g. on project load.
func (h *History) Clear() {
	h.undoStack = []Command{}
	h.redoStack = []Command{}
}

// SetMaxHistory changes the cap and immediately evicts the oldest
// entries if the undo stack now exceeds it.
func (h *History) SetMaxHistory(n int) {
	if n < 1 {
		n = 1
	}

	h.maxSize = n

	if len(h.undoStack) > h.maxSize {
		h.undoStack = h.undoStack[len(h.undoStack)-h.maxSize:]
	}
}
