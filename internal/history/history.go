package history

import "errors"

// ErrEmptyHistory is returned by Undo and Redo when there is nothing to
// pop.
var ErrEmptyHistory = errors.New("history is empty")

// History keeps committed commands on an undo stack and undone ones on a
// redo stack. It never touches a canvas; callers replay what it returns.
type History struct {
	undo []*Command
	redo []*Command
}

// New returns an empty history.
func New() *History { return &History{} }

// Do records cmd as the most recent edit and discards any redo branch.
func (h *History) Do(cmd *Command) {
	clear(h.redo)
	h.redo = h.redo[:0]
	h.undo = append(h.undo, cmd)
}

// Undo pops the most recent command and moves it to the redo stack. The
// caller must restore the command's prior colors.
func (h *History) Undo() (*Command, error) {
	n := len(h.undo)
	if n == 0 {
		return nil, ErrEmptyHistory
	}
	cmd := h.undo[n-1]
	h.undo[n-1] = nil
	h.undo = h.undo[:n-1]
	h.redo = append(h.redo, cmd)
	return cmd, nil
}

// Redo pops the most recently undone command back onto the undo stack.
// The caller must re-apply the command's target color.
func (h *History) Redo() (*Command, error) {
	n := len(h.redo)
	if n == 0 {
		return nil, ErrEmptyHistory
	}
	cmd := h.redo[n-1]
	h.redo[n-1] = nil
	h.redo = h.redo[:n-1]
	h.undo = append(h.undo, cmd)
	return cmd, nil
}

// CanUndo reports whether Undo would succeed.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether Redo would succeed.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// UndoLen returns the depth of the undo stack.
func (h *History) UndoLen() int { return len(h.undo) }

// RedoLen returns the depth of the redo stack.
func (h *History) RedoLen() int { return len(h.redo) }

// Peek returns the command Undo would return, or nil.
func (h *History) Peek() *Command {
	if len(h.undo) == 0 {
		return nil
	}
	return h.undo[len(h.undo)-1]
}

// Clear drops both stacks. Used when the canvas the commands refer to is
// replaced.
func (h *History) Clear() {
	h.undo = nil
	h.redo = nil
}
