package history

import (
	"errors"
	"testing"

	"github.com/example/spritery/internal/canvas"
)

var red = canvas.Color{R: 255, A: 255}

func cmd(n int) *Command {
	pixels := make([]canvas.Cell, n)
	from := make([]canvas.Color, n)
	for i := range pixels {
		pixels[i] = canvas.Cell{X: i, Y: 0}
	}
	return NewCommand("Pencil", pixels, from, red)
}

func TestNewCommandRejectsMismatchedLengths(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for mismatched lengths")
		}
	}()
	NewCommand("Pencil", []canvas.Cell{{X: 0, Y: 0}}, nil, red)
}

func TestNewCommandRejectsDuplicateCells(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for duplicate cell")
		}
	}()
	NewCommand("Pencil", []canvas.Cell{{X: 1, Y: 1}, {X: 1, Y: 1}}, []canvas.Color{{}, {}}, red)
}

func TestNewCommandRejectsSparseDuplicateCells(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for duplicate cell")
		}
	}()
	pixels := []canvas.Cell{{X: 0, Y: 0}, {X: 1000, Y: 1000}, {X: 0, Y: 0}}
	NewCommand("Pencil", pixels, make([]canvas.Color, len(pixels)), red)
}

func TestNewCommandAcceptsDistinctCells(t *testing.T) {
	var pixels []canvas.Cell
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			pixels = append(pixels, canvas.Cell{X: x, Y: y})
		}
	}
	pixels = append(pixels, canvas.Cell{X: 900, Y: 3})
	if c := NewCommand("Bucket", pixels, make([]canvas.Color, len(pixels)), red); c.Len() != len(pixels) {
		t.Fatalf("len %d", c.Len())
	}
}

func TestCommandCopiesInput(t *testing.T) {
	pixels := []canvas.Cell{{X: 0, Y: 0}}
	from := []canvas.Color{canvas.Invisible}
	c := NewCommand("Pencil", pixels, from, red)
	pixels[0] = canvas.Cell{X: 9, Y: 9}
	from[0] = red
	if got, prev := c.Cell(0); got != (canvas.Cell{}) || prev != canvas.Invisible {
		t.Fatalf("command aliased caller slices: %v %v", got, prev)
	}
	out := c.Pixels()
	out[0] = canvas.Cell{X: 5}
	if got, _ := c.Cell(0); got != (canvas.Cell{}) {
		t.Fatal("Pixels exposed internal slice")
	}
	if c.ID() == "" {
		t.Fatal("expected generated id")
	}
	if c.String() != "Pencil action: 1 pixels" {
		t.Fatalf("unexpected string %q", c.String())
	}
}

func TestEmptyHistory(t *testing.T) {
	h := New()
	if _, err := h.Undo(); !errors.Is(err, ErrEmptyHistory) {
		t.Fatalf("Undo on empty: got %v", err)
	}
	if _, err := h.Redo(); !errors.Is(err, ErrEmptyHistory) {
		t.Fatalf("Redo on empty: got %v", err)
	}
	if h.CanUndo() || h.CanRedo() || h.Peek() != nil {
		t.Fatal("empty history reports content")
	}
}

func TestUndoRedoOrder(t *testing.T) {
	h := New()
	a, b := cmd(1), cmd(2)
	h.Do(a)
	h.Do(b)
	if h.Peek() != b {
		t.Fatal("peek should return most recent")
	}
	got, err := h.Undo()
	if err != nil || got != b {
		t.Fatalf("Undo = %v, %v; want b", got, err)
	}
	got, err = h.Undo()
	if err != nil || got != a {
		t.Fatalf("Undo = %v, %v; want a", got, err)
	}
	if h.CanUndo() {
		t.Fatal("undo stack should be empty")
	}
	if h.RedoLen() != 2 {
		t.Fatalf("redo depth %d, want 2", h.RedoLen())
	}
	got, err = h.Redo()
	if err != nil || got != a {
		t.Fatalf("Redo = %v, %v; want a", got, err)
	}
	got, err = h.Redo()
	if err != nil || got != b {
		t.Fatalf("Redo = %v, %v; want b", got, err)
	}
	if h.UndoLen() != 2 || h.CanRedo() {
		t.Fatalf("unexpected depths undo=%d redo=%d", h.UndoLen(), h.RedoLen())
	}
}

func TestDoClearsRedo(t *testing.T) {
	h := New()
	h.Do(cmd(1))
	h.Do(cmd(1))
	if _, err := h.Undo(); err != nil {
		t.Fatal(err)
	}
	if !h.CanRedo() {
		t.Fatal("expected redo available")
	}
	h.Do(cmd(3))
	if h.CanRedo() {
		t.Fatal("new command must discard redo branch")
	}
	if _, err := h.Redo(); !errors.Is(err, ErrEmptyHistory) {
		t.Fatalf("expected ErrEmptyHistory, got %v", err)
	}
	if h.UndoLen() != 2 {
		t.Fatalf("undo depth %d, want 2", h.UndoLen())
	}
}

func TestClear(t *testing.T) {
	h := New()
	h.Do(cmd(1))
	h.Do(cmd(1))
	h.Undo()
	h.Clear()
	if h.CanUndo() || h.CanRedo() {
		t.Fatal("clear left entries")
	}
}
