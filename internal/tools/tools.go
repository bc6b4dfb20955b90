// Package tools implements the editing tools that turn pointer input over a
// canvas into pixel changes and history commands.
package tools

import (
	"fmt"
	"strings"

	"github.com/example/spritery/internal/canvas"
	"github.com/example/spritery/internal/history"
)

// Kind identifies a tool.
type Kind int

const (
	KindPencil Kind = iota
	KindEraser
	KindBucket
	KindColorPicker
)

var kindNames = [...]string{
	KindPencil:      "Pencil",
	KindEraser:      "Eraser",
	KindBucket:      "Bucket",
	KindColorPicker: "ColorPicker",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Pointer is the primary button state for one frame. Pressed and Released
// are edges; Down is the level.
type Pointer struct {
	Down     bool
	Pressed  bool
	Released bool
}

// Context is everything a tool sees during one frame.
type Context struct {
	Canvas  *canvas.Canvas
	Cell    canvas.Cell
	Color   canvas.Color
	Pointer Pointer
}

func (c Context) hovering() bool {
	return c.Cell.Valid() && c.Canvas.Contains(c.Cell)
}

// Outcome reports what a tool produced in a frame. Command is nil unless a
// gesture finished with at least one changed pixel.
type Outcome struct {
	Command *history.Command
	Picked  canvas.Color
	HasPick bool
}

// Tool reacts to pointer input. Implementations keep their own gesture
// state between frames and are not safe for concurrent use.
type Tool interface {
	Kind() Kind
	Name() string
	Update(Context) Outcome
}

// All returns a fresh instance of every tool, ordered by Kind.
func All() []Tool {
	return []Tool{NewPencil(), NewEraser(), NewBucket(), NewColorPicker()}
}

// New returns a fresh tool of the given kind.
func New(k Kind) (Tool, error) {
	switch k {
	case KindPencil:
		return NewPencil(), nil
	case KindEraser:
		return NewEraser(), nil
	case KindBucket:
		return NewBucket(), nil
	case KindColorPicker:
		return NewColorPicker(), nil
	}
	return nil, fmt.Errorf("unknown tool %v", k)
}

// ByName resolves a tool kind from its name, ignoring case. "picker" and
// "fill" are accepted as aliases.
func ByName(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "pencil", "pen":
		return KindPencil, nil
	case "eraser", "erase":
		return KindEraser, nil
	case "bucket", "fill":
		return KindBucket, nil
	case "colorpicker", "picker", "pick":
		return KindColorPicker, nil
	}
	return 0, fmt.Errorf("unknown tool %q", name)
}
