// Package tui shows a canvas in a terminal. Each character cell holds two
// vertically stacked pixels drawn with a half block.
package tui

import (
	"fmt"
	"image"

	"github.com/gdamore/tcell/v2"

	"github.com/example/spritery/internal/canvas"
)

const (
	upperHalf = '▀'
	lowerHalf = '▄'
)

var (
	checkerLight = [3]uint8{204, 204, 204}
	checkerDark  = [3]uint8{153, 153, 153}
)

// Viewer draws a canvas on a tcell screen and scrolls it with the keyboard.
type Viewer struct {
	screen tcell.Screen
	canvas *canvas.Canvas
	title  string
	off    image.Point
	status bool
}

// New creates a viewer of c on screen. The screen must already be
// initialised.
func New(screen tcell.Screen, c *canvas.Canvas, title string) *Viewer {
	return &Viewer{screen: screen, canvas: c, title: title, status: true}
}

// Offset returns the canvas pixel shown in the top left corner.
func (v *Viewer) Offset() image.Point { return v.off }

// Run draws and handles events until the user quits.
func (v *Viewer) Run() error {
	for {
		v.Draw()
		ev := v.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if !v.HandleEvent(ev) {
			return nil
		}
	}
}

// Show opens the terminal, runs a viewer of c and restores the terminal
// afterwards.
func Show(c *canvas.Canvas, title string) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	defer screen.Fini()
	return New(screen, c, title).Run()
}

// viewSize returns the terminal columns and rows given to the canvas.
func (v *Viewer) viewSize() (cols, rows int) {
	w, h := v.screen.Size()
	if v.status {
		h--
	}
	return max(w, 0), max(h, 0)
}

// HandleEvent reacts to one terminal event. It returns false when the
// viewer should close.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return v.key(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		v.clamp()
		v.screen.Sync()
	}
	return true
}

func (v *Viewer) key(k tcell.Key, r rune) bool {
	cols, rows := v.viewSize()
	switch k {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		v.off.Y -= 2
	case tcell.KeyDown:
		v.off.Y += 2
	case tcell.KeyLeft:
		v.off.X--
	case tcell.KeyRight:
		v.off.X++
	case tcell.KeyPgUp:
		v.off.Y -= 2 * rows
	case tcell.KeyPgDn:
		v.off.Y += 2 * rows
	case tcell.KeyHome:
		v.off = image.Point{}
	case tcell.KeyRune:
		switch r {
		case 'q':
			return false
		case 'k':
			v.off.Y -= 2
		case 'j':
			v.off.Y += 2
		case 'h':
			v.off.X--
		case 'l':
			v.off.X++
		case 'H':
			v.off.X -= cols
		case 'L':
			v.off.X += cols
		case 's':
			v.status = !v.status
		}
	}
	v.clamp()
	return true
}

// clamp keeps the offset inside the canvas. Vertical offsets stay even so
// pixel pairs do not shift between rows.
func (v *Viewer) clamp() {
	cols, rows := v.viewSize()
	maxX := max(v.canvas.Width()-cols, 0)
	maxY := max(v.canvas.Height()-2*rows, 0)
	maxY += maxY % 2
	v.off.X = min(max(v.off.X, 0), maxX)
	v.off.Y = min(max(v.off.Y, 0), maxY)
	v.off.Y -= v.off.Y % 2
}

// Draw paints the visible part of the canvas and the status line.
func (v *Viewer) Draw() {
	v.screen.Clear()
	cols, rows := v.viewSize()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			r, style, ok := v.cellAt(x, y)
			if ok {
				v.screen.SetContent(x, y, r, nil, style)
			}
		}
	}
	if v.status {
		v.drawStatus(rows, cols)
	}
	v.screen.Show()
}

// cellAt returns the character for screen cell x,y of the canvas area.
func (v *Viewer) cellAt(x, y int) (rune, tcell.Style, bool) {
	px := v.off.X + x
	py := v.off.Y + 2*y
	top, topOK := v.pixel(px, py)
	bottom, bottomOK := v.pixel(px, py+1)
	switch {
	case topOK && bottomOK:
		return upperHalf, tcell.StyleDefault.Foreground(top).Background(bottom), true
	case topOK:
		return upperHalf, tcell.StyleDefault.Foreground(top), true
	case bottomOK:
		return lowerHalf, tcell.StyleDefault.Foreground(bottom), true
	}
	return 0, tcell.StyleDefault, false
}

// pixel returns the terminal color of canvas pixel x,y blended over a
// checkerboard.
func (v *Viewer) pixel(x, y int) (tcell.Color, bool) {
	cell := canvas.Cell{X: x, Y: y}
	if !v.canvas.Contains(cell) {
		return tcell.ColorDefault, false
	}
	bg := checkerLight
	if (x/2+y/2)%2 == 1 {
		bg = checkerDark
	}
	return blend(v.canvas.AtCell(cell), bg), true
}

func blend(c canvas.Color, bg [3]uint8) tcell.Color {
	a := int32(c.A)
	mix := func(fg, bg uint8) int32 {
		return (int32(fg)*a + int32(bg)*(255-a) + 127) / 255
	}
	return tcell.NewRGBColor(mix(c.R, bg[0]), mix(c.G, bg[1]), mix(c.B, bg[2]))
}

// StatusText describes what the viewer shows.
func (v *Viewer) StatusText() string {
	return fmt.Sprintf("%s  %dx%d  at %d,%d  arrows/hjkl scroll  s status  q quit",
		v.title, v.canvas.Width(), v.canvas.Height(), v.off.X, v.off.Y)
}

func (v *Viewer) drawStatus(row, cols int) {
	style := tcell.StyleDefault.Reverse(true)
	x := 0
	for _, r := range v.StatusText() {
		if x >= cols {
			break
		}
		v.screen.SetContent(x, row, r, nil, style)
		x++
	}
	for ; x < cols; x++ {
		v.screen.SetContent(x, row, ' ', nil, style)
	}
}
