package session

import (
	"github.com/example/spritery/internal/canvas"
	"github.com/example/spritery/internal/history"
)

// Revert writes every recorded prior color of cmd back to c.
func Revert(c *canvas.Canvas, cmd *history.Command) {
	for i := cmd.Len() - 1; i >= 0; i-- {
		cell, from := cmd.Cell(i)
		c.SetCell(cell, from)
	}
}

// Apply writes the target color of cmd to every recorded cell of c.
func Apply(c *canvas.Canvas, cmd *history.Command) {
	to := cmd.To()
	for i := 0; i < cmd.Len(); i++ {
		cell, _ := cmd.Cell(i)
		c.SetCell(cell, to)
	}
}
