package session

import (
	"context"
	"fmt"

	"github.com/example/spritery/internal/canvas"
	"github.com/example/spritery/internal/codec"
)

// ImagePatterns are the file filters offered by the open dialog.
var ImagePatterns = []string{"*.png", "*.bmp"}

// Open loads path into a fresh canvas, replacing the current one.
func (s *Session) Open(path string) error {
	c, err := codec.ImportFile(path)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	s.Replace(c, path)
	s.logger.Printf("opened %s (%dx%d)", path, c.Width(), c.Height())
	return nil
}

// Save writes the canvas to path, or to the remembered path when path is
// empty.
func (s *Session) Save(path string) error {
	if path == "" {
		path = s.path
	}
	if path == "" {
		return fmt.Errorf("save: %w", ErrNoPath)
	}
	s.finishGesture()
	if err := codec.ExportFile(path, s.canvas); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	s.path = path
	s.dirty = false
	s.logger.Printf("saved %s", path)
	s.notifier.Save(path)
	return nil
}

// OpenDialog asks for a file and opens it. It reports false with a nil
// error when the user cancels, leaving the session unchanged.
func (s *Session) OpenDialog(ctx context.Context) (bool, error) {
	if s.dialogs == nil {
		return false, ErrNoDialogs
	}
	path, err := s.dialogs.ChooseFile(ctx, "Open sprite", ImagePatterns)
	if err != nil {
		return false, fmt.Errorf("open dialog: %w", err)
	}
	if path == "" {
		return false, nil
	}
	if err := s.Open(path); err != nil {
		return false, err
	}
	return true, nil
}

// SaveDialog asks for a destination and saves there. Cancelling reports
// false with a nil error.
func (s *Session) SaveDialog(ctx context.Context) (bool, error) {
	if s.dialogs == nil {
		return false, ErrNoDialogs
	}
	suggested := s.path
	if suggested == "" {
		suggested = "sprite.png"
	}
	path, err := s.dialogs.ChooseFileName(ctx, "Save sprite", suggested)
	if err != nil {
		return false, fmt.Errorf("save dialog: %w", err)
	}
	if path == "" {
		return false, nil
	}
	if err := s.Save(path); err != nil {
		return false, err
	}
	return true, nil
}

// PickColorDialog asks for a drawing color. Cancelling reports false with
// a nil error and keeps the current color.
func (s *Session) PickColorDialog(ctx context.Context) (bool, error) {
	if s.dialogs == nil {
		return false, ErrNoDialogs
	}
	c, ok, err := s.dialogs.ChooseColor(ctx, "Drawing color", s.color.NRGBA())
	if err != nil {
		return false, fmt.Errorf("color dialog: %w", err)
	}
	if !ok {
		return false, nil
	}
	s.SetColor(canvas.FromColor(c))
	return true, nil
}
