// Package backend abstracts the physical terminal behind the Canvas
// contract. The renderer only ever talks to a Canvas, so tests can swap
// the real terminal for an in-memory double.
package backend

import (
	"github.com/vire-editor/vire/internal/input/key"
	"github.com/vire-editor/vire/internal/renderer/core"
)

// Canvas is the drawing surface contract consumed by the viewport. All
// operations are fallible; a failing canvas aborts the draw cycle and
// the error propagates to the main loop.
type Canvas interface {
	// Clear erases the whole surface.
	Clear() error

	// Draw writes the given cells. Cells arrive in ascending row-major
	// order so the implementation can minimize cursor seeks.
	Draw(cells []*core.Cell) error

	// Flush makes all buffered output visible.
	Flush() error

	// HideCursor hides the text cursor.
	HideCursor() error

	// ShowCursor shows the text cursor.
	ShowCursor() error

	// PositionCursor moves the text cursor.
	PositionCursor(row, col int) error

	// Size returns the drawable area.
	Size() (core.Rect, error)
}

// KeySource supplies raw key presses. The terminal canvas implements
// this; the event loop's producer goroutine blocks on it.
type KeySource interface {
	// PollKey blocks until the next key press. It returns an error when
	// the source fails or is closed.
	PollKey() (key.Event, error)
}
