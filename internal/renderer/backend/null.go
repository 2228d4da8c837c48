package backend

import (
	"sync"

	"github.com/vire-editor/vire/internal/input/key"
	"github.com/vire-editor/vire/internal/renderer/core"
)

// NullCanvas is an in-memory Canvas for tests. It records every drawn
// cell and cursor operation and can be told to fail a specific
// operation to exercise error paths.
type NullCanvas struct {
	area core.Rect

	// Drawn accumulates the cells of every Draw call in order.
	Drawn []core.Cell

	// DrawCalls counts Draw invocations.
	DrawCalls int

	// CursorRow, CursorCol hold the last positioned cursor.
	CursorRow int
	CursorCol int

	// CursorHidden tracks visibility after the last cursor op.
	CursorHidden bool

	// Flushes counts Flush invocations.
	Flushes int

	// FailDraw, FailFlush, FailHideCursor inject errors.
	FailDraw       error
	FailFlush      error
	FailHideCursor error

	lastDraw  []core.Cell
	events    chan key.Event
	closeOnce sync.Once
}

// NewNullCanvas creates a NullCanvas with the given dimensions.
func NewNullCanvas(width, height int) *NullCanvas {
	return &NullCanvas{
		area:   core.NewRect(width, height),
		events: make(chan key.Event, 64),
	}
}

func (c *NullCanvas) Clear() error {
	c.Drawn = nil
	return nil
}

func (c *NullCanvas) Draw(cells []*core.Cell) error {
	if c.FailDraw != nil {
		return c.FailDraw
	}
	c.DrawCalls++
	c.lastDraw = nil
	for _, cell := range cells {
		c.Drawn = append(c.Drawn, *cell)
		c.lastDraw = append(c.lastDraw, *cell)
	}
	return nil
}

func (c *NullCanvas) Flush() error {
	if c.FailFlush != nil {
		return c.FailFlush
	}
	c.Flushes++
	return nil
}

func (c *NullCanvas) HideCursor() error {
	if c.FailHideCursor != nil {
		return c.FailHideCursor
	}
	c.CursorHidden = true
	return nil
}

func (c *NullCanvas) ShowCursor() error {
	c.CursorHidden = false
	return nil
}

func (c *NullCanvas) PositionCursor(row, col int) error {
	c.CursorRow = row
	c.CursorCol = col
	return nil
}

func (c *NullCanvas) Size() (core.Rect, error) {
	return c.area, nil
}

// PostKey queues a key press for PollKey.
func (c *NullCanvas) PostKey(ev key.Event) {
	c.events <- ev
}

// Close releases PollKey callers with ErrClosed. Closing twice is
// safe.
func (c *NullCanvas) Close() {
	c.closeOnce.Do(func() { close(c.events) })
}

// Fini releases the canvas, mirroring the Terminal lifecycle.
func (c *NullCanvas) Fini() {
	c.Close()
}

func (c *NullCanvas) PollKey() (key.Event, error) {
	ev, ok := <-c.events
	if !ok {
		return key.Event{}, ErrClosed
	}
	return ev, nil
}

// LastDraw returns the cells of the most recent Draw call.
func (c *NullCanvas) LastDraw() []core.Cell {
	return c.lastDraw
}
