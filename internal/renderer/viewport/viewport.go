// Package viewport owns the double-buffered draw cycle. A Viewport
// holds two frame buffers: the one being rendered into and the snapshot
// of what is currently on screen. Each draw diffs the two and sends
// only the changed cells to the canvas.
package viewport

import (
	"fmt"

	"github.com/vire-editor/vire/internal/renderer/backend"
	"github.com/vire-editor/vire/internal/renderer/core"
	"github.com/vire-editor/vire/internal/renderer/frame"
)

// Viewport is the drawable area of the screen. It exclusively owns its
// two frame buffers and the canvas handle; all external rendering goes
// through the callback passed to Draw.
type Viewport struct {
	area    core.Rect
	canvas  backend.Canvas
	buffers [2]*frame.Buffer
	current int
}

// New creates a Viewport sized to the canvas.
func New(canvas backend.Canvas) (*Viewport, error) {
	area, err := canvas.Size()
	if err != nil {
		return nil, fmt.Errorf("sizing viewport: %w", err)
	}

	return &Viewport{
		area:    area,
		canvas:  canvas,
		buffers: [2]*frame.Buffer{frame.Empty(area), frame.Empty(area)},
	}, nil
}

// Area returns the region covered by the viewport.
func (v *Viewport) Area() core.Rect {
	return v.area
}

// Draw runs one draw cycle. The callback renders components into the
// live buffer and records the cursor position; the viewport then diffs
// against the previous frame and sends only the changed cells to the
// canvas. Any canvas failure aborts the cycle before the buffer swap,
// so a failed draw leaves the previous on-screen snapshot intact and
// the next successful draw still diffs correctly.
func (v *Viewport) Draw(render func(*frame.Frame) error) error {
	if err := v.canvas.HideCursor(); err != nil {
		return fmt.Errorf("hiding cursor pre draw: %w", err)
	}

	f := frame.New(v.buffers[v.current])
	if err := render(f); err != nil {
		return v.abort(err)
	}

	changes := v.buffers[1-v.current].Diff(v.buffers[v.current])
	if err := v.canvas.Draw(changes); err != nil {
		return v.abort(fmt.Errorf("drawing buffer diff: %w", err))
	}

	cursor := f.CursorPosition()
	if err := v.canvas.PositionCursor(cursor.Row, cursor.Col); err != nil {
		return v.abort(fmt.Errorf("positioning cursor: %w", err))
	}
	if err := v.canvas.ShowCursor(); err != nil {
		return v.abort(fmt.Errorf("showing cursor post draw: %w", err))
	}

	v.swapBuffers()

	if err := v.canvas.Flush(); err != nil {
		return fmt.Errorf("flushing canvas: %w", err)
	}
	return nil
}

// abort discards the partial writes of a failed cycle. The swap has not
// happened, so the other buffer still holds the on-screen snapshot and
// a retried draw diffs against it cleanly.
func (v *Viewport) abort(err error) error {
	v.buffers[v.current].Reset()
	return err
}

// swapBuffers resets the now-previous buffer and flips the index, so
// the next render always starts from a blanked buffer while the other
// one keeps the on-screen snapshot.
func (v *Viewport) swapBuffers() {
	v.buffers[1-v.current].Reset()
	v.current = 1 - v.current
}
