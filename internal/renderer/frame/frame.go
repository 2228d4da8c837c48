package frame

import "github.com/vire-editor/vire/internal/renderer/core"

// Component is a part of the ui that can draw itself into the current
// frame buffer. Widgets implement this so the caller composes them into
// a frame in render order.
type Component interface {
	Render(buffer *Buffer) error
}

// Frame is the render target handed to the draw callback for one draw
// cycle. It wraps the live buffer and records the cursor position the
// caller wants after the frame is shown. The handle must not escape the
// callback.
type Frame struct {
	cursorPosition core.Position
	buffer         *Buffer
}

// New creates a Frame over the given buffer with the cursor reset to
// the origin.
func New(buffer *Buffer) *Frame {
	return &Frame{buffer: buffer}
}

// Render draws the given component into the live buffer. Later renders
// overwrite earlier ones where they overlap.
func (f *Frame) Render(component Component) error {
	return component.Render(f.buffer)
}

// SetCursorPosition records where the cursor should be placed once the
// frame is drawn. The last call wins.
func (f *Frame) SetCursorPosition(position core.Position) {
	f.cursorPosition = position
}

// CursorPosition returns the recorded cursor position.
func (f *Frame) CursorPosition() core.Position {
	return f.cursorPosition
}
