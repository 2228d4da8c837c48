package widget

import (
	"github.com/vire-editor/vire/internal/renderer/core"
	"github.com/vire-editor/vire/internal/renderer/frame"
)

// CommandLine renders the execute-mode input row, prompt included.
// When Line is empty it blanks the row, which is also how transient
// messages get cleared.
type CommandLine struct {
	Line string
	// Row is the buffer row the line is drawn on.
	Row int
}

// Render implements frame.Component.
func (c *CommandLine) Render(buffer *frame.Buffer) error {
	return buffer.WriteLine(c.Row, c.Line, core.DefaultStyle())
}
