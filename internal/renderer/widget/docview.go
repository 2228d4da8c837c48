// Package widget provides the frame components the editor composes
// into each frame: the document view, the welcome screen, the status
// bar, and the command line.
package widget

import (
	"github.com/vire-editor/vire/internal/document"
	"github.com/vire-editor/vire/internal/renderer/core"
	"github.com/vire-editor/vire/internal/renderer/frame"
)

// fillerSymbol marks screen rows past the end of the document.
const fillerSymbol = "~"

// DocumentView renders a window of the document's rows. Rows past the
// end of the document are drawn as filler.
type DocumentView struct {
	Document *document.Document
	// Scroll is the document position shown in the view's top-left
	// corner.
	Scroll core.Position
	// Rows is how many screen rows the view occupies, counted from
	// the top of the buffer.
	Rows int
}

// Render implements frame.Component.
func (v *DocumentView) Render(buffer *frame.Buffer) error {
	width := buffer.Area().Width

	for screenRow := 0; screenRow < v.Rows; screenRow++ {
		docRow := screenRow + v.Scroll.Row

		line := fillerSymbol
		if docRow < v.Document.LineCount() {
			line = v.Document.LineSlice(docRow, v.Scroll.Col, v.Scroll.Col+width)
		}

		if err := buffer.WriteLine(screenRow, line, core.DefaultStyle()); err != nil {
			return err
		}
	}

	return nil
}
