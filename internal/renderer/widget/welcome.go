package widget

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/vire-editor/vire/internal/renderer/core"
	"github.com/vire-editor/vire/internal/renderer/frame"
)

// WelcomeScreen fills the view area with filler rows and a centered
// greeting a third of the way down. It is shown instead of the
// document view when the editor starts on an empty scratch document.
type WelcomeScreen struct {
	Version string
	// Rows is how many screen rows the screen occupies.
	Rows int
}

// Render implements frame.Component.
func (w *WelcomeScreen) Render(buffer *frame.Buffer) error {
	width := buffer.Area().Width
	bannerRow := w.Rows / 3

	for screenRow := 0; screenRow < w.Rows; screenRow++ {
		line := fillerSymbol
		if screenRow == bannerRow {
			line = w.banner(width)
		}

		if err := buffer.WriteLine(screenRow, line, core.DefaultStyle()); err != nil {
			return err
		}
	}

	return nil
}

// banner centers the greeting on a filler-prefixed line of the given
// display width.
func (w *WelcomeScreen) banner(width int) string {
	message := fmt.Sprintf("Vire editor -- version %s", w.Version)

	padding := (width - runewidth.StringWidth(message)) / 2
	if padding > 1 {
		message = fillerSymbol + strings.Repeat(" ", padding-1) + message
	}

	return runewidth.Truncate(message, width, "")
}
