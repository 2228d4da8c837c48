package widget

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/vire-editor/vire/internal/input/command"
	"github.com/vire-editor/vire/internal/renderer/core"
	"github.com/vire-editor/vire/internal/renderer/frame"
)

// maxFileNameWidth caps how many display cells the file name may take
// on the bar.
const maxFileNameWidth = 20

// StatusBar renders the mode, file and line indicator line.
type StatusBar struct {
	Mode     command.Mode
	FileName string
	Modified bool
	// CurrentLine and TotalLines are 1-indexed for display.
	CurrentLine int
	TotalLines  int
	// Row is the buffer row the bar is drawn on.
	Row int
	// Style covers the whole bar. Zero value means the inverted
	// default style.
	Style core.Style
	// ModeStyle, when set, overrides Style for the leading mode
	// segment.
	ModeStyle core.Style
}

// Render implements frame.Component.
func (s *StatusBar) Render(buffer *frame.Buffer) error {
	width := buffer.Area().Width

	style := s.Style
	if style.IsDefault() {
		style = core.DefaultStyle().Invert()
	}

	name := s.FileName
	if name == "" {
		name = "[No Name]"
	}
	name = runewidth.Truncate(name, maxFileNameWidth, "")
	if s.Modified {
		name += " [+]"
	}

	modeSegment := fmt.Sprintf("Mode: [%s]", s.Mode)
	status := fmt.Sprintf("%s    File: %s", modeSegment, name)
	lineIndicator := fmt.Sprintf("%d/%d", s.CurrentLine, s.TotalLines)

	used := runewidth.StringWidth(status) + runewidth.StringWidth(lineIndicator)
	if width > used {
		status += strings.Repeat(" ", width-used)
	}
	status = runewidth.Truncate(status+lineIndicator, width, "")

	if err := buffer.WriteLine(s.Row, status, style); err != nil {
		return err
	}
	if !s.ModeStyle.IsDefault() {
		segment := runewidth.Truncate(modeSegment, width, "")
		return buffer.WriteSegment(s.Row, 0, segment, s.ModeStyle)
	}
	return nil
}
