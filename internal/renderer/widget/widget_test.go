package widget

import (
	"strings"
	"testing"

	"github.com/vire-editor/vire/internal/document"
	"github.com/vire-editor/vire/internal/input/command"
	"github.com/vire-editor/vire/internal/renderer/core"
	"github.com/vire-editor/vire/internal/renderer/frame"
)

// rowText joins the symbols of one buffer row.
func rowText(t *testing.T, buf *frame.Buffer, row int) string {
	t.Helper()
	var sb strings.Builder
	for col := 0; col < buf.Area().Width; col++ {
		cell, err := buf.CellAt(core.NewPosition(col, row))
		if err != nil {
			t.Fatalf("CellAt(%d,%d): %v", col, row, err)
		}
		sb.WriteString(cell.Symbol)
	}
	return sb.String()
}

func TestDocumentViewRendersRowsAndFiller(t *testing.T) {
	doc := document.New()
	doc.Insert(0, 0, "alpha")
	doc.InsertLineBreak(0, 5)
	doc.Insert(1, 0, "beta")

	buf := frame.Empty(core.NewRect(10, 4))
	view := &DocumentView{Document: doc, Rows: 4}
	if err := view.Render(buf); err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := []string{"alpha     ", "beta      ", "~         ", "~         "}
	for row, text := range want {
		if got := rowText(t, buf, row); got != text {
			t.Errorf("row %d = %q, want %q", row, got, text)
		}
	}
}

func TestDocumentViewScrolls(t *testing.T) {
	doc := document.New()
	doc.Insert(0, 0, "0123456789")
	doc.InsertLineBreak(0, 10)
	doc.Insert(1, 0, "second")

	buf := frame.Empty(core.NewRect(4, 2))
	view := &DocumentView{Document: doc, Scroll: core.NewPosition(2, 1), Rows: 2}
	if err := view.Render(buf); err != nil {
		t.Fatalf("Render: %v", err)
	}

	if got := rowText(t, buf, 0); got != "cond" {
		t.Errorf("row 0 = %q, want %q", got, "cond")
	}
	if got := rowText(t, buf, 1); got != "~   " {
		t.Errorf("row 1 = %q, want %q", got, "~   ")
	}
}

func TestWelcomeScreenCentersBanner(t *testing.T) {
	buf := frame.Empty(core.NewRect(40, 9))
	screen := &WelcomeScreen{Version: "0.1.0", Rows: 9}
	if err := screen.Render(buf); err != nil {
		t.Fatalf("Render: %v", err)
	}

	banner := rowText(t, buf, 3)
	if !strings.HasPrefix(banner, "~") {
		t.Errorf("banner row %q does not start with filler", banner)
	}
	if !strings.Contains(banner, "Vire editor -- version 0.1.0") {
		t.Errorf("banner row %q missing greeting", banner)
	}

	for _, row := range []int{0, 1, 2, 4, 8} {
		if got := rowText(t, buf, row); strings.TrimRight(got, " ") != "~" {
			t.Errorf("row %d = %q, want filler", row, got)
		}
	}
}

func TestStatusBarLayout(t *testing.T) {
	buf := frame.Empty(core.NewRect(50, 3))
	bar := &StatusBar{
		Mode:        command.ModeInsert,
		FileName:    "notes.txt",
		Modified:    true,
		CurrentLine: 2,
		TotalLines:  10,
		Row:         2,
	}
	if err := bar.Render(buf); err != nil {
		t.Fatalf("Render: %v", err)
	}

	text := rowText(t, buf, 2)
	if !strings.HasPrefix(text, "Mode: [Insert]    File: notes.txt [+]") {
		t.Errorf("bar = %q", text)
	}
	if !strings.HasSuffix(text, "2/10") {
		t.Errorf("bar %q does not end with line indicator", text)
	}

	cell, err := buf.CellAt(core.NewPosition(0, 2))
	if err != nil {
		t.Fatal(err)
	}
	if cell.Style != core.DefaultStyle().Invert() {
		t.Errorf("bar style = %+v, want inverted default", cell.Style)
	}
}

func TestStatusBarModeSegmentStyle(t *testing.T) {
	modeStyle := core.Style{
		Foreground: core.ColorBlack,
		Background: core.ColorGreen,
	}

	buf := frame.Empty(core.NewRect(50, 1))
	bar := &StatusBar{
		Mode:        command.ModeNormal,
		CurrentLine: 1,
		TotalLines:  1,
		ModeStyle:   modeStyle,
	}
	if err := bar.Render(buf); err != nil {
		t.Fatalf("Render: %v", err)
	}

	first, err := buf.CellAt(core.NewPosition(0, 0))
	if err != nil {
		t.Fatal(err)
	}
	if first.Style != modeStyle {
		t.Errorf("mode segment style = %+v, want %+v", first.Style, modeStyle)
	}

	after, err := buf.CellAt(core.NewPosition(len("Mode: [Normal]"), 0))
	if err != nil {
		t.Fatal(err)
	}
	if after.Style != core.DefaultStyle().Invert() {
		t.Errorf("bar style past segment = %+v, want inverted default", after.Style)
	}
}

func TestStatusBarTruncatesLongFileName(t *testing.T) {
	buf := frame.Empty(core.NewRect(60, 1))
	bar := &StatusBar{
		Mode:        command.ModeNormal,
		FileName:    strings.Repeat("x", 40) + ".txt",
		CurrentLine: 1,
		TotalLines:  1,
	}
	if err := bar.Render(buf); err != nil {
		t.Fatalf("Render: %v", err)
	}

	text := rowText(t, buf, 0)
	if strings.Contains(text, strings.Repeat("x", 21)) {
		t.Errorf("file name not truncated: %q", text)
	}
}

func TestCommandLineRendersPromptRow(t *testing.T) {
	buf := frame.Empty(core.NewRect(20, 2))
	line := &CommandLine{Line: ":w notes.txt", Row: 1}
	if err := line.Render(buf); err != nil {
		t.Fatalf("Render: %v", err)
	}

	if got := rowText(t, buf, 1); got != ":w notes.txt        " {
		t.Errorf("row = %q", got)
	}
}
