package viewport

import (
	"errors"
	"testing"

	"github.com/vire-editor/vire/internal/renderer/backend"
	"github.com/vire-editor/vire/internal/renderer/core"
	"github.com/vire-editor/vire/internal/renderer/frame"
)

type textComponent struct {
	row  int
	text string
}

func (c textComponent) Render(buffer *frame.Buffer) error {
	return buffer.WriteLine(c.row, c.text, core.DefaultStyle())
}

func TestDrawSendsOnlyChangedCells(t *testing.T) {
	canvas := backend.NewNullCanvas(10, 10)
	vp, err := New(canvas)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	draw := func(text string) {
		t.Helper()
		err := vp.Draw(func(f *frame.Frame) error {
			return f.Render(textComponent{row: 0, text: text})
		})
		if err != nil {
			t.Fatalf("Draw: %v", err)
		}
	}

	// "Hello World!" truncates to "Hello Worl" on a width of 10. The
	// space at col 5 matches the blank cell it replaces, so 9 cells
	// change.
	draw("Hello World!")
	if got := len(canvas.LastDraw()); got != 9 {
		t.Fatalf("first draw sent %d cells, want 9", got)
	}

	draw("Hello Girl")
	// The first draw left "Hello Worl" on screen ("d!" fell past the
	// width). Against "Hello Girl" only cols 6 and 7 differ; the "rl"
	// tail and the "Hello " prefix are unchanged.
	changed := canvas.LastDraw()
	want := []core.Cell{
		core.NewCell(6, 0, "G", core.DefaultStyle()),
		core.NewCell(7, 0, "i", core.DefaultStyle()),
	}
	if len(changed) != len(want) {
		t.Fatalf("second draw sent %d cells, want %d: %+v", len(changed), len(want), changed)
	}
	for i, cell := range changed {
		if cell != want[i] {
			t.Errorf("changed[%d] = %+v, want %+v", i, cell, want[i])
		}
	}
}

func TestDrawIdenticalFrameSendsNothing(t *testing.T) {
	canvas := backend.NewNullCanvas(10, 4)
	vp, err := New(canvas)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	render := func(f *frame.Frame) error {
		return f.Render(textComponent{row: 1, text: "steady"})
	}

	if err := vp.Draw(render); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if err := vp.Draw(render); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	if got := len(canvas.LastDraw()); got != 0 {
		t.Errorf("unchanged frame sent %d cells, want 0", got)
	}
}

func TestDrawCursorSequence(t *testing.T) {
	canvas := backend.NewNullCanvas(8, 4)
	vp, err := New(canvas)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	err = vp.Draw(func(f *frame.Frame) error {
		f.SetCursorPosition(core.NewPosition(3, 2))
		return nil
	})
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}

	if canvas.CursorHidden {
		t.Error("cursor must be visible after draw")
	}
	if canvas.CursorRow != 2 || canvas.CursorCol != 3 {
		t.Errorf("cursor at (%d,%d), want row 2 col 3", canvas.CursorRow, canvas.CursorCol)
	}
	if canvas.Flushes != 1 {
		t.Errorf("expected 1 flush, got %d", canvas.Flushes)
	}
}

func TestFailedDrawKeepsSnapshotForRetry(t *testing.T) {
	canvas := backend.NewNullCanvas(10, 2)
	vp, err := New(canvas)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	render := func(f *frame.Frame) error {
		return f.Render(textComponent{row: 0, text: "hello"})
	}

	if err := vp.Draw(render); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	boom := errors.New("boom")
	canvas.FailDraw = boom
	if err := vp.Draw(render); !errors.Is(err, boom) {
		t.Fatalf("expected injected error, got %v", err)
	}

	// The retry renders the same content; the snapshot still matches
	// what is on screen, so nothing is re-sent.
	canvas.FailDraw = nil
	if err := vp.Draw(render); err != nil {
		t.Fatalf("retry Draw: %v", err)
	}
	if got := len(canvas.LastDraw()); got != 0 {
		t.Errorf("retry re-sent %d cells, want 0", got)
	}
}

func TestRenderErrorPropagates(t *testing.T) {
	canvas := backend.NewNullCanvas(5, 5)
	vp, err := New(canvas)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	boom := errors.New("render failed")
	if err := vp.Draw(func(*frame.Frame) error { return boom }); !errors.Is(err, boom) {
		t.Errorf("expected render error, got %v", err)
	}
	if canvas.Flushes != 0 {
		t.Error("failed draw must not flush")
	}
}
