package mode

import (
	"testing"

	"github.com/vire-editor/vire/internal/input/command"
	"github.com/vire-editor/vire/internal/input/key"
)

// feed runs a string of character presses through the engine and
// returns the last produced command, if any.
func feed(e *Engine, s string) (command.Command, bool) {
	var last command.Command
	var produced bool
	for _, r := range s {
		if cmd, ok := e.HandleKey(key.Char(r)); ok {
			last, produced = cmd, true
		}
	}
	return last, produced
}

func TestEngineStartsInNormal(t *testing.T) {
	e := NewEngine()
	if e.Current() != command.ModeNormal {
		t.Errorf("engine starts in %v, want Normal", e.Current())
	}
}

func TestNormalMotions(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  command.Command
	}{
		{"j alone", "j", command.MoveCursorDown(1)},
		{"k alone", "k", command.MoveCursorUp(1)},
		{"h alone", "h", command.MoveCursorLeft(1)},
		{"l alone", "l", command.MoveCursorRight(1)},
		{"counted down", "12j", command.MoveCursorDown(12)},
		{"counted up", "3k", command.MoveCursorUp(3)},
		{"count with internal zero", "10l", command.MoveCursorRight(10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine()
			got, ok := feed(e, tt.input)
			if !ok {
				t.Fatalf("feed(%q) produced no command", tt.input)
			}
			if got != tt.want {
				t.Errorf("feed(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if e.Current() != command.ModeNormal {
				t.Errorf("mode after motion = %v, want Normal", e.Current())
			}
		})
	}
}

func TestNormalCountAlonePending(t *testing.T) {
	e := NewEngine()
	if _, ok := feed(e, "12"); ok {
		t.Error("bare count must stay pending")
	}
	got, ok := e.HandleKey(key.Char('j'))
	if !ok || got != command.MoveCursorDown(12) {
		t.Errorf("completing pending count = %v (ok=%v), want MoveCursorDown(12)", got, ok)
	}
}

func TestNormalEscClearsPendingInput(t *testing.T) {
	e := NewEngine()
	feed(e, "12")
	e.HandleKey(key.Special(key.KeyEscape))

	got, ok := e.HandleKey(key.Char('j'))
	if !ok || got != command.MoveCursorDown(1) {
		t.Errorf("after Esc, j = %v (ok=%v), want MoveCursorDown(1)", got, ok)
	}
}

func TestNormalLeadingZeroNeverStartsCount(t *testing.T) {
	e := NewEngine()
	if cmd, ok := feed(e, "0j"); ok {
		t.Errorf("leading zero sequence matched %v, want pending", cmd)
	}
}

func TestNormalOverflowingCountIsNoMatch(t *testing.T) {
	e := NewEngine()
	if cmd, ok := feed(e, "99999999999999999999j"); ok {
		t.Errorf("overflowing count matched %v, want no match", cmd)
	}
}

func TestNormalSpecialKeys(t *testing.T) {
	tests := []struct {
		name string
		key  key.Key
		want command.Command
	}{
		{"home", key.KeyHome, command.MoveCursorLineStart()},
		{"end", key.KeyEnd, command.MoveCursorLineEnd()},
		{"page up", key.KeyPageUp, command.MoveCursorPageUp()},
		{"page down", key.KeyPageDown, command.MoveCursorPageDown()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine()
			got, ok := e.HandleKey(key.Special(tt.key))
			if !ok || got != tt.want {
				t.Errorf("got %v (ok=%v), want %v", got, ok, tt.want)
			}
		})
	}
}

func TestNormalEntersInsert(t *testing.T) {
	for _, press := range []key.Event{key.Char('i'), key.Special(key.KeyInsert)} {
		e := NewEngine()
		got, ok := e.HandleKey(press)
		if !ok || got != command.EnterMode(command.ModeInsert) {
			t.Errorf("%v produced %v (ok=%v), want EnterMode(Insert)", press, got, ok)
		}
		if e.Current() != command.ModeInsert {
			t.Errorf("mode after %v = %v, want Insert", press, e.Current())
		}
	}
}

func TestNormalColonEntersExecute(t *testing.T) {
	e := NewEngine()
	got, ok := e.HandleKey(key.Char(':'))
	if !ok || got != command.EnterMode(command.ModeExecute) {
		t.Fatalf("':' produced %v (ok=%v), want EnterMode(Execute)", got, ok)
	}
	if e.Current() != command.ModeExecute {
		t.Errorf("mode = %v, want Execute", e.Current())
	}
}

func TestInsertKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   key.Event
		want command.Command
	}{
		{"printable", key.Char('x'), command.InsertChar('x')},
		{"space", key.Char(' '), command.InsertChar(' ')},
		{"enter", key.Special(key.KeyEnter), command.InsertLineBreak()},
		{"backspace", key.Special(key.KeyBackspace), command.DeleteCharBackward()},
		{"delete", key.Special(key.KeyDelete), command.DeleteCharForward()},
		{"arrow left", key.Special(key.KeyLeft), command.MoveCursorLeft(1)},
		{"arrow down", key.Special(key.KeyDown), command.MoveCursorDown(1)},
		{"home", key.Special(key.KeyHome), command.MoveCursorLineStart()},
		{"page down", key.Special(key.KeyPageDown), command.MoveCursorPageDown()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine()
			e.HandleKey(key.Char('i'))

			got, ok := e.HandleKey(tt.ev)
			if !ok || got != tt.want {
				t.Errorf("got %v (ok=%v), want %v", got, ok, tt.want)
			}
			if e.Current() != command.ModeInsert {
				t.Errorf("mode = %v, want Insert", e.Current())
			}
		})
	}
}

func TestInsertEscReturnsToNormalWithCleanBuffer(t *testing.T) {
	e := NewEngine()
	e.HandleKey(key.Char('i'))

	got, ok := e.HandleKey(key.Special(key.KeyEscape))
	if !ok || got != command.EnterMode(command.ModeNormal) {
		t.Fatalf("Esc produced %v (ok=%v), want EnterMode(Normal)", got, ok)
	}
	if e.Current() != command.ModeNormal {
		t.Fatalf("mode = %v, want Normal", e.Current())
	}

	// Normal-mode parsing must start from an empty accumulation
	// buffer.
	cmd, ok := e.HandleKey(key.Char('j'))
	if !ok || cmd != command.MoveCursorDown(1) {
		t.Errorf("first Normal key after Esc = %v (ok=%v), want MoveCursorDown(1)", cmd, ok)
	}
}

func TestExecuteLineAccumulation(t *testing.T) {
	e := NewEngine()
	e.HandleKey(key.Char(':'))
	feed(e, "w notes.txt")

	line, col, ok := e.CommandLine()
	if !ok {
		t.Fatal("CommandLine not available in Execute mode")
	}
	if line != ":w notes.txt" {
		t.Errorf("line = %q, want %q", line, ":w notes.txt")
	}
	if col != len(":w notes.txt") {
		t.Errorf("cursor col = %d, want %d", col, len(":w notes.txt"))
	}
}

func TestExecuteEnterParsesAndReturnsToNormal(t *testing.T) {
	tests := []struct {
		name  string
		typed string
		want  command.Command
	}{
		{"quit", "q", command.Quit()},
		{"save", "w", command.Save()},
		{"save as", "w notes.txt", command.SaveAs("notes.txt")},
		{"not recognised", "x", command.NotRecognised(":x")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine()
			e.HandleKey(key.Char(':'))
			feed(e, tt.typed)

			got, ok := e.HandleKey(key.Special(key.KeyEnter))
			if !ok || got != tt.want {
				t.Errorf("Enter produced %v (ok=%v), want %v", got, ok, tt.want)
			}
			if e.Current() != command.ModeNormal {
				t.Errorf("mode after Enter = %v, want Normal", e.Current())
			}
		})
	}
}

func TestExecuteEscAborts(t *testing.T) {
	e := NewEngine()
	e.HandleKey(key.Char(':'))
	feed(e, "w notes")

	got, ok := e.HandleKey(key.Special(key.KeyEscape))
	if !ok || got != command.EnterMode(command.ModeNormal) {
		t.Fatalf("Esc produced %v (ok=%v), want EnterMode(Normal)", got, ok)
	}
	if e.Current() != command.ModeNormal {
		t.Errorf("mode = %v, want Normal", e.Current())
	}
}

func TestExecuteBackspaceToEmptyAborts(t *testing.T) {
	e := NewEngine()
	e.HandleKey(key.Char(':'))
	e.HandleKey(key.Char('q'))

	if _, ok := e.HandleKey(key.Special(key.KeyBackspace)); !ok {
		t.Fatal("backspacing the last character must abort")
	}
	if e.Current() != command.ModeNormal {
		t.Errorf("mode = %v, want Normal", e.Current())
	}
}

func TestExecuteCursorEditing(t *testing.T) {
	e := NewEngine()
	e.HandleKey(key.Char(':'))
	feed(e, "wq")

	// Move left over 'q' and delete it forward.
	e.HandleKey(key.Special(key.KeyLeft))
	e.HandleKey(key.Special(key.KeyDelete))

	line, col, ok := e.CommandLine()
	if !ok {
		t.Fatal("CommandLine not available")
	}
	if line != ":w" {
		t.Errorf("line = %q, want %q", line, ":w")
	}
	if col != 2 {
		t.Errorf("cursor col = %d, want 2", col)
	}

	// Cursor cannot cross the prompt.
	e.HandleKey(key.Special(key.KeyHome))
	e.HandleKey(key.Special(key.KeyLeft))
	if _, col, _ = e.CommandLine(); col != 1 {
		t.Errorf("cursor col = %d, want 1 (pinned after prompt)", col)
	}
}

func TestExecuteUnhandledKeysIgnored(t *testing.T) {
	e := NewEngine()
	e.HandleKey(key.Char(':'))

	if cmd, ok := e.HandleKey(key.Special(key.KeyPageUp)); ok {
		t.Errorf("PageUp in Execute produced %v, want nothing", cmd)
	}
	if e.Current() != command.ModeExecute {
		t.Errorf("mode = %v, want Execute", e.Current())
	}
}
