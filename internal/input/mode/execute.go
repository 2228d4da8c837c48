package mode

import (
	"errors"
	"unicode"

	"github.com/vire-editor/vire/internal/input/command"
	"github.com/vire-editor/vire/internal/input/exline"
	"github.com/vire-editor/vire/internal/input/key"
)

// promptSymbol opens every command line.
const promptSymbol = ':'

// executeMode accumulates a command line. The row includes the leading
// prompt; the cursor never moves before it. Enter hands the line to the
// exline grammar, Esc discards it, and deleting the line down to the
// bare prompt aborts back to Normal.
type executeMode struct {
	row       []rune
	cursorCol int
}

func newExecute() *executeMode {
	return &executeMode{
		row:       []rune{promptSymbol},
		cursorCol: 1,
	}
}

func (m *executeMode) Kind() command.Mode {
	return command.ModeExecute
}

// Line returns the accumulated command line, prompt included.
func (m *executeMode) Line() string {
	return string(m.row)
}

// CursorCol returns the cursor column within the command line.
func (m *executeMode) CursorCol() int {
	return m.cursorCol
}

func (m *executeMode) Handle(ev key.Event) (command.Command, bool) {
	switch ev.Key {
	case key.KeyRune:
		if !unicode.IsPrint(ev.Rune) {
			return command.Command{}, false
		}
		m.insert(ev.Rune)
		return command.Command{}, false
	case key.KeyEnter:
		return m.parse(), true
	case key.KeyBackspace:
		if m.cursorCol > 1 {
			m.cursorCol--
			m.delete(m.cursorCol)
		}
		if len(m.row) <= 1 {
			return command.EnterMode(command.ModeNormal), true
		}
		return command.Command{}, false
	case key.KeyDelete:
		m.delete(m.cursorCol)
		if len(m.row) <= 1 {
			return command.EnterMode(command.ModeNormal), true
		}
		return command.Command{}, false
	case key.KeyLeft:
		if m.cursorCol > 1 {
			m.cursorCol--
		}
		return command.Command{}, false
	case key.KeyRight:
		if m.cursorCol < len(m.row) {
			m.cursorCol++
		}
		return command.Command{}, false
	case key.KeyHome:
		m.cursorCol = 1
		return command.Command{}, false
	case key.KeyEnd:
		m.cursorCol = len(m.row)
		return command.Command{}, false
	case key.KeyEscape:
		return command.EnterMode(command.ModeNormal), true
	default:
		return command.Command{}, false
	}
}

func (m *executeMode) insert(r rune) {
	m.row = append(m.row, 0)
	copy(m.row[m.cursorCol+1:], m.row[m.cursorCol:])
	m.row[m.cursorCol] = r
	m.cursorCol++
}

func (m *executeMode) delete(at int) {
	if at < 1 || at >= len(m.row) {
		return
	}
	m.row = append(m.row[:at], m.row[at+1:]...)
}

// parse runs the accumulated line through the command grammar. Matched
// or not, the engine returns to Normal afterwards; unmatched input is
// reported as data so the editor can show a message.
func (m *executeMode) parse() command.Command {
	line := m.Line()

	cmd, err := exline.Parse(line)
	if err != nil {
		var notRecognised *exline.NotRecognisedError
		if errors.As(err, &notRecognised) {
			return command.NotRecognised(notRecognised.Input)
		}
		return command.NotRecognised(line)
	}
	return cmd
}
