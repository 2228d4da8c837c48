package mode

import (
	"github.com/vire-editor/vire/internal/input/command"
	"github.com/vire-editor/vire/internal/input/key"
)

// insertMode turns printable keys into insertions and keeps navigation
// keys working. Esc is the only way out.
type insertMode struct{}

func newInsert() *insertMode {
	return &insertMode{}
}

func (m *insertMode) Kind() command.Mode {
	return command.ModeInsert
}

func (m *insertMode) Handle(ev key.Event) (command.Command, bool) {
	switch ev.Key {
	case key.KeyRune:
		if !ev.IsChar() {
			return command.Command{}, false
		}
		return command.InsertChar(ev.Rune), true
	case key.KeyEnter:
		return command.InsertLineBreak(), true
	case key.KeyBackspace:
		return command.DeleteCharBackward(), true
	case key.KeyDelete:
		return command.DeleteCharForward(), true
	case key.KeyUp:
		return command.MoveCursorUp(1), true
	case key.KeyDown:
		return command.MoveCursorDown(1), true
	case key.KeyLeft:
		return command.MoveCursorLeft(1), true
	case key.KeyRight:
		return command.MoveCursorRight(1), true
	case key.KeyHome:
		return command.MoveCursorLineStart(), true
	case key.KeyEnd:
		return command.MoveCursorLineEnd(), true
	case key.KeyPageUp:
		return command.MoveCursorPageUp(), true
	case key.KeyPageDown:
		return command.MoveCursorPageDown(), true
	case key.KeyEscape:
		return command.EnterMode(command.ModeNormal), true
	default:
		return command.Command{}, false
	}
}
