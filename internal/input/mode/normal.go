package mode

import (
	"math"

	"github.com/vire-editor/vire/internal/input/command"
	"github.com/vire-editor/vire/internal/input/key"
)

// normalMode interprets keys as motions and mode switches. Character
// keys accumulate in an input buffer so multi-key sequences like "12j"
// resolve once complete; Esc discards whatever is pending.
type normalMode struct {
	inputBuffer []rune
}

func newNormal() *normalMode {
	return &normalMode{}
}

func (m *normalMode) Kind() command.Mode {
	return command.ModeNormal
}

func (m *normalMode) Handle(ev key.Event) (command.Command, bool) {
	// Non-character keys resolve directly; they never participate in
	// a sequence.
	switch ev.Key {
	case key.KeyEscape:
		m.inputBuffer = m.inputBuffer[:0]
		return command.Command{}, false
	case key.KeyHome:
		return command.MoveCursorLineStart(), true
	case key.KeyEnd:
		return command.MoveCursorLineEnd(), true
	case key.KeyPageUp:
		return command.MoveCursorPageUp(), true
	case key.KeyPageDown:
		return command.MoveCursorPageDown(), true
	case key.KeyInsert:
		return command.EnterMode(command.ModeInsert), true
	case key.KeyRune:
		m.inputBuffer = append(m.inputBuffer, ev.Rune)
		if cmd, ok := parseSequence(m.inputBuffer); ok {
			m.inputBuffer = m.inputBuffer[:0]
			return cmd, true
		}
		return command.Command{}, false
	default:
		return command.Command{}, false
	}
}

// parseSequence matches the accumulated buffer against the Normal-mode
// grammar: ":" and "i" switch modes, and an optional count prefix
// followed by one of h/j/k/l is a repeated motion. The match is
// anchored, so "j" resolves immediately while "12" stays pending.
func parseSequence(seq []rune) (command.Command, bool) {
	switch string(seq) {
	case ":":
		return command.EnterMode(command.ModeExecute), true
	case "i":
		return command.EnterMode(command.ModeInsert), true
	}
	return parseMotion(seq)
}

// parseMotion parses [1-9][0-9]* followed by exactly one motion key.
// A leading zero never starts a count ('0' is reserved for a line-start
// binding); a count that would overflow is treated as no match rather
// than silently wrapping.
func parseMotion(seq []rune) (command.Command, bool) {
	if len(seq) == 0 {
		return command.Command{}, false
	}

	count := 1
	rest := seq
	if rest[0] >= '1' && rest[0] <= '9' {
		count = 0
		for len(rest) > 0 && rest[0] >= '0' && rest[0] <= '9' {
			digit := int(rest[0] - '0')
			if count > (math.MaxInt-digit)/10 {
				return command.Command{}, false
			}
			count = count*10 + digit
			rest = rest[1:]
		}
	}

	if len(rest) != 1 {
		return command.Command{}, false
	}

	switch rest[0] {
	case 'h':
		return command.MoveCursorLeft(count), true
	case 'j':
		return command.MoveCursorDown(count), true
	case 'k':
		return command.MoveCursorUp(count), true
	case 'l':
		return command.MoveCursorRight(count), true
	default:
		return command.Command{}, false
	}
}
