// Package key defines the closed set of key presses the editor accepts.
// The terminal backend translates its own event representation into
// these values; everything above the backend only sees key.Event.
package key

import (
	"fmt"
	"unicode"
)

// Key identifies a key on the keyboard.
type Key int

const (
	// KeyNone is the zero value; no key.
	KeyNone Key = iota

	// KeyRune is a plain character key (see Event.Rune).
	KeyRune

	// KeyCtrlRune is a character pressed together with Ctrl.
	KeyCtrlRune

	KeyEnter
	KeyTab
	KeyBackspace
	KeyEscape
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// KeyUnknown is anything the backend could not classify.
	KeyUnknown
)

// String returns the key name.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyRune:
		return "Rune"
	case KeyCtrlRune:
		return "Ctrl"
	case KeyEnter:
		return "Enter"
	case KeyTab:
		return "Tab"
	case KeyBackspace:
		return "Backspace"
	case KeyEscape:
		return "Esc"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyInsert:
		return "Insert"
	case KeyDelete:
		return "Delete"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyPageUp:
		return "PageUp"
	case KeyPageDown:
		return "PageDown"
	default:
		return "Unknown"
	}
}

// Event is a single key press. Rune is meaningful for KeyRune and
// KeyCtrlRune only. Events compare with ==.
type Event struct {
	Key  Key
	Rune rune
}

// Char creates an event for a plain character key.
func Char(r rune) Event {
	return Event{Key: KeyRune, Rune: r}
}

// Ctrl creates an event for a Ctrl+character chord.
func Ctrl(r rune) Event {
	return Event{Key: KeyCtrlRune, Rune: r}
}

// Special creates an event for a non-character key.
func Special(k Key) Event {
	return Event{Key: k}
}

// IsChar reports whether this is a plain printable character press.
func (e Event) IsChar() bool {
	return e.Key == KeyRune && unicode.IsPrint(e.Rune)
}

// String returns a readable form, mainly for logs and test failures.
func (e Event) String() string {
	switch e.Key {
	case KeyRune:
		return string(e.Rune)
	case KeyCtrlRune:
		return fmt.Sprintf("C-%c", e.Rune)
	default:
		return e.Key.String()
	}
}
