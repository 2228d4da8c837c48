// Package command defines the closed set of editing intents the mode
// engine produces. A Command is a transient value: produced at most
// once per key event and consumed by the editor-level dispatch.
package command

import "fmt"

// Mode names the modal states of the editor. It lives here rather than
// in the mode package because EnterMode commands carry it.
type Mode int

const (
	// ModeNormal is the command/motion mode the editor starts in.
	ModeNormal Mode = iota

	// ModeInsert is the text-entry mode.
	ModeInsert

	// ModeExecute is the command-line entry mode opened with ':'.
	ModeExecute
)

// String returns the mode's display name.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "Normal"
	case ModeInsert:
		return "Insert"
	case ModeExecute:
		return "Execute"
	default:
		return "Unknown"
	}
}

// Kind discriminates the Command variants.
type Kind int

const (
	// KindNone is the zero value; not a command.
	KindNone Kind = iota

	// KindEnterMode switches the active mode (see Command.Mode).
	KindEnterMode

	// KindInsertChar inserts one character (see Command.Rune).
	KindInsertChar

	// KindInsertLineBreak splits the current line at the cursor.
	KindInsertLineBreak

	// KindDeleteCharForward deletes the character under the cursor.
	KindDeleteCharForward

	// KindDeleteCharBackward deletes the character before the cursor.
	KindDeleteCharBackward

	// KindMoveCursorUp .. KindMoveCursorRight move the cursor by
	// Command.Count rows or columns.
	KindMoveCursorUp
	KindMoveCursorDown
	KindMoveCursorLeft
	KindMoveCursorRight

	// KindMoveCursorLineStart and KindMoveCursorLineEnd jump within
	// the current line.
	KindMoveCursorLineStart
	KindMoveCursorLineEnd

	// KindMoveCursorPageUp and KindMoveCursorPageDown move by one
	// view height.
	KindMoveCursorPageUp
	KindMoveCursorPageDown

	// KindSave writes the document to its current path.
	KindSave

	// KindSaveAs writes the document to Command.Name.
	KindSaveAs

	// KindQuit ends the editor run.
	KindQuit

	// KindNotRecognised reports command-line input that matched no
	// grammar rule; Command.Input carries the offending text.
	KindNotRecognised
)

// Command is one discrete editing intent. Only the fields relevant to
// Kind are set; Commands compare with ==.
type Command struct {
	Kind  Kind
	Mode  Mode
	Rune  rune
	Count int
	Name  string
	Input string
}

// EnterMode creates a mode transition command.
func EnterMode(mode Mode) Command {
	return Command{Kind: KindEnterMode, Mode: mode}
}

// InsertChar creates a character insertion command.
func InsertChar(r rune) Command {
	return Command{Kind: KindInsertChar, Rune: r}
}

// InsertLineBreak creates a line split command.
func InsertLineBreak() Command {
	return Command{Kind: KindInsertLineBreak}
}

// DeleteCharForward creates a forward deletion command.
func DeleteCharForward() Command {
	return Command{Kind: KindDeleteCharForward}
}

// DeleteCharBackward creates a backward deletion command.
func DeleteCharBackward() Command {
	return Command{Kind: KindDeleteCharBackward}
}

// MoveCursorUp creates an upward motion repeated count times.
func MoveCursorUp(count int) Command {
	return Command{Kind: KindMoveCursorUp, Count: count}
}

// MoveCursorDown creates a downward motion repeated count times.
func MoveCursorDown(count int) Command {
	return Command{Kind: KindMoveCursorDown, Count: count}
}

// MoveCursorLeft creates a leftward motion repeated count times.
func MoveCursorLeft(count int) Command {
	return Command{Kind: KindMoveCursorLeft, Count: count}
}

// MoveCursorRight creates a rightward motion repeated count times.
func MoveCursorRight(count int) Command {
	return Command{Kind: KindMoveCursorRight, Count: count}
}

// MoveCursorLineStart creates a jump to column 0.
func MoveCursorLineStart() Command {
	return Command{Kind: KindMoveCursorLineStart}
}

// MoveCursorLineEnd creates a jump past the last column.
func MoveCursorLineEnd() Command {
	return Command{Kind: KindMoveCursorLineEnd}
}

// MoveCursorPageUp creates an upward jump of one view height.
func MoveCursorPageUp() Command {
	return Command{Kind: KindMoveCursorPageUp}
}

// MoveCursorPageDown creates a downward jump of one view height.
func MoveCursorPageDown() Command {
	return Command{Kind: KindMoveCursorPageDown}
}

// Save creates a write-to-current-path command.
func Save() Command {
	return Command{Kind: KindSave}
}

// SaveAs creates a write-to-named-path command. The name is taken
// verbatim, spaces included.
func SaveAs(name string) Command {
	return Command{Kind: KindSaveAs, Name: name}
}

// Quit creates the quit command.
func Quit() Command {
	return Command{Kind: KindQuit}
}

// NotRecognised reports unmatched command-line input as data.
func NotRecognised(input string) Command {
	return Command{Kind: KindNotRecognised, Input: input}
}

// String returns a readable form for logs and test failures.
func (c Command) String() string {
	switch c.Kind {
	case KindEnterMode:
		return fmt.Sprintf("EnterMode(%s)", c.Mode)
	case KindInsertChar:
		return fmt.Sprintf("InsertChar(%q)", c.Rune)
	case KindSaveAs:
		return fmt.Sprintf("SaveAs(%q)", c.Name)
	case KindNotRecognised:
		return fmt.Sprintf("NotRecognised(%q)", c.Input)
	case KindMoveCursorUp, KindMoveCursorDown, KindMoveCursorLeft, KindMoveCursorRight:
		return fmt.Sprintf("MoveCursor(kind=%d, count=%d)", c.Kind, c.Count)
	default:
		return fmt.Sprintf("Command(kind=%d)", c.Kind)
	}
}
