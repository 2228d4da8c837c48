// Package mode implements the modal input state machine. Exactly one
// mode is active at a time; each interprets key presses by its own
// rules and produces commands for the editor to dispatch. Transitions
// replace the active mode wholesale, so a freshly entered mode always
// starts with clean state.
package mode

import (
	"github.com/vire-editor/vire/internal/input/command"
	"github.com/vire-editor/vire/internal/input/key"
)

// Mode interprets key presses while it is active. Handle returns the
// resulting command and whether one was produced; a mode may consume a
// key purely as internal state (count digits, command-line editing)
// without emitting anything.
type Mode interface {
	// Kind identifies the mode.
	Kind() command.Mode

	// Handle processes one key press.
	Handle(ev key.Event) (command.Command, bool)
}

// Engine owns the active mode and applies mode transitions. It is the
// single entry point for key events: raw key in, at most one command
// out.
type Engine struct {
	current Mode
}

// NewEngine creates an Engine starting in Normal mode.
func NewEngine() *Engine {
	return &Engine{current: newNormal()}
}

// Current returns the kind of the active mode.
func (e *Engine) Current() command.Mode {
	return e.current.Kind()
}

// HandleKey feeds one key press to the active mode and returns the
// command it produced, if any. EnterMode commands are applied here
// before being returned, so callers observe the transition already
// done. A command that ends Execute-mode input (the parse result of
// Enter) drops the engine back to Normal regardless of parse success.
func (e *Engine) HandleKey(ev key.Event) (command.Command, bool) {
	wasExecute := e.current.Kind() == command.ModeExecute

	cmd, ok := e.current.Handle(ev)
	if !ok {
		return command.Command{}, false
	}

	if cmd.Kind == command.KindEnterMode {
		e.transition(cmd.Mode)
		return cmd, true
	}

	if wasExecute && endsExecuteInput(cmd.Kind) {
		e.transition(command.ModeNormal)
	}

	return cmd, true
}

// CommandLine returns the Execute-mode line and cursor column for
// rendering. ok is false in any other mode.
func (e *Engine) CommandLine() (line string, cursorCol int, ok bool) {
	exec, isExec := e.current.(*executeMode)
	if !isExec {
		return "", 0, false
	}
	return exec.Line(), exec.CursorCol(), true
}

func (e *Engine) transition(to command.Mode) {
	switch to {
	case command.ModeInsert:
		e.current = newInsert()
	case command.ModeExecute:
		e.current = newExecute()
	default:
		e.current = newNormal()
	}
}

// endsExecuteInput reports whether a command concludes command-line
// entry. These are the possible outcomes of pressing Enter in Execute
// mode.
func endsExecuteInput(kind command.Kind) bool {
	switch kind {
	case command.KindQuit, command.KindSave, command.KindSaveAs, command.KindNotRecognised:
		return true
	default:
		return false
	}
}
