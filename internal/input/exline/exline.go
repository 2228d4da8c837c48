// Package exline parses the text accumulated on the Execute-mode
// command line. The grammar is anchored at both ends:
//
//	command := ':' (quit | save | save_as)
//	quit    := 'q'
//	save    := 'w'
//	save_as := 'w' ' ' filename   (filename: one or more characters,
//	                               taken verbatim, spaces included)
//
// Anything else is reported as NotRecognisedError rather than silently
// discarded; the caller decides whether to surface a message.
package exline

import (
	"fmt"
	"strings"

	"github.com/vire-editor/vire/internal/input/command"
)

// NotRecognisedError reports input that matched no grammar rule. The
// offending text travels with the error so the editor can show it.
type NotRecognisedError struct {
	Input string
}

func (e *NotRecognisedError) Error() string {
	return fmt.Sprintf("input not recognised: %q", e.Input)
}

// Parse matches the whole input against the command grammar and
// returns the resulting command. Partial matches do not count.
func Parse(input string) (command.Command, error) {
	rest, ok := strings.CutPrefix(input, ":")
	if !ok {
		return command.Command{}, &NotRecognisedError{Input: input}
	}

	switch {
	case rest == "q":
		return command.Quit(), nil
	case rest == "w":
		return command.Save(), nil
	default:
		if name, ok := strings.CutPrefix(rest, "w "); ok && name != "" {
			return command.SaveAs(name), nil
		}
		return command.Command{}, &NotRecognisedError{Input: input}
	}
}
