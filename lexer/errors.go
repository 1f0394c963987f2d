package lexer

import "fmt"

// Error is returned when the input at Pos matches no token.
type Error struct {
	Pos  Position
	Text string
}

// Message is the error without its position.
func (e *Error) Message() string {
	return fmt.Sprintf("no matching directive at %q", e.Text)
}

// Position of the offending input.
func (e *Error) Position() Position { return e.Pos }

func (e *Error) Error() string {
	return FormatError(e.Pos, e.Message())
}

// FormatError formats an error in the form "[<filename>:]<line>:<col>: <message>"
//
// A position without a line number only contributes its filename.
func FormatError(pos Position, message string) string {
	var prefix string
	switch {
	case pos.Line == 0:
		prefix = pos.Filename
	case pos.Filename == "":
		prefix = fmt.Sprintf("%d:%d", pos.Line, pos.Column)
	default:
		prefix = fmt.Sprintf("%s:%d:%d", pos.Filename, pos.Line, pos.Column)
	}
	if prefix == "" {
		return message
	}
	return prefix + ": " + message
}
