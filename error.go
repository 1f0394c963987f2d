package filelist

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/sv-explorer/filelist/lexer"
)

// Position of a token or error within a filelist.
type Position = lexer.Position

// Error represents an error while parsing a directive.
//
// The error will contain positional information if available.
type Error interface {
	error
	// Unadorned message.
	Message() string
	// Position error occurred.
	Position() lexer.Position
}

// ErrorKind classifies a ParseError.
type ErrorKind int

// Kinds of ParseError.
const (
	// UnknownError is reported by KindOf for errors not produced by this package.
	UnknownError ErrorKind = iota
	// InvalidToken is a lexical error: the input matches no token.
	InvalidToken
	// UnexpectedToken is a token the grammar does not allow at its position.
	UnexpectedToken
	// UnexpectedEndOfInput is a directive that ends before it is complete.
	UnexpectedEndOfInput
	// TrailingInput is a token following a complete directive.
	TrailingInput
	// IOFailure is a failure to read the filelist.
	IOFailure
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidToken:
		return "InvalidToken"
	case UnexpectedToken:
		return "UnexpectedToken"
	case UnexpectedEndOfInput:
		return "UnexpectedEndOfInput"
	case TrailingInput:
		return "TrailingInput"
	case IOFailure:
		return "IOFailure"
	}
	return "UnknownError"
}

// ParseError is returned when a single line fails to tokenize, parse or be read.
type ParseError struct {
	Kind ErrorKind
	// Token is the offending token. It is nil for InvalidToken, IOFailure and at end of input.
	Token *lexer.Token
	Pos   lexer.Position
	// Expected describes what the grammar would have accepted, if known.
	Expected string
	// Text is the input that failed to tokenize, for InvalidToken.
	Text string
	// Err is the underlying lexer or I/O error, if any.
	Err error
}

var _ Error = &ParseError{}

func (p *ParseError) Message() string {
	var expected string
	if p.Expected != "" {
		expected = fmt.Sprintf(" (expected %s)", p.Expected)
	}
	switch p.Kind {
	case InvalidToken:
		return fmt.Sprintf("no matching directive at %q", p.Text)
	case UnexpectedToken:
		return fmt.Sprintf("unexpected token %q%s", p.Token.Value, expected)
	case UnexpectedEndOfInput:
		return "unexpected end of input" + expected
	case TrailingInput:
		return fmt.Sprintf("unexpected trailing token %q", p.Token.Value)
	case IOFailure:
		return fmt.Sprintf("read failed: %s", p.Err)
	}
	if p.Err != nil {
		return p.Err.Error()
	}
	return p.Kind.String()
}

func (p *ParseError) Position() lexer.Position { return p.Pos }

func (p *ParseError) Error() string {
	return lexer.FormatError(p.Pos, p.Message())
}

func (p *ParseError) Unwrap() error { return p.Err }

func invalidToken(err error) *ParseError {
	var lerr *lexer.Error
	if errors.As(err, &lerr) {
		return &ParseError{Kind: InvalidToken, Pos: lerr.Pos, Text: lerr.Text, Err: err}
	}
	return &ParseError{Kind: InvalidToken, Err: err}
}

func unexpected(token lexer.Token, expected string) *ParseError {
	if token.EOF() {
		return &ParseError{Kind: UnexpectedEndOfInput, Pos: token.Pos, Expected: expected}
	}
	return &ParseError{Kind: UnexpectedToken, Token: &token, Pos: token.Pos, Expected: expected}
}

// LineError reports the line of a filelist that could not be parsed.
type LineError struct {
	Filename string
	// Index of the line, starting at 0.
	Index int
	// Text of the line as read.
	Text string
	Err  error
}

func (l *LineError) Error() string {
	prefix := strconv.Itoa(l.Index + 1)
	if l.Filename != "" {
		prefix = l.Filename + ":" + prefix
	}
	if l.Err == nil {
		return prefix + ": unknown error"
	}
	message := l.Err.Error()
	var perr Error
	if errors.As(l.Err, &perr) {
		message = perr.Message()
		if column := perr.Position().Column; column > 0 {
			prefix += ":" + strconv.Itoa(column)
		}
	}
	return prefix + ": " + message
}

func (l *LineError) Unwrap() error { return l.Err }

// KindOf returns the ErrorKind of the first ParseError in err's chain.
func KindOf(err error) ErrorKind {
	var perr *ParseError
	if errors.As(err, &perr) {
		return perr.Kind
	}
	return UnknownError
}
