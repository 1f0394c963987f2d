package lexer

import (
	"strings"
	"unicode/utf8"

	plexer "github.com/alecthomas/participle/v2/lexer"
)

// Rules are tried in order, so the flag literals win over PathContent.
var definition = plexer.MustSimple([]plexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*\n?`},
	{Name: "Whitespace", Pattern: `[ \t\n\f]+`},
	{Name: "IncludeDir", Pattern: `\+incdir\+`},
	{Name: "Define", Pattern: `\+define\+`},
	{Name: "V", Pattern: `-v`},
	{Name: "Y", Pattern: `-y`},
	{Name: "Equals", Pattern: `=`},
	{Name: "Quote", Pattern: `"`},
	{Name: "PathContent", Pattern: `[./_a-zA-Z][./_0-9a-zA-Z]*`},
})

var (
	symbolsByType = plexer.SymbolsByRune(definition)
	elided        = map[string]bool{"Comment": true, "Whitespace": true}
	kindsByName   = Symbols()
)

// Lexer lazily tokenizes a single line.
type Lexer struct {
	input string
	lex   plexer.Lexer
	pos   Position
	err   error
}

// Lex starts tokenizing line. "filename" is only used in token positions.
func Lex(filename, line string) *Lexer {
	return LexAt(filename, 1, line)
}

// LexAt tokenizes line as the given 1-based line number of a file.
//
// Offsets in positions and spans are relative to the start of line.
func LexAt(filename string, lineno int, line string) *Lexer {
	l := &Lexer{
		input: line,
		pos:   Position{Filename: filename, Line: lineno, Column: 1},
	}
	l.lex, l.err = definition.LexString(filename, line)
	return l
}

// LexString tokenizes line without a filename.
func LexString(line string) *Lexer {
	return Lex("", line)
}

// Next consumes and returns the next token.
//
// Once the input is exhausted an EOF token is returned on every call. After
// an error the same error is returned on every call.
func (l *Lexer) Next() (Token, error) {
	for l.err == nil {
		t, err := l.lex.Next()
		if err != nil {
			l.err = l.invalid()
			break
		}
		if t.EOF() {
			return Token{Kind: EOF, Pos: l.pos, Span: Span{Start: l.pos.Offset, End: l.pos.Offset}}, nil
		}
		start := l.pos
		l.pos = advance(l.pos, t.Value)
		name := symbolsByType[t.Type]
		if elided[name] {
			continue
		}
		return Token{
			Kind:  kindsByName[name],
			Value: t.Value,
			Pos:   start,
			Span:  Span{Start: start.Offset, End: l.pos.Offset},
		}, nil
	}
	return Token{}, l.err
}

// Position of the next unconsumed character.
func (l *Lexer) Position() Position {
	return l.pos
}

func (l *Lexer) invalid() *Error {
	rest := l.input[l.pos.Offset:]
	if end := strings.IndexAny(rest, " \t\n\f"); end >= 0 {
		rest = rest[:end]
	}
	sample := []rune(rest)
	if len(sample) > 16 {
		sample = append(sample[:16], []rune("...")...)
	}
	return &Error{Pos: l.pos, Text: string(sample)}
}

func advance(pos Position, span string) Position {
	pos.Offset += len(span)
	lines := strings.Count(span, "\n")
	pos.Line += lines
	if lines == 0 {
		pos.Column += utf8.RuneCountInString(span)
	} else {
		pos.Column = utf8.RuneCountInString(span[strings.LastIndex(span, "\n"):])
	}
	return pos
}
