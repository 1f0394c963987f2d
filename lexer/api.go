package lexer

import (
	"fmt"

	plexer "github.com/alecthomas/participle/v2/lexer"
)

// Kind of a Token.
type Kind int

// Token kinds.
const (
	// EOF terminates every token stream.
	EOF Kind = iota
	// IncludeDir is the literal "+incdir+".
	IncludeDir
	// Define is the literal "+define+".
	Define
	// V is the literal "-v".
	V
	// Y is the literal "-y".
	Y
	// Equals is the literal "=".
	Equals
	// Quote is the literal `"`.
	Quote
	// PathContent is any run of path characters.
	PathContent
)

var kindNames = map[Kind]string{
	EOF:         "EOF",
	IncludeDir:  "IncludeDir",
	Define:      "Define",
	V:           "V",
	Y:           "Y",
	Equals:      "Equals",
	Quote:       "Quote",
	PathContent: "PathContent",
}

var kindDisplay = map[Kind]string{
	EOF:         "<EOF>",
	IncludeDir:  `"+incdir+"`,
	Define:      `"+define+"`,
	V:           `"-v"`,
	Y:           `"-y"`,
	Equals:      `"="`,
	Quote:       `"\""`,
	PathContent: "<path>",
}

// Name of the kind, eg. "PathContent".
func (k Kind) Name() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// String returns the kind as it would appear in a grammar, eg. `"+define+"` or <path>.
func (k Kind) String() string {
	if display, ok := kindDisplay[k]; ok {
		return display
	}
	return k.Name()
}

// Symbols returns a map of symbolic names to token kinds.
func Symbols() map[string]Kind {
	out := make(map[string]Kind, len(kindNames))
	for kind, name := range kindNames {
		out[name] = kind
	}
	return out
}

// Position of a token within its line.
//
// Offset is a byte offset, Line and Column are 1-based and Column counts runes.
type Position = plexer.Position

// Span is the half-open byte range [Start, End) a token occupies.
type Span struct {
	Start int
	End   int
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// A Token returned by a Lexer.
type Token struct {
	Kind  Kind
	Value string
	Pos   Position
	Span  Span
}

// EOF returns true if this Token is an EOF token.
func (t Token) EOF() bool {
	return t.Kind == EOF
}

func (t Token) String() string {
	if t.EOF() {
		return "<EOF>"
	}
	return t.Value
}

func (t Token) GoString() string {
	return fmt.Sprintf("Token@%s{%s, %q}", t.Span, t.Kind.Name(), t.Value)
}

// ConsumeAll reads all tokens from a Lexer, including the trailing EOF token.
func ConsumeAll(lex *Lexer) ([]Token, error) {
	tokens := make([]Token, 0, 4)
	for {
		token, err := lex.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
		if token.EOF() {
			return tokens, nil
		}
	}
}
