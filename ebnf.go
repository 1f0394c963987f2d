package filelist

import (
	"fmt"
	"strings"

	"github.com/sv-explorer/filelist/lexer"
)

type ebnfp struct {
	name string
	out  string
}

var productions = []ebnfp{
	{"Command", "Define | IncludeDir | LibraryFile | LibraryDir | File"},
	{"Define", fmt.Sprintf("%s %s (%s Value)?", lexer.Define, lexer.PathContent, lexer.Equals)},
	{"Value", fmt.Sprintf("%s | %s %s %s", lexer.PathContent, lexer.Quote, lexer.PathContent, lexer.Quote)},
	{"IncludeDir", fmt.Sprintf("%s %s", lexer.IncludeDir, lexer.PathContent)},
	{"LibraryFile", fmt.Sprintf("%s %s", lexer.V, lexer.PathContent)},
	{"LibraryDir", fmt.Sprintf("%s %s", lexer.Y, lexer.PathContent)},
	{"File", lexer.PathContent.String()},
}

// Grammar is the EBNF for a single filelist directive.
//
// Productions are upper case. Lexer tokens are quoted literals or <path>.
var Grammar = func() string {
	out := make([]string, 0, len(productions))
	for _, p := range productions {
		out = append(out, fmt.Sprintf("%s = %s .", p.name, p.out))
	}
	return strings.Join(out, "\n")
}()

// String returns the EBNF for the grammar.
func (p *Parser) String() string {
	return Grammar
}
