package lexer

// PeekingLexer supports a single token of lookahead over a Lexer.
//
// Tokens are still pulled from the underlying Lexer on demand.
type PeekingLexer struct {
	lex    *Lexer
	peeked *Token
	cursor int
}

// Upgrade a Lexer to a PeekingLexer.
func Upgrade(lex *Lexer) *PeekingLexer {
	return &PeekingLexer{lex: lex}
}

// Cursor is the number of tokens consumed so far.
func (p *PeekingLexer) Cursor() int {
	return p.cursor
}

// Peek at the next token without consuming it.
func (p *PeekingLexer) Peek() (Token, error) {
	if p.peeked != nil {
		return *p.peeked, nil
	}
	t, err := p.lex.Next()
	if err != nil {
		return Token{}, err
	}
	p.peeked = &t
	return t, nil
}

// Next consumes and returns the next token.
func (p *PeekingLexer) Next() (Token, error) {
	t, err := p.Peek()
	if err != nil {
		return Token{}, err
	}
	p.peeked = nil
	if !t.EOF() {
		p.cursor++
	}
	return t, nil
}
