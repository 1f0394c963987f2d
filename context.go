package filelist

import (
	"github.com/sv-explorer/filelist/lexer"
)

// Context for parsing a single line.
type parseContext struct {
	*lexer.PeekingLexer
}

func newParseContext(filename string, index int, line string) *parseContext {
	return &parseContext{PeekingLexer: lexer.Upgrade(lexer.LexAt(filename, index+1, line))}
}

// Peek at the next token, converting lexer failures to ParseErrors.
func (c *parseContext) peek() (lexer.Token, error) {
	token, err := c.Peek()
	if err != nil {
		return token, invalidToken(err)
	}
	return token, nil
}

// Expect consumes the next token, which must be of the given kind.
func (c *parseContext) expect(kind lexer.Kind) (lexer.Token, error) {
	token, err := c.peek()
	if err != nil {
		return token, err
	}
	if token.Kind != kind {
		return token, unexpected(token, kind.String())
	}
	c.consume()
	return token, nil
}

// Consume the peeked token. It cannot fail once Peek has succeeded.
func (c *parseContext) consume() {
	_, _ = c.Next()
}

// Accept consumes the next token if it is of the given kind.
func (c *parseContext) accept(kind lexer.Kind) (bool, error) {
	token, err := c.peek()
	if err != nil {
		return false, err
	}
	if token.Kind != kind {
		return false, nil
	}
	c.consume()
	return true, nil
}

// Blank returns true if the line holds no tokens at all.
func (c *parseContext) blank() (bool, error) {
	token, err := c.peek()
	if err != nil {
		return false, err
	}
	return token.EOF() && c.Cursor() == 0, nil
}
