package filelist

import (
	"github.com/sv-explorer/filelist/lexer"
)

const expectedDirective = `"+define+" | "+incdir+" | "-v" | "-y" | <path>`

// command := define | incdir | v | y | file
func (c *parseContext) parseCommand() (Command, error) {
	token, err := c.peek()
	if err != nil {
		return nil, err
	}
	var cmd Command
	switch token.Kind {
	case lexer.Define:
		cmd, err = c.parseDefine()
	case lexer.IncludeDir:
		var path string
		path, err = c.parseFlagged(lexer.IncludeDir)
		cmd = Include{Directory: path}
	case lexer.V:
		var path string
		path, err = c.parseFlagged(lexer.V)
		cmd = LibraryFile{Path: path}
	case lexer.Y:
		var path string
		path, err = c.parseFlagged(lexer.Y)
		cmd = LibraryDir{Path: path}
	case lexer.PathContent:
		c.consume()
		cmd = File{Path: token.Value}
	default:
		return nil, unexpected(token, expectedDirective)
	}
	if err != nil {
		return nil, err
	}
	return cmd, c.parseEnd()
}

// define := "+define+" <path> ( "=" value )?
func (c *parseContext) parseDefine() (Command, error) {
	if _, err := c.expect(lexer.Define); err != nil {
		return nil, err
	}
	name, err := c.expect(lexer.PathContent)
	if err != nil {
		return nil, err
	}
	define := Define{Name: name.Value}
	ok, err := c.accept(lexer.Equals)
	if err != nil || !ok {
		return define, err
	}
	value, err := c.parseValue()
	if err != nil {
		return nil, err
	}
	define.Value = &value
	return define, nil
}

// value := <path> | "\"" <path> "\""
func (c *parseContext) parseValue() (string, error) {
	quoted, err := c.accept(lexer.Quote)
	if err != nil {
		return "", err
	}
	value, err := c.expect(lexer.PathContent)
	if err != nil {
		return "", err
	}
	if quoted {
		if _, err := c.expect(lexer.Quote); err != nil {
			return "", err
		}
	}
	return value.Value, nil
}

// <flag> <path>
func (c *parseContext) parseFlagged(flag lexer.Kind) (string, error) {
	if _, err := c.expect(flag); err != nil {
		return "", err
	}
	path, err := c.expect(lexer.PathContent)
	if err != nil {
		return "", err
	}
	return path.Value, nil
}

func (c *parseContext) parseEnd() error {
	token, err := c.peek()
	if err != nil {
		return err
	}
	if !token.EOF() {
		return &ParseError{Kind: TrailingInput, Token: &token, Pos: token.Pos}
	}
	return nil
}
