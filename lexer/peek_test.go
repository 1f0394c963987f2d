package lexer_test

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/sv-explorer/filelist/lexer"
)

func errorsAs(err error, target interface{}) bool {
	return errors.As(err, target)
}

func TestUpgrade(t *testing.T) {
	p := lexer.Upgrade(lexer.LexString("-y dir"))
	first, err := p.Peek()
	assert.NoError(t, err)
	assert.Equal(t, lexer.Y, first.Kind)
	again, err := p.Peek()
	assert.NoError(t, err)
	assert.Equal(t, first, again)
	assert.Equal(t, 0, p.Cursor())

	next, err := p.Next()
	assert.NoError(t, err)
	assert.Equal(t, first, next)
	assert.Equal(t, 1, p.Cursor())

	next, err = p.Next()
	assert.NoError(t, err)
	assert.Equal(t, "dir", next.Value)
	assert.Equal(t, 2, p.Cursor())

	next, err = p.Next()
	assert.NoError(t, err)
	assert.True(t, next.EOF())
	assert.Equal(t, 2, p.Cursor())
}

func TestPeekIsLazy(t *testing.T) {
	// The error lies beyond the first token, so peeking at it must succeed.
	p := lexer.Upgrade(lexer.LexString("file.sv $"))
	token, err := p.Peek()
	assert.NoError(t, err)
	assert.Equal(t, "file.sv", token.Value)
	_, err = p.Next()
	assert.NoError(t, err)
	_, err = p.Peek()
	assert.Error(t, err)
}
