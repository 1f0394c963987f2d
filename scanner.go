package filelist

import (
	"bufio"
	"io"
)

// MaxLineLength is the longest line a filelist may hold. Longer lines fail
// with an IOFailure.
const MaxLineLength = 1024 * 1024

// lineScanner is the subset of *bufio.Scanner the aggregator reads lines through.
type lineScanner interface {
	Scan() bool
	Text() string
	Err() error
}

// NewLineScanner returns a line scanner over r that accepts lines up to
// MaxLineLength bytes.
func NewLineScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), MaxLineLength)
	return scanner
}

type sliceScanner struct {
	lines []string
	index int
}

func (s *sliceScanner) Scan() bool {
	if s.index+1 >= len(s.lines) {
		return false
	}
	s.index++
	return true
}

func (s *sliceScanner) Text() string { return s.lines[s.index] }
func (s *sliceScanner) Err() error   { return nil }
