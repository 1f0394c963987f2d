package filelist

import (
	"fmt"
	"io"
)

// An Option to modify the behaviour of the Parser.
type Option func(p *Parser) error

// Trace the parse of each line to "w".
func Trace(w io.Writer) Option {
	return func(p *Parser) error {
		p.trace = w
		return nil
	}
}

// Parallel parses lines on up to "workers" goroutines.
//
// Commands are still routed in line order, so results and errors are identical
// to a sequential parse. Mappers must be safe for concurrent use.
func Parallel(workers int) Option {
	return func(p *Parser) error {
		if workers < 1 {
			return fmt.Errorf("parallel: workers must be at least 1, got %d", workers)
		}
		p.workers = workers
		return nil
	}
}
