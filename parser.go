package filelist

import (
	"bytes"
	"io"
	"os"
	"strings"
	"sync"
)

// A Parser parses filelist directives and aggregates them into a Result.
//
// A Parser is safe for concurrent use once constructed.
type Parser struct {
	trace   io.Writer
	workers int
	mappers []Mapper
}

// New creates a Parser configured with the given options.
func New(options ...Option) (*Parser, error) {
	p := &Parser{workers: 1}
	for _, option := range options {
		if err := option(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// MustNew calls New and panics on error.
func MustNew(options ...Option) *Parser {
	p, err := New(options...)
	if err != nil {
		panic(err)
	}
	return p
}

// ParseLine parses a single directive.
//
// A line without any tokens is an UnexpectedEndOfInput error.
func (p *Parser) ParseLine(line string) (Command, error) {
	cmd, err := newParseContext("", 0, line).parseCommand()
	if err != nil {
		return nil, err
	}
	return p.applyMappers(cmd)
}

// ParseLines parses and aggregates an ordered sequence of lines.
//
// On failure the Result holds everything aggregated before the failing line and
// the error is a *LineError.
func (p *Parser) ParseLines(lines []string) (*Result, error) {
	return p.aggregate("", &sliceScanner{lines: lines, index: -1})
}

// Parse a filelist from r. "filename" is only used in errors.
func (p *Parser) Parse(filename string, r io.Reader) (*Result, error) {
	return p.aggregate(filename, NewLineScanner(r))
}

// ParseString parses a filelist held in a string.
func (p *Parser) ParseString(filename string, s string) (*Result, error) {
	return p.Parse(filename, strings.NewReader(s))
}

// ParseBytes parses a filelist held in a byte slice.
func (p *Parser) ParseBytes(filename string, b []byte) (*Result, error) {
	return p.Parse(filename, bytes.NewReader(b))
}

// ParseFile opens and parses the filelist at path.
func (p *Parser) ParseFile(path string) (*Result, error) {
	r, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Kind: IOFailure, Pos: Position{Filename: path}, Err: err}
	}
	defer r.Close()
	return p.Parse(path, r)
}

// parseLine returns a nil Command for blank and comment-only lines.
func (p *Parser) parseLine(filename string, index int, text string) (Command, error) {
	ctx := newParseContext(filename, index, text)
	if blank, err := ctx.blank(); err != nil || blank {
		return nil, err
	}
	cmd, err := ctx.parseCommand()
	if err != nil {
		return nil, err
	}
	return p.applyMappers(cmd)
}

func (p *Parser) aggregate(filename string, lines lineScanner) (*Result, error) {
	if p.workers > 1 {
		return p.aggregateParallel(filename, lines)
	}
	result := &Result{}
	index := 0
	for ; lines.Scan(); index++ {
		text := lines.Text()
		cmd, err := p.parseLine(filename, index, text)
		if err := p.route(result, filename, index, text, cmd, err); err != nil {
			return result, err
		}
	}
	if err := lines.Err(); err != nil {
		return result, readError(filename, index, err)
	}
	return result, nil
}

type outcome struct {
	cmd Command
	err error
}

func (p *Parser) aggregateParallel(filename string, lines lineScanner) (*Result, error) {
	var texts []string
	for lines.Scan() {
		texts = append(texts, lines.Text())
	}
	outcomes := make([]outcome, len(texts))
	sem := make(chan struct{}, p.workers)
	wg := sync.WaitGroup{}
	for index, text := range texts {
		wg.Add(1)
		sem <- struct{}{}
		go func(index int, text string) {
			defer wg.Done()
			defer func() { <-sem }()
			cmd, err := p.parseLine(filename, index, text)
			outcomes[index] = outcome{cmd: cmd, err: err}
		}(index, text)
	}
	wg.Wait()

	result := &Result{}
	for index, o := range outcomes {
		if err := p.route(result, filename, index, texts[index], o.cmd, o.err); err != nil {
			return result, err
		}
	}
	if err := lines.Err(); err != nil {
		return result, readError(filename, len(texts), err)
	}
	return result, nil
}

func (p *Parser) route(result *Result, filename string, index int, text string, cmd Command, err error) error {
	p.traceLine(filename, index, text, cmd, err)
	if err != nil {
		return &LineError{Filename: filename, Index: index, Text: text, Err: err}
	}
	if cmd != nil {
		result.add(cmd)
	}
	return nil
}

func readError(filename string, index int, err error) error {
	return &LineError{
		Filename: filename,
		Index:    index,
		Err:      &ParseError{Kind: IOFailure, Pos: Position{Filename: filename}, Err: err},
	}
}

var defaultParser = MustNew()

// ParseLine parses a single directive with the default Parser.
func ParseLine(line string) (Command, error) { return defaultParser.ParseLine(line) }

// ParseLines aggregates lines with the default Parser.
func ParseLines(lines []string) (*Result, error) { return defaultParser.ParseLines(lines) }

// Parse a filelist from r with the default Parser.
func Parse(filename string, r io.Reader) (*Result, error) { return defaultParser.Parse(filename, r) }

// ParseString parses a filelist held in a string with the default Parser.
func ParseString(filename string, s string) (*Result, error) {
	return defaultParser.ParseString(filename, s)
}

// ParseBytes parses a filelist held in a byte slice with the default Parser.
func ParseBytes(filename string, b []byte) (*Result, error) {
	return defaultParser.ParseBytes(filename, b)
}

// ParseFile parses the filelist at path with the default Parser.
func ParseFile(path string) (*Result, error) { return defaultParser.ParseFile(path) }
