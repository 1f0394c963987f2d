package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/alecthomas/repr"
	"gopkg.in/yaml.v3"

	"github.com/sv-explorer/filelist"
	"github.com/sv-explorer/filelist/lexer"
)

type parseCmd struct {
	Format    string   `short:"f" enum:"repr,json,yaml,args" default:"repr" help:"Output format (${enum})."`
	Resolve   bool     `help:"Resolve relative paths against the directory of each filelist."`
	Workers   int      `short:"j" default:"1" help:"Number of goroutines to parse lines on."`
	Trace     bool     `help:"Trace the parse of every line to stderr."`
	Filelists []string `arg:"" help:"Filelists to parse, merged in order."`
}

func (c *parseCmd) Help() string {
	return `
Parses each filelist and merges the results in the order given. Library
directives (-v, -y) are listed but not expanded.
`
}

func (c *parseCmd) Run(g *globals) error {
	merged := &filelist.Result{}
	for _, path := range c.Filelists {
		opts := []filelist.Option{filelist.Parallel(c.Workers)}
		if c.Resolve {
			opts = append(opts, filelist.ResolveRelative(filepath.Dir(path)))
		}
		if c.Trace {
			opts = append(opts, filelist.Trace(g.Stderr))
		}
		parser, err := filelist.New(opts...)
		if err != nil {
			return err
		}
		result, err := parser.ParseFile(path)
		if err != nil {
			return err
		}
		g.Logger.Debug("parsed filelist",
			"filelist", path,
			"defines", len(result.Defines),
			"includes", len(result.Includes),
			"files", len(result.Files),
			"libraries", len(result.Libraries))
		merged.Merge(result)
	}
	return write(g.Stdout, c.Format, merged)
}

func write(w io.Writer, format string, result *filelist.Result) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(normalise(result))

	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(normalise(result)); err != nil {
			return err
		}
		return enc.Close()

	case "args":
		for _, arg := range result.Args() {
			if _, err := fmt.Fprintln(w, arg); err != nil {
				return err
			}
		}
		return nil

	default:
		_, err := fmt.Fprintln(w, repr.String(result, repr.Indent("  ")))
		return err
	}
}

// normalise replaces nil slices so encoders emit empty lists rather than null.
func normalise(result *filelist.Result) *filelist.Result {
	out := *result
	if out.Defines == nil {
		out.Defines = []string{}
	}
	if out.Includes == nil {
		out.Includes = []string{}
	}
	if out.Files == nil {
		out.Files = []string{}
	}
	if out.Libraries == nil {
		out.Libraries = []filelist.Library{}
	}
	return &out
}

type checkCmd struct {
	Filelists []string `arg:"" help:"Filelists to check."`
}

func (c *checkCmd) Run(g *globals) error {
	failed := 0
	for _, path := range c.Filelists {
		if _, err := filelist.ParseFile(path); err != nil {
			failed++
			fmt.Fprintln(g.Stdout, err)
			g.Logger.Debug("filelist failed", "filelist", path, "kind", filelist.KindOf(err).String())
			continue
		}
		g.Logger.Info("filelist ok", "filelist", path)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d filelists failed", failed, len(c.Filelists))
	}
	return nil
}

type tokensCmd struct {
	Filelist string `arg:"" type:"existingfile" help:"Filelist to tokenize."`
}

func (c *tokensCmd) Run(g *globals) error {
	r, err := os.Open(c.Filelist)
	if err != nil {
		return err
	}
	defer r.Close()
	w := tabwriter.NewWriter(g.Stdout, 0, 4, 2, ' ', 0)
	scanner := filelist.NewLineScanner(r)
	for lineno := 1; scanner.Scan(); lineno++ {
		lex := lexer.LexAt(c.Filelist, lineno, scanner.Text())
		for {
			token, err := lex.Next()
			if err != nil {
				_ = w.Flush()
				return err
			}
			if token.EOF() {
				break
			}
			fmt.Fprintf(w, "%d:%d\t%s\t%q\n", token.Pos.Line, token.Pos.Column, token.Kind.Name(), token.Value)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return w.Flush()
}

type grammarCmd struct{}

func (c *grammarCmd) Run(g *globals) error {
	_, err := fmt.Fprintln(g.Stdout, filelist.Grammar)
	return err
}
