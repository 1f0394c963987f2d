package main

import (
	"io"

	"github.com/alecthomas/kong"
	"golang.org/x/exp/slog"
)

var version string = "dev"

// CLI is the command-line grammar of the filelist tool.
type CLI struct {
	Version  kong.VersionFlag `help:"Show version and exit."`
	LogLevel string           `enum:"debug,info,warn,error" default:"warn" help:"Log level (${enum})."`

	Parse   parseCmd   `cmd:"" help:"Parse filelists and print the aggregated result."`
	Check   checkCmd   `cmd:"" help:"Check filelists for malformed directives."`
	Tokens  tokensCmd  `cmd:"" help:"Dump the tokens of every line of a filelist."`
	Grammar grammarCmd `cmd:"" help:"Print the directive grammar as EBNF."`
}

// Bound into every command's Run method.
type globals struct {
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

func newGlobals(stdout, stderr io.Writer, level string) *globals {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelWarn
	}
	return &globals{
		Stdout: stdout,
		Stderr: stderr,
		Logger: slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: lvl})),
	}
}

var defaultConfigs = []string{"~/.config/filelist.toml", ".filelist.toml"}

func options(configs ...string) []kong.Option {
	return []kong.Option{
		kong.Name("filelist"),
		kong.Description(`Parse HDL filelists into defines, include directories, files and libraries.`),
		kong.Vars{"version": version},
		kong.Configuration(TOML, configs...),
	}
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli, options(defaultConfigs...)...)
	err := kctx.Run(newGlobals(kctx.Stdout, kctx.Stderr, cli.LogLevel))
	kctx.FatalIfErrorf(err)
}
