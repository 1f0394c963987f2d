package filelist

import (
	"errors"
	"path/filepath"
	"strings"
)

// Mapper function for mutating commands before they are routed into a Result.
type Mapper func(cmd Command) (Command, error)

// Map is an Option that configures the Parser to apply mapping functions to each parsed Command.
//
// Mappers are applied in the order given.
func Map(mappers ...Mapper) Option {
	return func(p *Parser) error {
		p.mappers = append(p.mappers, mappers...)
		return nil
	}
}

// ResolveRelative rewrites relative paths in include, library and file commands
// to be relative to "dir", typically the directory holding the filelist.
//
// Define values are left untouched. A trailing "/" is preserved.
func ResolveRelative(dir string) Option {
	return Map(func(cmd Command) (Command, error) {
		switch cmd := cmd.(type) {
		case Include:
			cmd.Directory = resolve(dir, cmd.Directory)
			return cmd, nil
		case LibraryFile:
			cmd.Path = resolve(dir, cmd.Path)
			return cmd, nil
		case LibraryDir:
			cmd.Path = resolve(dir, cmd.Path)
			return cmd, nil
		case File:
			cmd.Path = resolve(dir, cmd.Path)
			return cmd, nil
		}
		return cmd, nil
	})
}

func resolve(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	out := filepath.Join(dir, path)
	if strings.HasSuffix(path, "/") && !strings.HasSuffix(out, "/") {
		out += "/"
	}
	return out
}

var errNilCommand = errors.New("mapper returned a nil command")

func (p *Parser) applyMappers(cmd Command) (Command, error) {
	for _, mapper := range p.mappers {
		var err error
		cmd, err = mapper(cmd)
		if err != nil {
			return nil, err
		}
		if cmd == nil {
			return nil, errNilCommand
		}
	}
	return cmd, nil
}
