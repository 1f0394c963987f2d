package main

import (
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/alecthomas/kong"
)

// TOML is a kong.ConfigurationLoader for TOML files.
//
// Top-level keys set global flags. Tables named after a command set that
// command's flags, eg.
//
//	log-level = "info"
//
//	[parse]
//	format = "json"
//	workers = 4
func TOML(r io.Reader) (kong.Resolver, error) {
	values := map[string]interface{}{}
	if _, err := toml.NewDecoder(r).Decode(&values); err != nil {
		return nil, err
	}
	return kong.ResolverFunc(func(kctx *kong.Context, parent *kong.Path, flag *kong.Flag) (interface{}, error) {
		if parent.Command != nil {
			if table, ok := values[parent.Command.Name].(map[string]interface{}); ok {
				if value, ok := lookup(table, flag.Name); ok {
					return value, nil
				}
			}
		}
		value, _ := lookup(values, flag.Name)
		return value, nil
	}), nil
}

func lookup(values map[string]interface{}, name string) (interface{}, bool) {
	if value, ok := values[name]; ok {
		return value, true
	}
	value, ok := values[strings.ReplaceAll(name, "-", "_")]
	return value, ok
}
