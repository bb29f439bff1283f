package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"
)

// AppName names the per-user config and data directories.
const AppName = "sitereport"

// defaultConfigPath returns $XDG_CONFIG_HOME/sitereport/config.yaml.
func defaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.yaml")
}

// defaultDBPath returns $XDG_DATA_HOME/sitereport/reports.db.
func defaultDBPath() string {
	return filepath.Join(xdg.DataHome, AppName, "reports.db")
}

// YAMLLoader reads flag defaults from a YAML document. Top-level keys set
// flags for every command; a mapping named after a command sets flags for
// that command only and wins over top-level keys. Keys are flag names with
// dashes or underscores:
//
//	format: csv
//	crawl:
//	  max_pages: 100
//	  delay: 2s
func YAMLLoader(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return kong.ResolverFunc(func(_ *kong.Context, parent *kong.Path, flag *kong.Flag) (any, error) {
		if parent != nil && parent.Command != nil {
			if section, ok := values[parent.Command.Name].(map[string]any); ok {
				if v, ok := lookupFlag(section, flag.Name); ok {
					return v, nil
				}
			}
		}
		if v, ok := lookupFlag(values, flag.Name); ok {
			return v, nil
		}
		return nil, nil
	}), nil
}

// lookupFlag finds a scalar value for a flag, rendered as flag text.
func lookupFlag(m map[string]any, name string) (string, bool) {
	v, ok := m[name]
	if !ok {
		v, ok = m[strings.ReplaceAll(name, "-", "_")]
	}
	if !ok || v == nil {
		return "", false
	}
	if _, nested := v.(map[string]any); nested {
		return "", false
	}
	return fmt.Sprint(v), true
}
