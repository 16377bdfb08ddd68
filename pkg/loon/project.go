package loon

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// ConfigFile is the project configuration file name.
const ConfigFile = "loon.toml"

// Config is the loon.toml project configuration.
type Config struct {
	// Prompt overrides the REPL prompt.
	Prompt string `toml:"prompt"`

	// Color enables styled terminal output.
	Color bool `toml:"color"`

	// SortVars orders report output alphabetically by variable name.
	// When false, variables print in order of first appearance.
	SortVars bool `toml:"sort_vars"`
}

// DefaultConfig returns the configuration used when no loon.toml exists.
// Sorted output matches the original pretty-printer, which iterated a
// key-ordered map.
func DefaultConfig() Config {
	return Config{
		Prompt:   "loon> ",
		Color:    true,
		SortVars: true,
	}
}

// LoadConfig loads a loon.toml from the given path, layered over the
// defaults: absent keys keep their default values.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return Config{}, errors.Wrapf(err, "parsing %s", path)
	}
	return config, nil
}

// FindConfig searches for a loon.toml starting from dir and walking up to
// parent directories, stopping at a .git boundary. Returns the defaults
// when no file is found.
func FindConfig(dir string) (Config, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return Config{}, err
	}
	for {
		path := filepath.Join(dir, ConfigFile)
		if _, err := os.Stat(path); err == nil {
			return LoadConfig(path)
		}

		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return DefaultConfig(), nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return DefaultConfig(), nil
		}
		dir = parent
	}
}
