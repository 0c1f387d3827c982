// Package config loads the analyzer's optional project-level
// `.wrenanalyzer.toml` file. Config is purely a CLI presentation and
// exit-code filter: the analyzer core never reads it.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const fileName = ".wrenanalyzer.toml"

// Diagnostics is the `[diagnostics]` table.
type Diagnostics struct {
	Disabled         []string `toml:"disabled"`
	WarningsAsErrors bool     `toml:"warnings-as-errors"`
	Max              int      `toml:"max"`
}

// Config is the decoded contents of a `.wrenanalyzer.toml` file.
type Config struct {
	Diagnostics Diagnostics `toml:"diagnostics"`
}

// IsDisabled reports whether code has been listed in [diagnostics].disabled.
func (c *Config) IsDisabled(code string) bool {
	for _, d := range c.Diagnostics.Disabled {
		if d == code {
			return true
		}
	}
	return false
}

// Find walks startDir and its ancestors looking for .wrenanalyzer.toml,
// mirroring the reference toolchain's project-manifest lookup.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, fileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load decodes the TOML file at path.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return &cfg, nil
}

// LoadForDir finds and loads the nearest .wrenanalyzer.toml above dir,
// returning a zero-value Config (no filters applied) if none exists.
func LoadForDir(dir string) (*Config, error) {
	path, ok, err := Find(dir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &Config{}, nil
	}
	return Load(path)
}
