// Package config loads grdinfo settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
)

// Config holds grdinfo settings.
type Config struct {
	// LogLevel is a logrus level name.
	LogLevel string `toml:"log_level"`

	// Verbose logs decode warnings as they are found.
	Verbose bool `toml:"verbose"`

	// Workers bounds how many files are decoded at once.
	Workers int `toml:"workers"`

	// Precision is the number of significant digits printed for values.
	// -1 prints the shortest exact representation.
	Precision int `toml:"precision"`
}

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("invalid configuration")

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel:  "info",
		Workers:   4,
		Precision: -1,
	}
}

// Load reads path over the defaults. Unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("loading config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalid, path, strings.Join(keys, ", "))
	}
	return cfg, cfg.Validate()
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %v", ErrInvalid, err)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalid, c.Workers)
	}
	if c.Precision < -1 || c.Precision > 17 {
		return fmt.Errorf("%w: precision must be between -1 and 17, got %d", ErrInvalid, c.Precision)
	}
	return nil
}

// Level returns the parsed log level. Call Validate first.
func (c Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
