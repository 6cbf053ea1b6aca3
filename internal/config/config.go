// This file is Free Software under the Apache-2.0 License
// without warranty, see README.md and LICENSES/Apache-2.0.txt for details.
//
// SPDX-License-Identifier: Apache-2.0

// Package config loads csafctl's file-based configuration and guards the
// small local state file shared between invocations.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	homedir "github.com/mitchellh/go-homedir"
)

// Duration wraps time.Duration so the TOML decoder accepts a Go-style
// duration string ("30s", "2m") instead of raw nanoseconds, per
// BurntSushi/toml's documented encoding.TextUnmarshaler hook.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("parsing duration %q: %w", text, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Config holds the settings csafctl reads from a TOML file. The metadata
// subcommand uses Timeout, RateLimit, Insecure and Header; Profile is decoded
// but not read by any subcommand (validate takes its profile from --profile).
// An absent config file is not an error: Load returns Default().
type Config struct {
	Timeout   Duration          `toml:"timeout"`
	RateLimit float64           `toml:"rate_limit"`
	Insecure  bool              `toml:"insecure"`
	Header    map[string]string `toml:"header"`
	Profile   string            `toml:"profile"`
}

// Default returns the zero-friendly defaults applied when no config file
// is found, or a field is absent from one that is.
func Default() Config {
	return Config{
		Timeout:   Duration(30 * time.Second),
		RateLimit: 10,
		Profile:   "mandatory",
	}
}

// DefaultPath returns "~/.config/csafctl/config.toml", with the leading
// "~" expanded for the current user.
func DefaultPath() (string, error) {
	dir, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(dir, ".config", "csafctl", "config.toml"), nil
}

// Load reads and decodes the TOML file at path, layered over Default(). A
// missing file is not an error: Load returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}
