// This file is Free Software under the Apache-2.0 License
// without warranty, see README.md and LICENSES/Apache-2.0.txt for details.
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	homedir "github.com/mitchellh/go-homedir"
)

// State is the small convenience record csafctl persists between
// invocations. The metadata subcommand writes the source it was run with to
// LastSource; no subcommand writes LastProfile or reads the file back. It is
// not an advisory cache — no CSAF document content is ever stored here.
type State struct {
	LastSource  string `json:"last_source"`
	LastProfile string `json:"last_profile"`
}

// DefaultStatePath returns "~/.config/csafctl/state.json".
func DefaultStatePath() (string, error) {
	dir, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(dir, ".config", "csafctl", "state.json"), nil
}

// LoadState reads path, returning a zero State if it does not exist yet.
func LoadState(path string) (State, error) {
	var st State
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return st, nil
		}
		return st, fmt.Errorf("reading state file %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &st); err != nil {
		return st, fmt.Errorf("parsing state file %s: %w", path, err)
	}
	return st, nil
}

// SaveState writes st to path under an exclusive file lock, so two
// concurrent csafctl invocations never interleave writes and corrupt the
// file. The lock file is path+".lock", created alongside the state file.
func SaveState(path string, st State) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	lock := flock.New(path + ".lock")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	locked, err := lock.TryLockContext(ctx, 50*time.Millisecond)
	if err != nil {
		return fmt.Errorf("locking state file %s: %w", path, err)
	}
	if !locked {
		return fmt.Errorf("locking state file %s: timed out", path)
	}
	defer lock.Unlock()

	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing state file %s: %w", path, err)
	}
	return nil
}
