// This file is Free Software under the Apache-2.0 License
// without warranty, see README.md and LICENSES/Apache-2.0.txt for details.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err)

	original := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = original }()

	fn()
	require.NoError(t, w.Close())

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(data)
}

func TestParseCommandValidDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"document": {
			"title": "Example advisory",
			"tracking": {"id": "EX-1", "initial_release_date": "2026-01-01T00:00:00Z"}
		}
	}`), 0o644))

	cmd := &parseCommand{}
	cmd.Args.File = path

	out := captureStdout(t, func() {
		require.NoError(t, cmd.Execute(nil))
	})
	require.Contains(t, out, "EX-1")
	require.Contains(t, out, "Example advisory")
}

func TestParseCommandFormatError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(`not json`), 0o644))

	cmd := &parseCommand{}
	cmd.Args.File = path

	out := captureStdout(t, func() {
		require.NoError(t, cmd.Execute(nil))
	})
	require.Contains(t, out, "Format error")
}
