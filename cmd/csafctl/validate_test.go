// This file is Free Software under the Apache-2.0 License
// without warranty, see README.md and LICENSES/Apache-2.0.txt for details.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCommandValidDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"csaf_version": "2.0",
		"document": {
			"csaf_version": "2.0",
			"title": "Example advisory",
			"tracking": {"id": "EX-1", "version": "1", "revision_history": []},
			"publisher": {"name": "Example Vendor", "namespace": "https://example.com"}
		}
	}`), 0o644))

	cmd := &validateCommand{Profile: "optional", Timeout: 5 * time.Second}
	cmd.Args.File = path

	out := captureStdout(t, func() {
		assert.NoError(t, cmd.Execute(nil))
	})
	assert.Contains(t, out, "valid")
}

func TestValidateCommandInvalidDocumentReportsFailures(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))

	cmd := &validateCommand{Profile: "mandatory", Timeout: 5 * time.Second}
	cmd.Args.File = path

	var err error
	out := captureStdout(t, func() {
		err = cmd.Execute(nil)
	})
	assert.Error(t, err)
	assert.Contains(t, out, "schema:")
}

func TestValidateCommandUnknownProfile(t *testing.T) {
	cmd := &validateCommand{Profile: "bogus", Timeout: time.Second}
	cmd.Args.File = "unused"

	assert.Error(t, cmd.Execute(nil))
}
