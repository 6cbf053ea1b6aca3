// This file is Free Software under the Apache-2.0 License
// without warranty, see README.md and LICENSES/Apache-2.0.txt for details.
//
// SPDX-License-Identifier: Apache-2.0

package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDocument() map[string]any {
	return map[string]any{
		"csaf_version": "2.0",
		"document": map[string]any{
			"csaf_version": "2.0",
			"title":        "Example advisory",
			"tracking": map[string]any{
				"id":               "EX-1",
				"version":          "1",
				"revision_history": []any{},
			},
			"publisher": map[string]any{
				"name":      "Example Vendor",
				"namespace": "https://example.com",
			},
		},
	}
}

func TestNewHostRegistersRunner(t *testing.T) {
	host, err := NewHost()
	require.NoError(t, err)
	require.NotNil(t, host.runner)
}

func TestHostCallSchemaOnlyValidDocument(t *testing.T) {
	host, err := NewHost()
	require.NoError(t, err)

	result, err := host.Call([]ValidationSet{ValidationSchema}, validDocument())
	require.NoError(t, err)
	require.Len(t, result.Tests, 1)
	assert.Equal(t, "schema", result.Tests[0].Name)
	assert.True(t, result.Tests[0].IsValid)
}

func TestHostCallAllSetsInvalidDocument(t *testing.T) {
	host, err := NewHost()
	require.NoError(t, err)

	result, err := host.Call(ProfileOptional.ValidationSets(), map[string]any{})
	require.NoError(t, err)
	require.Len(t, result.Tests, 3)

	for _, entry := range result.Tests {
		assert.False(t, entry.IsValid)
		assert.NotEmpty(t, entry.Errors)
	}
}

func TestHostTerminateInterruptsRunningScript(t *testing.T) {
	host, err := NewHost()
	require.NoError(t, err)

	// Terminate is safe to call even when nothing is running; it just
	// arms the next RunProgram/runner invocation to abort immediately.
	host.Terminate("test interrupt")

	_, err = host.Call([]ValidationSet{ValidationSchema}, validDocument())
	require.Error(t, err)
}
