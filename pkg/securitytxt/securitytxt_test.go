// This file is Free Software under the Apache-2.0 License
// without warranty, see README.md and LICENSES/Apache-2.0.txt for details.
//
// SPDX-License-Identifier: Apache-2.0

package securitytxt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	text := "Contact: mailto:security@example.com\n" +
		"CSAF: https://example.com/.well-known/csaf/provider-metadata.json\n" +
		"Expires: 2030-01-01T00:00:00.000Z\n"

	doc, err := Parse(text)
	require.NoError(t, err)
	require.Len(t, doc.Extensions, 3)
	assert.Equal(t, "CSAF", doc.Extensions[1].Name)
	assert.Equal(t, "https://example.com/.well-known/csaf/provider-metadata.json", doc.Extensions[1].Value)
}

func TestParseIgnoresCommentsAndBlankLines(t *testing.T) {
	text := "# a comment\n\nContact: mailto:x@example\n"
	doc, err := Parse(text)
	require.NoError(t, err)
	require.Len(t, doc.Extensions, 1)
}

func TestParseRejectsMalformedLine(t *testing.T) {
	_, err := Parse("this is not a field\n")
	require.Error(t, err)
}
