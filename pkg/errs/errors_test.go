// This file is Free Software under the MIT License
// without warranty, see README.md and LICENSES/MIT.txt for details.
//
// SPDX-License-Identifier: MIT

package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlattenError(t *testing.T) {

	t.Run("flatten a composite error", func(t *testing.T) {
		want := []error{
			errors.New("single error 1"),
			errors.New("single error 2"),
			ErrFetch{URL: "https://example/pm.json", Err: errors.New("404")},
		}

		composite := &CompositeErr{Errs: want}

		got := FlattenError(fmt.Errorf("wrap composite err: %w", composite))

		assert.ElementsMatch(t, want, got)
	})

	t.Run("single error is returned as is", func(t *testing.T) {
		err := errors.Join(errors.New("nested err in join 1"), errors.New("nested err in join 2"))
		want := []error{err}
		got := FlattenError(err)
		assert.ElementsMatch(t, want, got)
	})
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "unable to discover metadata", ErrNotFound.Error())

	fetchErr := ErrFetch{URL: "https://example/x", Err: errors.New("boom")}
	assert.Contains(t, fetchErr.Error(), "https://example/x")
	assert.ErrorIs(t, fetchErr, fetchErr.Err)

	dnsErr := ErrDns{Host: "csaf.data.security.example", Err: errors.New("timeout")}
	assert.Contains(t, dnsErr.Error(), "csaf.data.security.example")

	txtErr := ErrSecurityTxtParse{URL: "https://example/security.txt", Message: "missing required field"}
	assert.Contains(t, txtErr.Error(), "missing required field")
}
