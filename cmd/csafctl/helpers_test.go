// This file is Free Software under the Apache-2.0 License
// without warranty, see README.md and LICENSES/Apache-2.0.txt for details.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToHeaderEmptyMapIsNil(t *testing.T) {
	assert.Nil(t, toHeader(nil))
	assert.Nil(t, toHeader(map[string]string{}))
}

func TestToHeaderCarriesEntries(t *testing.T) {
	h := toHeader(map[string]string{"X-Api-Key": "secret"})
	assert.Equal(t, "secret", h.Get("X-Api-Key"))
}

func TestParseProfile(t *testing.T) {
	cases := map[string]struct {
		ok      bool
	}{
		"schema":    {ok: true},
		"mandatory": {ok: true},
		"optional":  {ok: true},
		"bogus":     {ok: false},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parseProfile(name)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
