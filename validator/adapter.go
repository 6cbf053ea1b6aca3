// This file is Free Software under the Apache-2.0 License
// without warranty, see README.md and LICENSES/Apache-2.0.txt for details.
//
// SPDX-License-Identifier: Apache-2.0

package validator

import (
	"fmt"
	"sync"
	"time"
)

// Adapter is the package's entry point for callers outside the script
// runtime: Check(doc) reports a flat list of human-readable failures for
// one profile of validation sets.
//
// Adapter is safe for concurrent use: a mutex serializes access to the
// underlying Host, since goja.Runtime is not itself thread-safe.
type Adapter struct {
	mu      sync.Mutex
	host    *Host
	sets    []ValidationSet
	timeout time.Duration
}

// NewAdapter builds an Adapter for profile. The profile's validation sets
// are expanded once, here, and reused for every call. The Host itself is
// constructed lazily, on the first Check, and reused across calls; a
// timeout evicts it so the next call starts from a clean runtime.
func NewAdapter(profile Profile, timeout time.Duration) *Adapter {
	return &Adapter{sets: profile.ValidationSets(), timeout: timeout}
}

// Check validates doc against the adapter's profile and returns one
// "name: message" string per failing assertion, in the order the bundle
// reported them. A nil slice with a nil error means doc is fully valid.
//
// A deadline overrun is reported as the single-element slice
// []string{"check timed out"}, never as an error, and evicts the host so
// the next call rebuilds it from scratch rather than reusing a runtime
// that was mid-interrupt.
func (a *Adapter) Check(doc any) ([]string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.host == nil {
		host, err := NewHost()
		if err != nil {
			return nil, fmt.Errorf("initializing script runtime: %w", err)
		}
		a.host = host
	}

	guard := Arm(a.host, a.timeout)

	result, callErr := a.host.Call(a.sets, doc)

	cancelled := guard.WasCancelled()
	guard.Disarm()

	if cancelled {
		a.host = nil
		return []string{"check timed out"}, nil
	}

	if callErr != nil {
		return nil, callErr
	}

	var failures []string
	for _, entry := range result.Tests {
		if entry.IsValid {
			continue
		}
		for _, e := range entry.Errors {
			failures = append(failures, fmt.Sprintf("%s: %s", entry.Name, e.Message))
		}
	}
	return failures, nil
}
