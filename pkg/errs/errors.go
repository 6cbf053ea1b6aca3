// This file is Free Software under the MIT License
// without warranty, see README.md and LICENSES/MIT.txt for details.
//
// SPDX-License-Identifier: MIT

// Package errs holds the typed error taxonomy of the discovery pipeline:
// which failures mean "try the next approach" and
// which mean "the request is broken".
package errs

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNetwork indicates a network level error.
type ErrNetwork struct {
	Message string
}

func (e ErrNetwork) Error() string {
	return e.Message
}

// ErrCsafProviderIssue is an error which is not related directly to the
// contents of a CSAF document and can only be fixed by the CSAF
// source/provider.
type ErrCsafProviderIssue struct {
	Message string
}

func (e ErrCsafProviderIssue) Error() string {
	return e.Message
}

// ErrSecurityTxtParse indicates a security.txt was fetched (200 OK) but did
// not parse as RFC 9116 text.
type ErrSecurityTxtParse struct {
	URL     string
	Message string
}

func (e ErrSecurityTxtParse) Error() string {
	return fmt.Sprintf("failed to parse security.txt at %s: %s", e.URL, e.Message)
}

// ErrFetch wraps an HTTP error (a non-404 status, or a 404 where the document
// was required to exist), a TLS error, or a body/JSON decode failure
// encountered while fetching a discovery artifact.
type ErrFetch struct {
	URL string
	Err error
}

func (e ErrFetch) Error() string {
	return fmt.Sprintf("failed to fetch %s: %v", e.URL, e.Err)
}

func (e ErrFetch) Unwrap() error { return e.Err }

// ErrDns wraps a DNS resolution failure that is not "no records found".
type ErrDns struct {
	Host string
	Err  error
}

func (e ErrDns) Error() string {
	return fmt.Sprintf("DNS request for %s failed: %v", e.Host, e.Err)
}

func (e ErrDns) Unwrap() error { return e.Err }

// ErrNotFound is the terminal discovery error: every approach reported "not
// present".
var ErrNotFound = errors.New("unable to discover metadata")

// CompositeErr holds an array of errors encountered while running a batch of
// independent operations.
type CompositeErr struct {
	Errs []error
}

func (e *CompositeErr) Error() string {
	if len(e.Errs) == 0 {
		return "empty CompositeErr"
	}

	messages := make([]string, 0, len(e.Errs))
	for _, err := range e.Errs {
		messages = append(messages, err.Error())
	}
	return strings.Join(messages, "\n")
}

func (e *CompositeErr) Unwrap() []error {
	return e.Errs
}

// FlattenError flattens out a [CompositeErr], or returns a single-element
// slice if err is not one.
func FlattenError(err error) (flattenedErrors []error) {
	var composite *CompositeErr
	if errors.As(err, &composite) {
		return append(flattenedErrors, composite.Errs...)
	}
	return []error{err}
}
