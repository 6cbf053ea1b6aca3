// This file is Free Software under the Apache-2.0 License
// without warranty, see README.md and LICENSES/Apache-2.0.txt for details.
//
// SPDX-License-Identifier: Apache-2.0

// Package fetcher is the HTTP-fetching collaborator consumed by the
// discovery pipeline. It is deliberately thin: distinguish
// HTTP 404 ("not present") from every other failure ("error"), and let
// callers decode either JSON or raw text.
package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/helio-frota/csaf-walker/internal/httpext"
)

// Fetcher performs an HTTP GET and returns the raw response. Implementations
// must not follow the 404 special case themselves; that is handled by the
// FetchXxx helpers below, which is why the contract is kept this small.
type Fetcher interface {
	Get(ctx context.Context, url string) (*http.Response, error)
}

// Error is returned for every fetch failure: transport errors, TLS errors,
// an unexpected HTTP status (including a 404 from FetchJSON and FetchString;
// the Optional variants report a 404 as "not present" instead), or body/JSON
// decode errors.
type Error struct {
	URL string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// IsNotFound reports whether resp represents an HTTP 404.
func IsNotFound(resp *http.Response) bool {
	return resp.StatusCode == http.StatusNotFound
}

// FetchJSON fetches url and decodes it as JSON into T. A 404 is reported as
// an error: callers that want "not present" semantics must use
// FetchOptionalJSON instead.
func FetchJSON[T any](ctx context.Context, f Fetcher, url string) (T, error) {
	var zero T
	resp, err := f.Get(ctx, url)
	if err != nil {
		return zero, &Error{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return zero, &Error{URL: url, Err: err}
	}

	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return zero, &Error{URL: url, Err: fmt.Errorf("decoding JSON: %w", err)}
	}
	return out, nil
}

// FetchOptionalJSON is like FetchJSON, but a 404 yields (zero, false, nil)
// instead of an error.
func FetchOptionalJSON[T any](ctx context.Context, f Fetcher, url string) (T, bool, error) {
	var zero T
	resp, err := f.Get(ctx, url)
	if err != nil {
		return zero, false, &Error{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if IsNotFound(resp) {
		return zero, false, nil
	}
	if err := checkStatus(resp); err != nil {
		return zero, false, &Error{URL: url, Err: err}
	}

	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return zero, false, &Error{URL: url, Err: fmt.Errorf("decoding JSON: %w", err)}
	}
	return out, true, nil
}

// FetchString fetches url and returns the body as text. A 404 is an error.
func FetchString(ctx context.Context, f Fetcher, url string) (string, error) {
	resp, err := f.Get(ctx, url)
	if err != nil {
		return "", &Error{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return "", &Error{URL: url, Err: err}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{URL: url, Err: fmt.Errorf("reading body: %w", err)}
	}
	return string(data), nil
}

// FetchOptionalString is like FetchString, but a 404 yields ("", false, nil).
func FetchOptionalString(ctx context.Context, f Fetcher, url string) (string, bool, error) {
	resp, err := f.Get(ctx, url)
	if err != nil {
		return "", false, &Error{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if IsNotFound(resp) {
		return "", false, nil
	}
	if err := checkStatus(resp); err != nil {
		return "", false, &Error{URL: url, Err: err}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", false, &Error{URL: url, Err: fmt.Errorf("reading body: %w", err)}
	}
	return string(data), true, nil
}

func checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == httpext.StatusNGINXInvalidClientCert,
		resp.StatusCode == httpext.StatusNGINXNoClientCert:
		return fmt.Errorf("client certificate rejected: %s", resp.Status)
	default:
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}
}
