// This file is Free Software under the Apache-2.0 License
// without warranty, see README.md and LICENSES/Apache-2.0.txt for details.
//
// SPDX-License-Identifier: Apache-2.0

package fetcher

import (
	"context"
	"crypto/tls"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"time"

	"golang.org/x/net/publicsuffix"
	"golang.org/x/time/rate"
)

// Client is the default Fetcher: a plain *http.Client wrapped with optional
// extra headers, request logging, and rate limiting, mirroring the chained
// decorator style the original downloader composes its HTTP client from.
type Client struct {
	HTTP    *http.Client
	Header  http.Header
	Limiter *rate.Limiter
	Verbose bool
}

// Options configures a new Client.
type Options struct {
	Timeout    time.Duration
	Header     http.Header
	RateLimit  float64 // requests per second; 0 disables limiting
	Verbose    bool
	Insecure   bool
	HTTPClient *http.Client // replaces the client built from Timeout and Insecure; Header, RateLimit and Verbose still apply
}

// NewClient builds a Client from Options.
func NewClient(opts Options) *Client {
	hc := opts.HTTPClient
	if hc == nil {
		var transport http.RoundTripper
		if opts.Insecure {
			transport = &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, //nolint:gosec // explicit opt-in via --insecure
			}
		}

		// A public-suffix-aware jar so a cookie set by a provider's
		// well-known endpoint is not replayed against an unrelated
		// sibling domain during the DNS-prefix approach.
		jar, _ := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})

		hc = &http.Client{Timeout: opts.Timeout, Transport: transport, Jar: jar}
	}

	var limiter *rate.Limiter
	if opts.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), 1)
	}

	return &Client{
		HTTP:    hc,
		Header:  opts.Header,
		Limiter: limiter,
		Verbose: opts.Verbose,
	}
}

// Get implements Fetcher.
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for k, vs := range c.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	if c.Verbose {
		slog.Debug("http", "method", http.MethodGet, "url", url)
	}

	return c.HTTP.Do(req)
}
