// This file is Free Software under the Apache-2.0 License
// without warranty, see README.md and LICENSES/Apache-2.0.txt for details.
//
// SPDX-License-Identifier: Apache-2.0

// Package metadata implements the CSAF provider-metadata discovery
// protocol: locating a publisher's provider-metadata.json from nothing
// more than a user-supplied string, following the fallback chain described
// in CSAF 2.0 §7.3.1.
package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/helio-frota/csaf-walker/pkg/dnsresolve"
	"github.com/helio-frota/csaf-walker/pkg/errs"
	"github.com/helio-frota/csaf-walker/pkg/fetcher"
	"github.com/helio-frota/csaf-walker/pkg/securitytxt"
)

// ProviderMetadata is an opaque, transparent CSAF provider-metadata.json
// document. The discovery pipeline never interprets its shape beyond
// round-tripping it through JSON.
type ProviderMetadata = json.RawMessage

// Discovery orchestrates the five discovery approaches for one source
// string. It holds no mutable state and is safe to reuse across calls.
type Discovery struct {
	// Source is the free-form user input: a full URL, a bare hostname, or
	// neither.
	Source string

	Fetcher  fetcher.Fetcher
	Resolver dnsresolve.Resolver
}

// New constructs a Discovery for the given source string.
func New(source string, f fetcher.Fetcher, r dnsresolve.Resolver) *Discovery {
	return &Discovery{Source: source, Fetcher: f, Resolver: r}
}

// approach is one of the five fallback steps. It returns (metadata, true,
// nil) on success, (nil, false, nil) for "not present", and (nil, false,
// err) for a fatal error.
type approach func(ctx context.Context) (ProviderMetadata, bool, error)

// LoadMetadata attempts the five approaches in order, stopping at the first
// that succeeds or fails fatally. If all five report "not present", it
// fails with errs.ErrNotFound.
func (d *Discovery) LoadMetadata(ctx context.Context) (ProviderMetadata, error) {
	approaches := []approach{
		d.ApproachFullURL,
		d.ApproachWellKnown,
		func(ctx context.Context) (ProviderMetadata, bool, error) {
			return d.ApproachSecurityTxt(ctx, ".well-known/security.txt")
		},
		func(ctx context.Context) (ProviderMetadata, bool, error) {
			return d.ApproachSecurityTxt(ctx, "security.txt")
		},
		d.ApproachDNS,
	}

	for _, try := range approaches {
		md, ok, err := try(ctx)
		if err != nil {
			return nil, err
		}
		if ok {
			return md, nil
		}
	}

	return nil, errs.ErrNotFound
}

// ApproachFullURL treats Source as a URL and tries to retrieve it directly.
//
// If Source does not parse as an absolute URL, this is "not present"
// (approaches further down reinterpret Source as a hostname). If it does
// parse but the fetch 404s, that is a fatal error: an explicit URL that
// 404s is a failure, not a skip.
func (d *Discovery) ApproachFullURL(ctx context.Context) (ProviderMetadata, bool, error) {
	u, err := url.Parse(d.Source)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return nil, false, nil
	}

	md, err := fetcher.FetchJSON[ProviderMetadata](ctx, d.Fetcher, u.String())
	if err != nil {
		return nil, false, errs.ErrFetch{URL: u.String(), Err: err}
	}
	return md, true, nil
}

// ApproachWellKnown retrieves provider metadata through the IANA
// well-known URL.
func (d *Discovery) ApproachWellKnown(ctx context.Context) (ProviderMetadata, bool, error) {
	u := fmt.Sprintf("https://%s/.well-known/csaf/provider-metadata.json", d.Source)

	md, ok, err := fetcher.FetchOptionalJSON[ProviderMetadata](ctx, d.Fetcher, u)
	if err != nil {
		return nil, false, errs.ErrFetch{URL: u, Err: err}
	}
	return md, ok, nil
}

// ApproachSecurityTxt retrieves the security.txt at
// https://{Source}/{path}, extracts the first acceptable "csaf" extension,
// and fetches the metadata it points to.
//
// If the security.txt itself is absent, or parses but carries no acceptable
// CSAF extension, this is "not present". If a CSAF extension is found but
// fetching the metadata it references 404s, that is fatal: the security.txt
// asserted the document existed.
func (d *Discovery) ApproachSecurityTxt(ctx context.Context, path string) (ProviderMetadata, bool, error) {
	u := fmt.Sprintf("https://%s/%s", d.Source, path)

	text, ok, err := fetcher.FetchOptionalString(ctx, d.Fetcher, u)
	if err != nil {
		return nil, false, errs.ErrFetch{URL: u, Err: err}
	}
	if !ok {
		return nil, false, nil
	}

	metadataURL, ok, err := extractCSAFURL(u, text)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}

	md, err := fetcher.FetchJSON[ProviderMetadata](ctx, d.Fetcher, metadataURL)
	if err != nil {
		return nil, false, errs.ErrFetch{URL: metadataURL, Err: err}
	}
	return md, true, nil
}

// extractCSAFURL parses text as RFC 9116 security.txt and returns the first
// "csaf" extension whose value parses as an absolute https URL, in document
// order.
//
// The name comparison is case-insensitive, as RFC 9116 field names are, so
// "CSAF:" and "csaf:" both match.
func extractCSAFURL(securityTxtURL, text string) (string, bool, error) {
	doc, err := securitytxt.Parse(text)
	if err != nil {
		return "", false, errs.ErrSecurityTxtParse{URL: securityTxtURL, Message: err.Error()}
	}

	for _, ext := range doc.Extensions {
		if !strings.EqualFold(ext.Name, "csaf") {
			continue
		}
		u, err := url.Parse(ext.Value)
		if err != nil || !u.IsAbs() {
			continue
		}
		if u.Scheme == "https" {
			return ext.Value, true, nil
		}
	}
	return "", false, nil
}

// ApproachDNS retrieves provider metadata via the DNS-prefix path:
// csaf.data.security.{Source}.
//
// As it is hard to distinguish "host not found" from any other connection
// error, a DNS pre-flight check is performed first. If the hostname
// resolves to at least one address, the following HTTP request is assumed
// not to fail due to an unknown host.
func (d *Discovery) ApproachDNS(ctx context.Context) (ProviderMetadata, bool, error) {
	host := fmt.Sprintf("csaf.data.security.%s", d.Source)

	addrs, err := d.Resolver.LookupHost(ctx, host)
	if err != nil {
		if dnsresolve.IsNoRecordsFound(err) {
			return nil, false, nil
		}
		return nil, false, errs.ErrDns{Host: host, Err: err}
	}
	if len(addrs) == 0 {
		return nil, false, nil
	}

	u := "https://" + host
	md, ok, err := fetcher.FetchOptionalJSON[ProviderMetadata](ctx, d.Fetcher, u)
	if err != nil {
		return nil, false, errs.ErrFetch{URL: u, Err: err}
	}
	return md, ok, nil
}
