// This file is Free Software under the Apache-2.0 License
// without warranty, see README.md and LICENSES/Apache-2.0.txt for details.
//
// SPDX-License-Identifier: Apache-2.0

// Package dnsresolve is the DNS-lookup collaborator consumed by the
// discovery pipeline's DNS approach. It distinguishes "authoritative no
// records" from any other resolution failure, because the latter is
// otherwise indistinguishable from a generic transport error.
package dnsresolve

import (
	"context"
	"errors"
	"net"
)

// Resolver looks up the addresses for a hostname.
type Resolver interface {
	LookupHost(ctx context.Context, host string) ([]string, error)
}

// StdResolver adapts the standard library's stub resolver.
type StdResolver struct {
	Resolver *net.Resolver
}

// NewStdResolver returns a StdResolver using net.DefaultResolver.
func NewStdResolver() *StdResolver {
	return &StdResolver{Resolver: net.DefaultResolver}
}

// LookupHost implements Resolver.
func (r *StdResolver) LookupHost(ctx context.Context, host string) ([]string, error) {
	res := r.Resolver
	if res == nil {
		res = net.DefaultResolver
	}
	return res.LookupHost(ctx, host)
}

// IsNoRecordsFound reports whether err represents an authoritative "no
// records for this host" answer, as opposed to a transport-level failure.
func IsNoRecordsFound(err error) bool {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return dnsErr.IsNotFound
	}
	return false
}
