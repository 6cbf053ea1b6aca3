// This file is Free Software under the Apache-2.0 License
// without warranty, see README.md and LICENSES/Apache-2.0.txt for details.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/helio-frota/csaf-walker/internal/config"
	"github.com/helio-frota/csaf-walker/metadata"
	"github.com/helio-frota/csaf-walker/pkg/dnsresolve"
	"github.com/helio-frota/csaf-walker/pkg/fetcher"
)

// metadataCommand implements the "metadata" subcommand: run the
// provider-metadata discovery protocol against a source.
type metadataCommand struct {
	All  bool `short:"A" long:"all" description:"show every discovery approach's individual outcome instead of just the winner"`
	Args struct {
		Source string `positional-arg-name:"source" description:"hostname or provider-metadata URL to discover"`
	} `positional-args:"yes" required:"yes"`
}

func (c *metadataCommand) Execute(_ []string) error {
	if globalOptions.Verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	client := fetcher.NewClient(fetcher.Options{
		Timeout:   time.Duration(cfg.Timeout),
		RateLimit: cfg.RateLimit,
		Header:    toHeader(cfg.Header),
		Insecure:  cfg.Insecure,
		Verbose:   globalOptions.Verbose,
	})
	d := metadata.New(c.Args.Source, client, dnsresolve.NewStdResolver())
	ctx := context.Background()

	if err := c.saveLastSource(); err != nil {
		slog.Warn("could not persist last source", "error", err)
	}

	if c.All {
		return c.showAll(ctx, d)
	}

	md, err := d.LoadMetadata(ctx)
	if err != nil {
		return err
	}
	return printJSON(md)
}

func (c *metadataCommand) showAll(ctx context.Context, d *metadata.Discovery) error {
	type namedApproach struct {
		name string
		run  func(context.Context) (metadata.ProviderMetadata, bool, error)
	}

	approaches := []namedApproach{
		{"Direct URL", d.ApproachFullURL},
		{"Well-known", d.ApproachWellKnown},
		{"/.well-known/security.txt", func(ctx context.Context) (metadata.ProviderMetadata, bool, error) {
			return d.ApproachSecurityTxt(ctx, ".well-known/security.txt")
		}},
		{"/security.txt", func(ctx context.Context) (metadata.ProviderMetadata, bool, error) {
			return d.ApproachSecurityTxt(ctx, "security.txt")
		}},
		{"DNS", d.ApproachDNS},
	}

	for _, a := range approaches {
		md, ok, err := a.run(ctx)
		switch {
		case err != nil:
			fmt.Printf("%s (Err): %v\n\n", a.name, err)
		case !ok:
			fmt.Printf("%s: <<none>>\n\n", a.name)
		default:
			fmt.Printf("%s:\n", a.name)
			if err := printJSON(md); err != nil {
				return err
			}
			fmt.Println()
		}
	}
	return nil
}

func (c *metadataCommand) saveLastSource() error {
	path, err := config.DefaultStatePath()
	if err != nil {
		return err
	}
	st, err := config.LoadState(path)
	if err != nil {
		return err
	}
	st.LastSource = c.Args.Source
	return config.SaveState(path, st)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
