// This file is Free Software under the Apache-2.0 License
// without warranty, see README.md and LICENSES/Apache-2.0.txt for details.
//
// SPDX-License-Identifier: Apache-2.0

// Package main implements csafctl, a small CLI over the discovery and
// validation packages: discover provider metadata for a source, parse a
// local CSAF document, or run it through the embedded validator.
package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
)

// options holds the flags shared by every subcommand.
type options struct {
	ConfigFile string `long:"config" description:"path to a csafctl config file (default ~/.config/csafctl/config.toml)"`
	Verbose    bool   `short:"v" long:"verbose" description:"enable debug logging"`
}

// globalOptions is populated by flags.Parse before any subcommand's
// Execute runs; subcommands read it to pick up -v/--verbose.
var globalOptions options

func main() {
	parser := flags.NewParser(&globalOptions, flags.Default)
	parser.SubcommandsOptional = false

	if _, err := parser.AddCommand(
		"metadata",
		"Discover CSAF provider metadata",
		"Runs the provider-metadata discovery protocol against a source and prints the result as JSON.",
		&metadataCommand{},
	); err != nil {
		fail(err)
	}
	if _, err := parser.AddCommand(
		"parse",
		"Parse a local CSAF document",
		"Reads a CSAF JSON file from disk and prints its identifying fields, or a format error.",
		&parseCommand{},
	); err != nil {
		fail(err)
	}
	if _, err := parser.AddCommand(
		"validate",
		"Validate a local CSAF document",
		"Runs a CSAF JSON file through the embedded validator bundle and prints any failures.",
		&validateCommand{},
	); err != nil {
		fail(err)
	}

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return
		}
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "csafctl:", err)
	os.Exit(1)
}
