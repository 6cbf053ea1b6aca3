// This file is Free Software under the Apache-2.0 License
// without warranty, see README.md and LICENSES/Apache-2.0.txt for details.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"
	"os"
)

// parseCommand implements the "parse" subcommand: read a local CSAF
// document and print its identifying fields, or a format error.
//
// Only the handful of fields needed for the one-line summary are modeled
// here; the full CSAF document schema is out of scope for this tool.
type parseCommand struct {
	Args struct {
		File string `positional-arg-name:"file" description:"path to a CSAF JSON document"`
	} `positional-args:"yes" required:"yes"`
}

type csafSummary struct {
	Document struct {
		Title    string `json:"title"`
		Tracking struct {
			ID                 string `json:"id"`
			InitialReleaseDate string `json:"initial_release_date"`
		} `json:"tracking"`
	} `json:"document"`
}

func (c *parseCommand) Execute(_ []string) error {
	data, err := os.ReadFile(c.Args.File)
	if err != nil {
		return fmt.Errorf("reading %s: %w", c.Args.File, err)
	}

	var summary csafSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		fmt.Printf("  Format error: %v\n", err)
		return nil
	}

	fmt.Printf("  %s (%s): %s\n",
		summary.Document.Tracking.ID,
		summary.Document.Tracking.InitialReleaseDate,
		summary.Document.Title)
	return nil
}
