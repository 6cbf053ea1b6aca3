// This file is Free Software under the Apache-2.0 License
// without warranty, see README.md and LICENSES/Apache-2.0.txt for details.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/helio-frota/csaf-walker/validator"
)

// validateCommand implements the "validate" subcommand: run a local CSAF
// document through the embedded validator bundle and print any failures.
type validateCommand struct {
	Profile string        `long:"profile" default:"mandatory" choice:"schema" choice:"mandatory" choice:"optional" description:"validation strictness"`
	Timeout time.Duration `long:"timeout" default:"10s" description:"deadline for one validation run"`
	Args    struct {
		File string `positional-arg-name:"file" description:"path to a CSAF JSON document"`
	} `positional-args:"yes" required:"yes"`
}

func (c *validateCommand) Execute(_ []string) error {
	profile, err := parseProfile(c.Profile)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(c.Args.File)
	if err != nil {
		return fmt.Errorf("reading %s: %w", c.Args.File, err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing %s as JSON: %w", c.Args.File, err)
	}

	adapter := validator.NewAdapter(profile, c.Timeout)
	failures, err := adapter.Check(doc)
	if err != nil {
		return fmt.Errorf("validating %s: %w", c.Args.File, err)
	}

	if len(failures) == 0 {
		fmt.Println("valid")
		return nil
	}
	for _, f := range failures {
		fmt.Println(f)
	}
	return fmt.Errorf("%d validation failure(s)", len(failures))
}

func parseProfile(name string) (validator.Profile, error) {
	switch name {
	case "schema":
		return validator.ProfileSchema, nil
	case "mandatory":
		return validator.ProfileMandatory, nil
	case "optional":
		return validator.ProfileOptional, nil
	default:
		return 0, fmt.Errorf("unknown profile %q", name)
	}
}
