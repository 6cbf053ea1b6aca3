// This file is Free Software under the Apache-2.0 License
// without warranty, see README.md and LICENSES/Apache-2.0.txt for details.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"net/http"

	"github.com/helio-frota/csaf-walker/internal/config"
)

// loadConfig resolves the config file path (explicit flag, else the
// default "~/.config/csafctl/config.toml") and loads it.
func loadConfig() (config.Config, error) {
	path := globalOptions.ConfigFile
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return config.Config{}, err
		}
	}
	return config.Load(path)
}

// toHeader converts the TOML-friendly map[string]string into http.Header.
func toHeader(m map[string]string) http.Header {
	if len(m) == 0 {
		return nil
	}
	h := make(http.Header, len(m))
	for k, v := range m {
		h.Set(k, v)
	}
	return h
}
