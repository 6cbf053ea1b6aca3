// This file is Free Software under the Apache-2.0 License
// without warranty, see README.md and LICENSES/Apache-2.0.txt for details.
//
// SPDX-License-Identifier: Apache-2.0

//go:build !debug

// Package bundle embeds the CSAF validator script, compiled into the
// binary so the host never needs network or filesystem access to load it.
package bundle

import _ "embed"

//go:embed js/bundle.js
var code string

// Code returns the embedded validator bundle source for the active build
// profile (release here; see bundle_debug.go for the debug profile).
func Code() string { return code }

// ModuleID is the internal URL identifier the script runtime uses to name
// the bundle module.
const ModuleID = "internal://bundle.js"
