// This file is Free Software under the Apache-2.0 License
// without warranty, see README.md and LICENSES/Apache-2.0.txt for details.
//
// SPDX-License-Identifier: Apache-2.0

//go:build debug

package bundle

import _ "embed"

//go:embed js/bundle.debug.js
var code string

// Code returns the embedded validator bundle source for the debug build
// profile: identical behavior to the release bundle, readable instead of
// minified.
func Code() string { return code }

// ModuleID is the internal URL identifier the script runtime uses to name
// the bundle module.
const ModuleID = "internal://bundle.js"
