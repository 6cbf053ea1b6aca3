// This file is Free Software under the Apache-2.0 License
// without warranty, see README.md and LICENSES/Apache-2.0.txt for details.
//
// SPDX-License-Identifier: Apache-2.0

// Package sbom is a light, secondary-path inspector for CycloneDX software
// bills of materials: detect the spec version tag and expose accessors
// over the three schema versions CycloneDX has shipped, without modeling
// the full CycloneDX schema.
//
// This mirrors the tagged-variant-with-accessor-methods shape of a fuller
// CycloneDX model (one enum case per spec version, accessor methods that
// match on the tag), scaled down to what a non-core secondary path needs:
// Metadata() and Components() read straight out of the decoded JSON value
// rather than through per-version typed structs, since every version
// agrees on those two fields' shape.
package sbom

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema/shape.json
var shapeSchema []byte

// Version is the CycloneDX specVersion tag.
type Version string

// The three CycloneDX versions this package recognizes.
const (
	V1_4 Version = "1.4"
	V1_5 Version = "1.5"
	V1_6 Version = "1.6"
)

func (v Version) known() bool {
	switch v {
	case V1_4, V1_5, V1_6:
		return true
	default:
		return false
	}
}

// CycloneDX is a tagged view over a decoded CycloneDX document: the
// Version it declared, plus the raw decoded value for the two accessors
// below.
type CycloneDX struct {
	Version Version
	raw     map[string]any
}

// Detect reports whether data looks like a CycloneDX document and, if so,
// which spec version it declares. It does not validate the full shape;
// use Parse for that.
func Detect(data []byte) (Version, bool, error) {
	var probe struct {
		BOMFormat   string `json:"bomFormat"`
		SpecVersion string `json:"specVersion"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return "", false, fmt.Errorf("decoding JSON: %w", err)
	}
	if probe.BOMFormat != "CycloneDX" {
		return "", false, nil
	}
	v := Version(probe.SpecVersion)
	if !v.known() {
		return "", false, nil
	}
	return v, true, nil
}

// Parse validates data against a minimal structural schema (bomFormat,
// specVersion, and the shape of components/metadata if present) and
// returns a CycloneDX view over it.
func Parse(data []byte) (*CycloneDX, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("shape.json", bytes.NewReader(shapeSchema)); err != nil {
		return nil, fmt.Errorf("loading shape schema: %w", err)
	}
	schema, err := compiler.Compile("shape.json")
	if err != nil {
		return nil, fmt.Errorf("compiling shape schema: %w", err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding JSON: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("document does not match CycloneDX shape: %w", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding JSON: %w", err)
	}

	return &CycloneDX{
		Version: Version(raw["specVersion"].(string)),
		raw:     raw,
	}, nil
}

// Metadata returns the document's top-level "metadata" object, if present.
func (c *CycloneDX) Metadata() (map[string]any, bool) {
	m, ok := c.raw["metadata"].(map[string]any)
	return m, ok
}

// Components returns the document's top-level "components" array, if
// present.
func (c *CycloneDX) Components() ([]any, bool) {
	comps, ok := c.raw["components"].([]any)
	return comps, ok
}
