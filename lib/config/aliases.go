// Copyright 2026 The Intake Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"

	"github.com/intake-foundation/intake/lib/schema"
)

// AliasFile is the parsed form of a JSONC alias-extension document:
//
//	{
//	  // extra vocabulary for the ticket schema
//	  "ticket": {
//	    "fields": {"ticket": ["nr", "number"]},
//	    "delimiters": {"description": ["writeup"]},
//	  },
//	}
//
// Top-level keys are schema kinds; fields map canonical attribute
// names to extra aliases, delimiters map body field names to extra
// delimiter tokens.
type AliasFile map[string]AliasExtension

// AliasExtension is the per-schema section of an alias file.
type AliasExtension struct {
	Fields     map[string][]string `json:"fields"`
	Delimiters map[string][]string `json:"delimiters"`
}

// ParseAliasFile strips JSONC comments and trailing commas from data
// and unmarshals the result.
func ParseAliasFile(data []byte) (AliasFile, error) {
	stripped := jsonc.ToJSON(data)
	var file AliasFile
	if err := json.Unmarshal(stripped, &file); err != nil {
		return nil, fmt.Errorf("parsing alias file: %w", err)
	}
	return file, nil
}

// ReadAliasFile reads and parses a JSONC alias file from disk.
func ReadAliasFile(path string) (AliasFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	file, err := ParseAliasFile(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return file, nil
}

// Apply extends a registry with the file's vocabulary and returns the
// new registry. The input registry is not modified.
func (f AliasFile) Apply(registry *schema.Registry) (*schema.Registry, error) {
	if len(f) == 0 {
		return registry, nil
	}
	extensions := make(map[schema.Kind]schema.Extension, len(f))
	for kind, extension := range f {
		extensions[schema.Kind(kind)] = schema.Extension{
			FieldAliases:   extension.Fields,
			BodyDelimiters: extension.Delimiters,
		}
	}
	return registry.Extend(extensions)
}

// Registry builds the effective schema registry for a config: the
// built-in registry, extended by the alias file when one is set.
func (c *Config) Registry() (*schema.Registry, error) {
	registry := schema.Default()
	if c.AliasFile == "" {
		return registry, nil
	}
	file, err := ReadAliasFile(c.AliasFile)
	if err != nil {
		return nil, err
	}
	return file.Apply(registry)
}
