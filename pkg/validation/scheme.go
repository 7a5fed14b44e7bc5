// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

// Package validation validates the raw scheme dictionary (the §6 exchange
// format) against a JSON schema before it ever reaches the scheme builders,
// so a malformed segmented/flat shape is rejected with a field-level message
// rather than only as an InvalidScheme error from the C4 builders.
package validation

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas/v1/*.json
var schemaFS embed.FS

// SchemeValidator validates a scheme dictionary's JSON shape against the
// scheme.schema.json document for a given schema version.
type SchemeValidator struct {
	schema  *gojsonschema.Schema
	version string
}

// NewSchemeValidator loads the scheme schema for the given version ("" means
// the latest, "v1").
func NewSchemeValidator(version string) (*SchemeValidator, error) {
	if version == "" {
		version = "v1"
	}

	schemaPath := fmt.Sprintf("schemas/%s/scheme.schema.json", version)
	schemaData, err := schemaFS.ReadFile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load scheme schema %s: %w", version, err)
	}

	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaData))
	if err != nil {
		return nil, fmt.Errorf("failed to compile scheme schema %s: %w", version, err)
	}

	return &SchemeValidator{schema: schema, version: version}, nil
}

// ValidateDict validates a raw scheme dictionary (already decoded into a
// map[string]interface{}, or any JSON-marshalable value) against the schema.
func (v *SchemeValidator) ValidateDict(dict interface{}) error {
	data, err := json.Marshal(dict)
	if err != nil {
		return fmt.Errorf("scheme dictionary is not valid JSON: %w", err)
	}

	result, err := v.schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("scheme schema validation failed: %w", err)
	}

	if !result.Valid() {
		return formatValidationErrors(result.Errors())
	}

	return nil
}

// ValidateJSON validates raw scheme JSON bytes against the schema.
func (v *SchemeValidator) ValidateJSON(data []byte) error {
	var probe interface{}
	if err := json.Unmarshal(data, &probe); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	result, err := v.schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("scheme schema validation failed: %w", err)
	}

	if !result.Valid() {
		return formatValidationErrors(result.Errors())
	}

	return nil
}

// formatValidationErrors renders gojsonschema's per-field errors into a
// single readable message.
func formatValidationErrors(errors []gojsonschema.ResultError) error {
	if len(errors) == 0 {
		return nil
	}

	var msgs []string
	for _, err := range errors {
		field := err.Field()
		if field == "(root)" {
			field = "scheme"
		}
		msgs = append(msgs, fmt.Sprintf("  - %s: %s", field, err.Description()))
	}

	return fmt.Errorf("scheme validation failed:\n%s", strings.Join(msgs, "\n"))
}
