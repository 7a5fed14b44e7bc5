// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package validation

import (
	"strings"
	"testing"
)

func TestNewSchemeValidator(t *testing.T) {
	tests := []struct {
		name    string
		version string
		wantErr bool
	}{
		{name: "default version", version: "", wantErr: false},
		{name: "explicit v1", version: "v1", wantErr: false},
		{name: "unknown version", version: "v99", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSchemeValidator(tt.version)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewSchemeValidator(%q) error = %v, wantErr %v", tt.version, err, tt.wantErr)
			}
		})
	}
}

func TestSchemeValidator_ValidateDict_Flat(t *testing.T) {
	v, err := NewSchemeValidator("v1")
	if err != nil {
		t.Fatalf("failed to create validator: %v", err)
	}

	valid := map[string]interface{}{
		"gender": map[string]interface{}{"M": 50, "F": 50},
	}
	if err := v.ValidateDict(valid); err != nil {
		t.Errorf("expected valid flat scheme, got error: %v", err)
	}

	invalid := map[string]interface{}{
		"gender": "not-a-distribution",
	}
	if err := v.ValidateDict(invalid); err == nil {
		t.Error("expected error for non-object target distribution")
	}
}

func TestSchemeValidator_ValidateDict_Segmented(t *testing.T) {
	v, err := NewSchemeValidator("v1")
	if err != nil {
		t.Fatalf("failed to create validator: %v", err)
	}

	valid := map[string]interface{}{
		"segment_by":      "region",
		"segment_targets": map[string]interface{}{"A": 50, "B": 50},
		"segments": map[string]interface{}{
			"A": map[string]interface{}{"gender": map[string]interface{}{"M": 50, "F": 50}},
			"B": map[string]interface{}{"gender": map[string]interface{}{"M": 50, "F": 50}},
		},
	}
	if err := v.ValidateDict(valid); err != nil {
		t.Errorf("expected valid segmented scheme, got error: %v", err)
	}

	missingSegments := map[string]interface{}{
		"segment_by":      "region",
		"segment_targets": map[string]interface{}{"A": 50, "B": 50},
	}
	err = v.ValidateDict(missingSegments)
	if err == nil {
		t.Fatal("expected error for segmented scheme missing segments")
	}
	if !strings.Contains(err.Error(), "scheme validation failed") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestSchemeValidator_ValidateJSON_InvalidJSON(t *testing.T) {
	v, err := NewSchemeValidator("v1")
	if err != nil {
		t.Fatalf("failed to create validator: %v", err)
	}

	if err := v.ValidateJSON([]byte("not json")); err == nil {
		t.Error("expected error for malformed JSON")
	}
}
