// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

// Package filter implements the default FilterEvaluator for the
// ColumnEquals descriptors the scheme builders emit. The row-filter
// expression language itself — anything beyond "column equals value" — is
// an external collaborator's concern; the core never imports this package,
// it only depends on the types.FilterDescriptor/Evaluator contract.
package filter

import (
	"fmt"

	"github.com/bitjungle/weightipy/pkg/types"
)

// DefaultEvaluator implements types.FilterEvaluator for the ColumnEquals
// descriptor the scheme builders produce. It supports both string and
// numeric columns, matching after string-normalizing the compared value
// (§4.C5).
type DefaultEvaluator struct{}

var _ types.FilterEvaluator = DefaultEvaluator{}

// Apply returns the index set of rows matching descriptor.
func (DefaultEvaluator) Apply(descriptor types.FilterDescriptor, dataset *types.Dataset) ([]int, error) {
	if descriptor == nil {
		indices := make([]int, dataset.Len())
		for i := range indices {
			indices[i] = i
		}
		return indices, nil
	}

	eq, ok := descriptor.(types.ColumnEquals)
	if !ok {
		return nil, fmt.Errorf("filter: unsupported descriptor type %T", descriptor)
	}

	col, ok := dataset.Column(eq.Column)
	if !ok {
		return nil, fmt.Errorf("filter: column %q not found", eq.Column)
	}

	var indices []int
	for i := 0; i < col.Len(); i++ {
		if col.StringAt(i) == eq.Value {
			indices = append(indices, i)
		}
	}
	return indices, nil
}
