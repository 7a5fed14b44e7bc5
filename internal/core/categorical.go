// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package core

import (
	"github.com/bitjungle/weightipy/pkg/types"
)

// CategoricalIndex maps a column's row values, restricted to a group's row
// subset, onto dense integer codes 0..K-1 in the order a Target declares its
// categories. Equality is string-normalized (§4.C1): a row value `1` and a
// scheme key `"1"` collide, as do `1.0` and `"1"`.
type CategoricalIndex struct {
	Variable    string
	Categories  []string // dense order 0..K-1
	Codes       []int    // one entry per row in Rows, code into Categories
	Rows        []int    // dataset row indices this index actually covers
	Unscheduled []int    // dataset row indices whose value has no matching category
}

// BuildCategoricalIndex builds a CategoricalIndex for one dimension over a
// group's row subset. Rows with NaN values are a fatal NaNValues error. Rows
// whose value has no matching declared category are excluded from Codes/Rows
// and reported separately in Unscheduled — per §4.C1 they "do not appear
// here"; the validator (C8) is responsible for flagging them as a warning.
func BuildCategoricalIndex(group string, col *types.Column, rowSubset []int, categories []string) (*CategoricalIndex, error) {
	codeOf := make(map[string]int, len(categories))
	for i, cat := range categories {
		codeOf[cat] = i
	}

	idx := &CategoricalIndex{
		Variable:   col.Name,
		Categories: categories,
	}

	for _, row := range rowSubset {
		if col.IsNaNAt(row) {
			return nil, types.NewNaNValuesError(group, col.Name, 1)
		}
		key := col.StringAt(row)
		code, ok := codeOf[key]
		if !ok {
			idx.Unscheduled = append(idx.Unscheduled, row)
			continue
		}
		idx.Rows = append(idx.Rows, row)
		idx.Codes = append(idx.Codes, code)
	}

	return idx, nil
}

// MarginalCounts sums weights bucketed by category code: Σ w[i] for every i
// with codes[i] == k, for each k in [0, K).
func MarginalCounts(weights []float64, codes []int, k int) []float64 {
	out := make([]float64, k)
	for i, code := range codes {
		out[code] += weights[i]
	}
	return out
}
