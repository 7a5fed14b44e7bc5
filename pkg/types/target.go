// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package types

import (
	"sort"
)

// Target is a normalized marginal target distribution for one weighting
// dimension within a group: a map of category to percent share, always
// summing to 100 after NewTarget.
type Target struct {
	Variable   string
	Shares     map[string]float64 // category -> percent, sums to 100
	categories []string           // declared order, for dense coding
}

// NewTarget normalizes a raw, arbitrarily-scaled category distribution into
// a Target whose shares sum to 100. Entries with value exactly 0 are kept
// only if a caller later observes them in the data (C1 drops unreferenced
// zero-value categories silently); NewTarget itself never drops anything,
// since it cannot see the data yet.
func NewTarget(variable string, raw map[string]float64, order []string) (*Target, error) {
	var total float64
	for _, v := range raw {
		total += v
	}
	if total <= 0 {
		return nil, NewZeroTotalError("", variable)
	}

	shares := make(map[string]float64, len(raw))
	for k, v := range raw {
		shares[k] = v / total * 100
	}

	categories := order
	if categories == nil {
		categories = make([]string, 0, len(raw))
		for k := range raw {
			categories = append(categories, k)
		}
		sort.Strings(categories)
	}

	return &Target{Variable: variable, Shares: shares, categories: categories}, nil
}

// Categories returns the target's declared category order.
func (t *Target) Categories() []string {
	out := make([]string, len(t.categories))
	copy(out, t.categories)
	return out
}

// Share returns the normalized percent share for a category, and whether the
// category is present in the target at all.
func (t *Target) Share(category string) (float64, bool) {
	v, ok := t.Shares[category]
	return v, ok
}

// Sum returns the total of all shares; always 100 (within float rounding)
// for a Target produced by NewTarget.
func (t *Target) Sum() float64 {
	var total float64
	for _, v := range t.Shares {
		total += v
	}
	return total
}

// WithObservedCategories returns a copy of the target restricted to the
// given observed categories, dropping declared-zero categories absent from
// the data and leaving everything else untouched. Categories with a
// positive share that are absent from observed is a validation error the
// caller (the validator, C8) must raise separately; this method does not
// itself error, it only prunes what's safe to drop per §3.
func (t *Target) WithObservedCategories(observed map[string]bool) *Target {
	shares := make(map[string]float64, len(t.Shares))
	var order []string
	for _, cat := range t.categories {
		share := t.Shares[cat]
		if share == 0 && !observed[cat] {
			continue
		}
		shares[cat] = share
		order = append(order, cat)
	}
	return &Target{Variable: t.Variable, Shares: shares, categories: order}
}
