// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package types

// FilterDescriptor is an opaque predicate the core never interprets itself;
// it is handed to a FilterEvaluator implementation which converts it into a
// row index set. ColumnEquals is the one variant the scheme builders emit.
type FilterDescriptor interface {
	isFilterDescriptor()
}

// ColumnEquals describes "column == value", string-normalized so a numeric
// segment key matches both numeric and string-typed columns.
type ColumnEquals struct {
	Column string
	Value  string
}

func (ColumnEquals) isFilterDescriptor() {}

// Group is a named subset of rows (selected by an optional filter) together
// with one Target per weighting dimension and its share of the total
// population. A nil Filter means the group spans every row.
type Group struct {
	Name         string
	Filter       FilterDescriptor
	Targets      []*Target
	GlobalWeight float64 // percent share of the total population
}

// TargetFor returns the group's Target for the named dimension, if any.
func (g *Group) TargetFor(variable string) (*Target, bool) {
	for _, t := range g.Targets {
		if t.Variable == variable {
			return t, true
		}
	}
	return nil, false
}

// MinCategoryPolicy controls what happens when an observed category count
// falls below SolverConfig.MinCategoryCount.
type MinCategoryPolicy string

const (
	// MinCategoryDrop drops under-threshold categories and renormalizes the
	// target over the surviving categories.
	MinCategoryDrop MinCategoryPolicy = "drop"
	// MinCategoryWarn keeps under-threshold categories and only warns.
	MinCategoryWarn MinCategoryPolicy = "warn"
)

// SolverConfig holds the raking solver's tunable parameters. Field names and
// JSON tags are fixed by the scheme serialization contract.
type SolverConfig struct {
	MaxIterations        int               `json:"max_iterations"`
	ConvergenceThreshold float64           `json:"convergence_threshold"`
	WeightCap            float64           `json:"weight_cap"` // 0 means no cap
	MinCategoryCount     int               `json:"min_category_count"`
	MinCategoryPolicy    MinCategoryPolicy `json:"min_category_policy"`
}

// DefaultSolverConfig returns the solver defaults named in §6: 1000 max
// iterations, 1e-4 convergence threshold, no weight cap, no minimum category
// count (and therefore a moot policy, left at "warn").
func DefaultSolverConfig() SolverConfig {
	return SolverConfig{
		MaxIterations:        1000,
		ConvergenceThreshold: 1e-4,
		WeightCap:            0,
		MinCategoryCount:     0,
		MinCategoryPolicy:    MinCategoryWarn,
	}
}

// Scheme is the full declarative object describing a weighting run: its
// groups (one for a flat scheme, one per segment for a segmented scheme),
// the shared dimension list every group's targets must reference, and the
// solver configuration applied to every group. A Scheme is immutable once
// constructed by NewFlatScheme or NewSegmentedScheme.
type Scheme struct {
	Name       string
	Groups     []*Group
	Dimensions []string
	Config     SolverConfig
}

// GroupByName returns the named group, if present.
func (s *Scheme) GroupByName(name string) (*Group, bool) {
	for _, g := range s.Groups {
		if g.Name == name {
			return g, true
		}
	}
	return nil, false
}

// GlobalGroupName is the name assigned to a flat scheme's single group,
// matching the original source's "global group" naming.
const GlobalGroupName = "global group"
