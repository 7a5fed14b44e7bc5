// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package types

// ConvergenceRecord reports how a single group's raking solve terminated.
// Warnings carries non-fatal min_category_count notices (§9's "warn" policy)
// and any other advisory messages produced during the solve; it does not
// affect Converged.
type ConvergenceRecord struct {
	Iterations  int
	MaxResidual float64
	Converged   bool
	Warnings    []string
}

// GroupResult is one group's solve output: the row indices it covers (into
// the original dataset), the weights aligned with those indices, and the
// convergence record.
type GroupResult struct {
	Group       string
	Rows        []int
	Weights     []float64
	Convergence ConvergenceRecord
}

// WeightResult is the engine's top-level output: the full-length weight
// vector (aligned 1:1 with dataset rows), per-group results, the set of
// unassigned row indices, and whether every group converged. Scheme
// construction keeps a Scheme immutable (§3's ownership rule), so the
// "converged" flag the spec attaches to a solved scheme lives here instead,
// on the solve's result, rather than mutating the Scheme itself.
type WeightResult struct {
	Scheme     *Scheme
	Weights    []float64
	Groups     map[string]*GroupResult
	Unassigned []int
	Converged  bool
}
