// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package core

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/bitjungle/weightipy/pkg/types"
)

// DimensionSolve is one weighting dimension's coded observations and target
// for a single group's raking solve: Codes[i] is the category code of row i
// in the group's row subset, in [0, K).
type DimensionSolve struct {
	Variable     string
	Categories   []string // length K, category label per code
	Codes        []int
	K            int
	TargetShares []float64 // percent, length K, sums to 100
}

// Solve runs the classic raking/IPF loop (§4.C6) over a single group's row
// subset of size n, across the given dimensions, and returns the group's
// weight vector together with a convergence record. stop, if non-nil, is
// checked between outer iterations for cooperative cancellation (§5); a
// closed/signaled stop channel halts the loop early with converged=false.
func Solve(n int, dims []DimensionSolve, config types.SolverConfig, group string, stop <-chan struct{}) ([]float64, types.ConvergenceRecord, error) {
	w := InitializeVector(n)
	for i := 0; i < n; i++ {
		w.SetVec(i, 1)
	}

	dims, warnings := applyMinCategoryPolicy(dims, config.MinCategoryCount, config.MinCategoryPolicy, group)
	record := types.ConvergenceRecord{Warnings: warnings}
	maxIterations := config.MaxIterations
	if maxIterations <= 0 {
		maxIterations = 1000
	}
	threshold := config.ConvergenceThreshold
	if threshold <= 0 {
		threshold = 1e-4
	}

	for iter := 1; iter <= maxIterations; iter++ {
		select {
		case <-stop:
			record.Iterations = iter - 1
			return vecToSlice(w), record, nil
		default:
		}

		residual := 0.0

		for _, dim := range dims {
			// sumScheduled excludes rows dropped by min_category_count (§9):
			// their weight still exists but this dimension's 100% target no
			// longer claims to cover it, so it must not enter the denominator
			// the surviving categories are rescaled against.
			var sumScheduled float64
			observed := InitializeVector(dim.K)
			for i, code := range dim.Codes {
				if code < 0 {
					continue
				}
				sumScheduled += w.AtVec(i)
				observed.SetVec(code, observed.AtVec(code)+w.AtVec(i))
			}

			desired := InitializeVector(dim.K)
			for k := 0; k < dim.K; k++ {
				desired.SetVec(k, dim.TargetShares[k]*sumScheduled/100)
			}

			for k := 0; k < dim.K; k++ {
				o := observed.AtVec(k)
				d := desired.AtVec(k)
				if o == 0 {
					if d > 0 {
						return nil, types.ConvergenceRecord{}, types.NewEmptyCellWithNonzeroTargetError(group, dim.Variable, categoryAt(dim, k))
					}
					continue
				}
				if d > 0 {
					r := math.Abs(o-d) / d
					if r > residual {
						residual = r
					}
				}
			}

			for i, code := range dim.Codes {
				if code < 0 {
					continue // dropped rows keep their current weight this dimension
				}
				o := observed.AtVec(code)
				d := desired.AtVec(code)
				if o == 0 {
					continue
				}
				w.SetVec(i, w.AtVec(i)*d/o)
			}
		}

		if config.WeightCap > 0 {
			clipAndRescale(w, config.WeightCap, n)
		}

		record.Iterations = iter
		record.MaxResidual = residual

		if residual <= threshold {
			record.Converged = true
			return vecToSlice(w), record, nil
		}
	}

	return vecToSlice(w), record, nil
}

// clipAndRescale clips w to [1/cap, cap] and rescales so Σw == target.
func clipAndRescale(w *mat.VecDense, cap float64, target int) {
	n := w.Len()
	lower := 1 / cap
	for i := 0; i < n; i++ {
		v := w.AtVec(i)
		if v < lower {
			w.SetVec(i, lower)
		} else if v > cap {
			w.SetVec(i, cap)
		}
	}
	sum := vecSum(w)
	if sum == 0 {
		return
	}
	scale := float64(target) / sum
	for i := 0; i < n; i++ {
		w.SetVec(i, w.AtVec(i)*scale)
	}
}

func vecSum(w *mat.VecDense) float64 {
	sum := 0.0
	for i := 0; i < w.Len(); i++ {
		sum += w.AtVec(i)
	}
	return sum
}

func vecToSlice(w *mat.VecDense) []float64 {
	out := make([]float64, w.Len())
	for i := range out {
		out[i] = w.AtVec(i)
	}
	return out
}

// applyMinCategoryPolicy resolves §9's open question on min_category_count:
// categories with fewer observed rows than the threshold are either dropped
// from raking (their target share zeroed and redistributed over the
// surviving categories, and their rows excluded from this dimension's factor
// application so they keep their current weight instead of being driven
// toward zero) or left alone with a warning, per the scheme's declared
// MinCategoryPolicy.
func applyMinCategoryPolicy(dims []DimensionSolve, minCount int, policy types.MinCategoryPolicy, group string) ([]DimensionSolve, []string) {
	if minCount <= 0 {
		return dims, nil
	}

	var warnings []string
	out := make([]DimensionSolve, len(dims))
	for di, dim := range dims {
		counts := make([]int, dim.K)
		for _, code := range dim.Codes {
			counts[code]++
		}

		thin := make([]bool, dim.K)
		anyThin := false
		for k, c := range counts {
			if c > 0 && c < minCount {
				thin[k] = true
				anyThin = true
				warnings = append(warnings, fmt.Sprintf(
					"group %q: category %q of %q has observed count %d below min_category_count %d",
					group, categoryAt(dim, k), dim.Variable, c, minCount))
			}
		}

		if !anyThin || policy != types.MinCategoryDrop {
			out[di] = dim
			continue
		}

		shares := make([]float64, dim.K)
		copy(shares, dim.TargetShares)
		var droppedShare, survivorShare float64
		for k := range shares {
			if thin[k] {
				droppedShare += shares[k]
				shares[k] = 0
			} else {
				survivorShare += shares[k]
			}
		}
		if droppedShare > 0 && survivorShare > 0 {
			scale := 100 / survivorShare
			for k := range shares {
				if !thin[k] {
					shares[k] *= scale
				}
			}
		}

		codes := make([]int, len(dim.Codes))
		for i, code := range dim.Codes {
			if thin[code] {
				codes[i] = -1
			} else {
				codes[i] = code
			}
		}

		out[di] = DimensionSolve{
			Variable:     dim.Variable,
			Categories:   dim.Categories,
			Codes:        codes,
			K:            dim.K,
			TargetShares: shares,
		}
	}

	return out, warnings
}

func categoryAt(dim DimensionSolve, k int) string {
	if k >= 0 && k < len(dim.Categories) {
		return dim.Categories[k]
	}
	return ""
}
