// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package core

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Efficiency computes the Kish-style weighting efficiency of a final weight
// vector: (Σw)² / (N·Σw²) · 100 (§4.C9), range (0, 100], equal to 100 iff
// all weights are equal.
//
// The original Python source computes this as (Σw)²/N / Σ(w²)·100, which is
// algebraically identical; this implementation instead expresses Σw and Σw²
// via gonum/stat's mean and sample variance (Σw = N·mean, and
// Σw² = variance·(N-1) + N·mean², since sample variance is
// Σ(w-mean)²/(N-1)), so the computation is grounded on the same stat
// primitives used elsewhere in this codebase rather than a hand-rolled sum.
func Efficiency(weights []float64) (float64, error) {
	n := len(weights)
	if n == 0 {
		return 0, fmt.Errorf("efficiency: empty weight vector")
	}
	if n == 1 {
		return 100, nil
	}

	mean := stat.Mean(weights, nil)
	if mean == 0 {
		return 0, fmt.Errorf("efficiency: weights sum to zero")
	}
	variance := stat.Variance(weights, nil)

	sumSquares := variance*float64(n-1) + float64(n)*mean*mean
	numerator := float64(n) * mean * mean

	return numerator / sumSquares * 100, nil
}
