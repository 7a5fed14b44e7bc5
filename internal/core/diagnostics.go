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

// Diagnostics is a post-solve summary of a final weight vector, supplementing
// the §4.C9 efficiency scalar with the design effect and effective sample
// size a survey statistician typically reports alongside it.
type Diagnostics struct {
	Mean         float64
	Variance     float64
	Efficiency   float64 // Kish efficiency, (0, 100]
	DesignEffect float64 // Kish's deff = 100 / Efficiency
	EffectiveN   float64 // N / DesignEffect
}

// ComputeDiagnostics summarizes a final weight vector of length N.
func ComputeDiagnostics(weights []float64) (*Diagnostics, error) {
	n := len(weights)
	if n == 0 {
		return nil, fmt.Errorf("diagnostics: empty weight vector")
	}

	eff, err := Efficiency(weights)
	if err != nil {
		return nil, err
	}

	mean := stat.Mean(weights, nil)
	var variance float64
	if n > 1 {
		variance = stat.Variance(weights, nil)
	}

	deff := 0.0
	if eff > 0 {
		deff = 100 / eff
	}

	return &Diagnostics{
		Mean:         mean,
		Variance:     variance,
		Efficiency:   eff,
		DesignEffect: deff,
		EffectiveN:   float64(n) / deff,
	}, nil
}
