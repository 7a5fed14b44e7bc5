// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package core

import (
	"testing"

	"github.com/bitjungle/weightipy/pkg/testutil"
)

func TestEfficiency_EqualWeightsIsHundred(t *testing.T) {
	eff, err := Efficiency([]float64{1, 1, 1, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertAlmostEqual(t, 100, eff, 1e-9, "equal weights efficiency")
}

func TestEfficiency_Scenario2Value(t *testing.T) {
	// §8 scenario 2: w = [2/3, 2/3, 2/3, 2] -> efficiency 75.
	eff, err := Efficiency([]float64{2.0 / 3, 2.0 / 3, 2.0 / 3, 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertAlmostEqual(t, 75, eff, 1e-9, "scenario 2 efficiency")
}

func TestEfficiency_EmptyVectorIsError(t *testing.T) {
	_, err := Efficiency(nil)
	if err == nil {
		t.Fatal("expected an error for an empty weight vector")
	}
}

func TestEfficiency_SingleWeightIsHundred(t *testing.T) {
	eff, err := Efficiency([]float64{3.7})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertAlmostEqual(t, 100, eff, 1e-9, "single-weight efficiency")
}

func TestEfficiency_MatchesDirectFormula(t *testing.T) {
	weights := []float64{0.5, 1.5, 1.0, 2.0, 0.8}
	got, err := Efficiency(weights)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var sum, sumSq float64
	for _, w := range weights {
		sum += w
		sumSq += w * w
	}
	n := float64(len(weights))
	want := (sum * sum) / (n * sumSq) * 100

	testutil.AssertAlmostEqual(t, want, got, 1e-9, "efficiency matches the direct (Σw)²/(N·Σw²) formula")
}
