// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package core

import (
	"testing"

	"github.com/bitjungle/weightipy/pkg/types"
)

func TestSchemeFromDict_Flat(t *testing.T) {
	dist := map[string]interface{}{
		"gender": map[string]interface{}{"M": 50.0, "F": 50.0},
	}
	s, err := SchemeFromDict(dist, "s", types.DefaultSolverConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Groups) != 1 || s.Groups[0].Name != types.GlobalGroupName {
		t.Fatalf("expected a single global group, got %+v", s.Groups)
	}
}

func TestSchemeFromDict_Segmented(t *testing.T) {
	dist := map[string]interface{}{
		"segment_by":      "region",
		"segment_targets": map[string]interface{}{"A": 50.0, "B": 50.0},
		"segments": map[string]interface{}{
			"A": map[string]interface{}{"gender": map[string]interface{}{"M": 50.0, "F": 50.0}},
			"B": map[string]interface{}{"gender": map[string]interface{}{"M": 40.0, "F": 60.0}},
		},
	}
	s, err := SchemeFromDict(dist, "s", types.DefaultSolverConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(s.Groups))
	}
}

func TestSchemeFromDict_MalformedSegmentedShape(t *testing.T) {
	dist := map[string]interface{}{
		"segment_by": "region",
		// missing segment_targets and segments
	}
	_, err := SchemeFromDict(dist, "s", types.DefaultSolverConfig())
	if err == nil {
		t.Fatal("expected an InvalidScheme error")
	}
	we, ok := err.(*types.WeightError)
	if !ok || we.Type != types.ErrInvalidScheme {
		t.Errorf("expected ErrInvalidScheme, got %v", err)
	}
}

func microdataset(t *testing.T) *types.Dataset {
	t.Helper()
	ds := types.NewDataset(4)
	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	must(ds.AddColumn(types.NewCategoricalColumn("gender", []string{"M", "M", "F", "F"})))
	must(ds.AddColumn(types.NewCategoricalColumn("region", []string{"A", "B", "A", "B"})))
	must(ds.AddColumn(types.NewNumericColumn("freq", []float64{1, 2, 3, 4})))
	return ds
}

func TestSchemeFromDataFrame_Flat(t *testing.T) {
	ds := microdataset(t)
	s, err := SchemeFromDataFrame(ds, "s", []string{"gender"}, "freq", "", types.DefaultSolverConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	target, ok := s.Groups[0].TargetFor("gender")
	if !ok {
		t.Fatal("expected a gender target")
	}
	// M: freq 1+2=3, F: freq 3+4=7, total 10 -> 30/70
	share, _ := target.Share("M")
	if share < 29.999 || share > 30.001 {
		t.Errorf("M share = %v, want 30", share)
	}
}

func TestSchemeFromDataFrame_Segmented(t *testing.T) {
	ds := microdataset(t)
	s, err := SchemeFromDataFrame(ds, "s", []string{"gender"}, "freq", "region", types.DefaultSolverConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(s.Groups))
	}
	a, ok := s.GroupByName("A")
	if !ok {
		t.Fatal("expected group A")
	}
	// region A rows: gender M freq1, gender F freq3 -> segment total 4
	if a.GlobalWeight < 39.999 || a.GlobalWeight > 40.001 {
		t.Errorf("group A share = %v, want 40 (4 of 10)", a.GlobalWeight)
	}
}

func TestSchemeFromDataFrame_MissingColumn(t *testing.T) {
	ds := microdataset(t)
	_, err := SchemeFromDataFrame(ds, "s", []string{"missing"}, "freq", "", types.DefaultSolverConfig())
	if err == nil {
		t.Fatal("expected a MissingColumn error")
	}
	we, ok := err.(*types.WeightError)
	if !ok || we.Type != types.ErrMissingColumn {
		t.Errorf("expected ErrMissingColumn, got %v", err)
	}
}

func longDataset(t *testing.T) *types.Dataset {
	t.Helper()
	ds := types.NewDataset(4)
	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	must(ds.AddColumn(types.NewCategoricalColumn("variable", []string{"gender", "gender", "gender", "gender"})))
	must(ds.AddColumn(types.NewCategoricalColumn("category", []string{"M", "F", "M", "F"})))
	must(ds.AddColumn(types.NewNumericColumn("value", []float64{30, 70, 40, 60})))
	must(ds.AddColumn(types.NewCategoricalColumn("region", []string{"A", "A", "B", "B"})))
	return ds
}

func TestSchemeFromLongDF_Flat(t *testing.T) {
	ds := types.NewDataset(2)
	if err := ds.AddColumn(types.NewCategoricalColumn("variable", []string{"gender", "gender"})); err != nil {
		t.Fatal(err)
	}
	if err := ds.AddColumn(types.NewCategoricalColumn("category", []string{"M", "F"})); err != nil {
		t.Fatal(err)
	}
	if err := ds.AddColumn(types.NewNumericColumn("value", []float64{48, 52})); err != nil {
		t.Fatal(err)
	}
	s, err := SchemeFromLongDF(ds, "s", "variable", "category", "value", "", types.DefaultSolverConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	target, ok := s.Groups[0].TargetFor("gender")
	if !ok {
		t.Fatal("expected a gender target")
	}
	share, _ := target.Share("M")
	if share < 47.999 || share > 48.001 {
		t.Errorf("M share = %v, want 48", share)
	}
}

func TestSchemeFromLongDF_Segmented(t *testing.T) {
	ds := longDataset(t)
	s, err := SchemeFromLongDF(ds, "s", "variable", "category", "value", "region", types.DefaultSolverConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(s.Groups))
	}
	a, ok := s.GroupByName("A")
	if !ok {
		t.Fatal("expected group A")
	}
	// region A: gender M=30,F=70, first-variable total = 100
	if a.GlobalWeight < 49.999 || a.GlobalWeight > 50.001 {
		t.Errorf("group A share = %v, want 50 (100 of 200)", a.GlobalWeight)
	}
}

func TestSchemeFromLongDF_MissingColumn(t *testing.T) {
	ds := longDataset(t)
	_, err := SchemeFromLongDF(ds, "s", "missing", "category", "value", "", types.DefaultSolverConfig())
	if err == nil {
		t.Fatal("expected a MissingColumn error")
	}
}
