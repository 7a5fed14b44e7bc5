// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package filter

import (
	"testing"

	"github.com/bitjungle/weightipy/pkg/types"
)

func sampleDataset(t *testing.T) *types.Dataset {
	t.Helper()
	ds := types.NewDataset(4)
	if err := ds.AddColumn(types.NewCategoricalColumn("region", []string{"A", "B", "A", "B"})); err != nil {
		t.Fatal(err)
	}
	if err := ds.AddColumn(types.NewNumericColumn("segment", []float64{1, 2, 1, 2})); err != nil {
		t.Fatal(err)
	}
	return ds
}

func TestDefaultEvaluator_NilDescriptorMatchesAllRows(t *testing.T) {
	ds := sampleDataset(t)
	rows, err := DefaultEvaluator{}.Apply(nil, ds)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 4 {
		t.Errorf("rows = %v, want all 4", rows)
	}
}

func TestDefaultEvaluator_ColumnEquals_StringColumn(t *testing.T) {
	ds := sampleDataset(t)
	rows, err := DefaultEvaluator{}.Apply(types.ColumnEquals{Column: "region", Value: "A"}, ds)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 || rows[0] != 0 || rows[1] != 2 {
		t.Errorf("rows = %v, want [0 2]", rows)
	}
}

func TestDefaultEvaluator_ColumnEquals_NumericColumnStringNormalized(t *testing.T) {
	ds := sampleDataset(t)
	rows, err := DefaultEvaluator{}.Apply(types.ColumnEquals{Column: "segment", Value: "1"}, ds)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 || rows[0] != 0 || rows[1] != 2 {
		t.Errorf("rows = %v, want [0 2]", rows)
	}
}

func TestDefaultEvaluator_MissingColumn(t *testing.T) {
	ds := sampleDataset(t)
	_, err := DefaultEvaluator{}.Apply(types.ColumnEquals{Column: "missing", Value: "A"}, ds)
	if err == nil {
		t.Fatal("expected an error for a missing column")
	}
}

func TestDefaultEvaluator_NoMatchesReturnsEmpty(t *testing.T) {
	ds := sampleDataset(t)
	rows, err := DefaultEvaluator{}.Apply(types.ColumnEquals{Column: "region", Value: "C"}, ds)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("rows = %v, want none", rows)
	}
}
