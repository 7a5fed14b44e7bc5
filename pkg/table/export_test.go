// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package table

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bitjungle/weightipy/pkg/types"
)

func exportDataset(t *testing.T) *types.Dataset {
	t.Helper()
	ds := types.NewDataset(2)
	if err := ds.AddColumn(types.NewCategoricalColumn("gender", []string{"M", "F"})); err != nil {
		t.Fatal(err)
	}
	if err := ds.AddColumn(types.NewNumericColumn("weight", []float64{1.25, 0.75})); err != nil {
		t.Fatal(err)
	}
	return ds
}

func TestWriteCSV_HeaderAndRows(t *testing.T) {
	ds := exportDataset(t)
	var buf bytes.Buffer
	if err := WriteCSV(&buf, ds); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected a header row plus 2 data rows, got %d lines: %q", len(lines), buf.String())
	}
	if lines[0] != "gender,weight" {
		t.Errorf("header = %q, want \"gender,weight\"", lines[0])
	}
	if lines[1] != "M,1.25" {
		t.Errorf("row 1 = %q, want \"M,1.25\"", lines[1])
	}
}

func TestWriteXLSX_ProducesReadableWorkbook(t *testing.T) {
	ds := exportDataset(t)
	path := filepath.Join(t.TempDir(), "out.xlsx")
	if err := WriteXLSX(path, ds); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected the workbook file to exist: %v", err)
	}
	if info.Size() == 0 {
		t.Error("expected a non-empty workbook file")
	}
}

func TestFormatFloat(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1, "1.0000"},
		{1.23456, "1.2346"},
		{0, "0.0000"},
	}
	for _, c := range cases {
		if got := FormatFloat(c.in); got != c.want {
			t.Errorf("FormatFloat(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}
