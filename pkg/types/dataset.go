// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package types

import (
	"fmt"
	"math"
)

// Matrix is a row-major 2D slice of numerical data, kept for compatibility
// with ingestion and test helpers that hand around dense numeric blocks.
type Matrix [][]float64

// ColumnKind distinguishes how a Column's values should be interpreted.
type ColumnKind int

const (
	// ColumnCategorical marks a column whose values are discrete categories.
	ColumnCategorical ColumnKind = iota
	// ColumnNumeric marks a column of floating point values.
	ColumnNumeric
)

// String renders a ColumnKind for diagnostics.
func (k ColumnKind) String() string {
	switch k {
	case ColumnCategorical:
		return "categorical"
	case ColumnNumeric:
		return "numeric"
	default:
		return "unknown"
	}
}

// Column is a named, typed vector of length N. A categorical column stores
// its values as strings (numeric category keys are stringified on ingestion
// so that categorical equality is always a string comparison); a numeric
// column stores float64 values and may contain NaN outside weighting
// dimensions.
type Column struct {
	Name   string
	Kind   ColumnKind
	Strs   []string  // valid when Kind == ColumnCategorical
	Floats []float64 // valid when Kind == ColumnNumeric
}

// Len returns the number of rows in the column.
func (c *Column) Len() int {
	switch c.Kind {
	case ColumnCategorical:
		return len(c.Strs)
	default:
		return len(c.Floats)
	}
}

// StringAt returns the row's value normalized to its string form regardless
// of the column's underlying kind, so categorical comparisons never care
// whether a key arrived as `1`, `1.0`, or `"1"`. See NormalizeCategoryKey.
func (c *Column) StringAt(row int) string {
	if c.Kind == ColumnCategorical {
		return c.Strs[row]
	}
	return NormalizeCategoryKey(c.Floats[row])
}

// IsNaNAt reports whether the row's value is NaN. Only meaningful for
// numeric columns; categorical columns never report NaN.
func (c *Column) IsNaNAt(row int) bool {
	if c.Kind != ColumnNumeric {
		return false
	}
	return math.IsNaN(c.Floats[row])
}

// NewCategoricalColumn builds a categorical Column from string values.
func NewCategoricalColumn(name string, values []string) *Column {
	return &Column{Name: name, Kind: ColumnCategorical, Strs: values}
}

// NewNumericColumn builds a numeric Column from float64 values.
func NewNumericColumn(name string, values []float64) *Column {
	return &Column{Name: name, Kind: ColumnNumeric, Floats: values}
}

// Dataset is the in-memory, read-only columnar table the engine consumes.
// It is borrowed by the solver and never mutated in place; WithColumn
// returns a new Dataset carrying an additional column.
type Dataset struct {
	rows    int
	order   []string
	columns map[string]*Column
}

// NewDataset creates an empty Dataset with the given row count.
func NewDataset(rows int) *Dataset {
	return &Dataset{
		rows:    rows,
		columns: make(map[string]*Column),
	}
}

// Len returns the number of rows in the dataset.
func (d *Dataset) Len() int {
	return d.rows
}

// ColumnNames returns column names in insertion order.
func (d *Dataset) ColumnNames() []string {
	names := make([]string, len(d.order))
	copy(names, d.order)
	return names
}

// Column returns the named column and whether it exists.
func (d *Dataset) Column(name string) (*Column, bool) {
	c, ok := d.columns[name]
	return c, ok
}

// HasColumn reports whether the dataset carries a column with the given name.
func (d *Dataset) HasColumn(name string) bool {
	_, ok := d.columns[name]
	return ok
}

// AddColumn adds a column to the dataset. It fails if the column's length
// does not match the dataset's row count or the name is already present.
func (d *Dataset) AddColumn(c *Column) error {
	if c.Len() != d.rows {
		return fmt.Errorf("column %q has length %d, dataset has %d rows", c.Name, c.Len(), d.rows)
	}
	if _, exists := d.columns[c.Name]; exists {
		return fmt.Errorf("column %q already present", c.Name)
	}
	d.columns[c.Name] = c
	d.order = append(d.order, c.Name)
	return nil
}

// WithColumn returns a new Dataset equal to d plus the given column (or with
// an existing column of the same name replaced), without mutating d. This is
// how the engine attaches its output weight column to a caller's dataset.
func (d *Dataset) WithColumn(c *Column) (*Dataset, error) {
	if c.Len() != d.rows {
		return nil, fmt.Errorf("column %q has length %d, dataset has %d rows", c.Name, c.Len(), d.rows)
	}
	out := &Dataset{rows: d.rows, columns: make(map[string]*Column, len(d.columns)+1)}
	_, replaces := d.columns[c.Name]
	for _, name := range d.order {
		if name == c.Name {
			continue
		}
		out.columns[name] = d.columns[name]
		out.order = append(out.order, name)
	}
	out.columns[c.Name] = c
	if !replaces {
		out.order = append(out.order, c.Name)
	} else {
		// preserve the original position of a replaced column
		newOrder := make([]string, 0, len(d.order))
		for _, name := range d.order {
			newOrder = append(newOrder, name)
		}
		out.order = newOrder
	}
	return out, nil
}

// NormalizeCategoryKey renders a numeric category key the same way for every
// representation a scheme or dataset might carry it in: integral floats drop
// their trailing ".0" so a data value `1.0` collides with a scheme key `"1"`.
func NormalizeCategoryKey(v float64) string {
	if v == math.Trunc(v) && !math.IsInf(v, 0) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%g", v)
}
