// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package core

import (
	"github.com/bitjungle/weightipy/pkg/types"
)

// Engine ties the scheme model, the filter evaluator, and the raking
// solver/composer together into the public operations named in §6. It holds
// no mutable state of its own beyond its evaluator dependency: the dataset
// is borrowed read-only and every solve allocates its own buffers (§5).
type Engine struct {
	Evaluator types.FilterEvaluator
}

// NewEngine builds an Engine around the given filter evaluator.
func NewEngine(evaluator types.FilterEvaluator) *Engine {
	return &Engine{Evaluator: evaluator}
}

// ValidateScheme runs the validator (§4.C8) against dataset. When raiseError
// is true, the first Error-severity issue is returned as an error.
func (e *Engine) ValidateScheme(dataset *types.Dataset, scheme *types.Scheme, raiseError bool) (*types.Report, error) {
	return Validate(dataset, scheme, e.Evaluator, raiseError)
}

// Weight runs the full weighting pipeline — per-group filter resolution,
// raking solve, and composition — and returns only the weight vector plus
// its result bookkeeping (§6's `weight` operation). It does not validate
// first; callers that want eager validation errors should call
// ValidateScheme themselves, or use WeightDataFrame which always does.
func (e *Engine) Weight(dataset *types.Dataset, scheme *types.Scheme) (*types.WeightResult, error) {
	results := make(map[string]*types.GroupResult, len(scheme.Groups))
	assigned := make(map[int]bool)

	for _, group := range scheme.Groups {
		rows, err := e.Evaluator.Apply(group.Filter, dataset)
		if err != nil {
			return nil, types.NewFilterErrorError(group.Name, err)
		}
		for _, row := range rows {
			assigned[row] = true
		}

		if len(rows) == 0 {
			results[group.Name] = &types.GroupResult{Group: group.Name}
			continue
		}

		dimSolves, common, err := buildDimensionSolves(dataset, group, scheme.Dimensions, rows)
		if err != nil {
			return nil, err
		}

		weights, record, err := Solve(len(common), dimSolves, scheme.Config, group.Name, nil)
		if err != nil {
			return nil, err
		}

		results[group.Name] = &types.GroupResult{
			Group:       group.Name,
			Rows:        common,
			Weights:     weights,
			Convergence: record,
		}
	}

	var unassigned []int
	for row := 0; row < dataset.Len(); row++ {
		if !assigned[row] {
			unassigned = append(unassigned, row)
		}
	}

	return Compose(dataset.Len(), scheme, results, unassigned), nil
}

// WeightDataFrame runs ValidateScheme (raising on the first Error), then
// Weight, and returns a new dataset carrying the weight vector under
// weightColumn — the caller's dataset is never mutated (§9's resolution of
// the non-mutating-normalization open question; grounded on the original
// source's weight_dataframe, which adds a synthetic identity column,
// engine-solves, then renames weights_<scheme> to the caller's column name).
func (e *Engine) WeightDataFrame(dataset *types.Dataset, scheme *types.Scheme, weightColumn string) (*types.Dataset, *types.WeightResult, error) {
	if weightColumn == "" {
		weightColumn = "weights"
	}

	if _, err := e.ValidateScheme(dataset, scheme, true); err != nil {
		return nil, nil, err
	}

	result, err := e.Weight(dataset, scheme)
	if err != nil {
		return nil, nil, err
	}

	out, err := dataset.WithColumn(types.NewNumericColumn(weightColumn, result.Weights))
	if err != nil {
		return nil, nil, err
	}

	return out, result, nil
}

// buildDimensionSolves builds one DimensionSolve per scheme dimension over a
// group's filtered row set, then restricts every dimension to the common
// row subset whose value is in-scheme for every dimension (§4.C1: rows with
// an out-of-scheme category "do not appear" in a dimension's coding; the
// solver requires all dimensions to share the same row count).
func buildDimensionSolves(dataset *types.Dataset, group *types.Group, dims []string, rows []int) ([]DimensionSolve, []int, error) {
	indices := make(map[string]*CategoricalIndex, len(dims))
	for _, dim := range dims {
		target, ok := group.TargetFor(dim)
		if !ok {
			return nil, nil, types.NewInvalidSchemeError("group " + group.Name + " has no target for dimension " + dim)
		}
		col, ok := dataset.Column(dim)
		if !ok {
			return nil, nil, types.NewMissingColumnError(group.Name, dim)
		}
		idx, err := BuildCategoricalIndex(group.Name, col, rows, target.Categories())
		if err != nil {
			return nil, nil, err
		}
		indices[dim] = idx
	}

	rowCount := make(map[int]int, len(rows))
	for _, idx := range indices {
		for _, row := range idx.Rows {
			rowCount[row]++
		}
	}
	var common []int
	for _, row := range rows {
		if rowCount[row] == len(dims) {
			common = append(common, row)
		}
	}

	dimSolves := make([]DimensionSolve, 0, len(dims))
	for _, dim := range dims {
		target, _ := group.TargetFor(dim)
		idx := indices[dim]
		codeOf := make(map[int]int, len(idx.Rows))
		for i, row := range idx.Rows {
			codeOf[row] = idx.Codes[i]
		}
		codes := make([]int, len(common))
		for i, row := range common {
			codes[i] = codeOf[row]
		}
		categories := target.Categories()
		shares := make([]float64, len(categories))
		for i, cat := range categories {
			s, _ := target.Share(cat)
			shares[i] = s
		}
		dimSolves = append(dimSolves, DimensionSolve{
			Variable:     dim,
			Categories:   categories,
			Codes:        codes,
			K:            len(categories),
			TargetShares: shares,
		})
	}

	return dimSolves, common, nil
}
