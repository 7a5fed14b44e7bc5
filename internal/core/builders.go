// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package core

import (
	"fmt"

	"github.com/bitjungle/weightipy/pkg/types"
)

// SchemeFromDict builds a Scheme from the §6 dictionary exchange format: a
// flat mapping of dimension to category distribution, or a segmented
// mapping carrying segment_by/segment_targets/segments. Malformed shapes
// raise InvalidScheme.
func SchemeFromDict(dist map[string]interface{}, name string, config types.SolverConfig) (*types.Scheme, error) {
	if _, segmented := dist["segment_by"]; segmented {
		return schemeFromSegmentedDict(dist, name, config)
	}
	return schemeFromFlatDict(dist, name, config)
}

func schemeFromFlatDict(dist map[string]interface{}, name string, config types.SolverConfig) (*types.Scheme, error) {
	dimTargets := make(map[string]map[string]float64, len(dist))
	for dim, raw := range dist {
		dist, err := asNumberMap(raw)
		if err != nil {
			return nil, types.NewInvalidSchemeError(fmt.Sprintf("dimension %q: %v", dim, err))
		}
		dimTargets[dim] = dist
	}
	return NewFlatScheme(name, dimTargets, config)
}

func schemeFromSegmentedDict(dist map[string]interface{}, name string, config types.SolverConfig) (*types.Scheme, error) {
	segmentByRaw, ok := dist["segment_by"]
	if !ok {
		return nil, types.NewInvalidSchemeError("segmented scheme missing segment_by")
	}
	segmentBy, ok := segmentByRaw.(string)
	if !ok {
		return nil, types.NewInvalidSchemeError("segment_by must be a string")
	}

	segmentTargetsRaw, ok := dist["segment_targets"]
	if !ok {
		return nil, types.NewInvalidSchemeError("segmented scheme missing segment_targets")
	}
	segmentTargets, err := asNumberMap(segmentTargetsRaw)
	if err != nil {
		return nil, types.NewInvalidSchemeError("segment_targets: " + err.Error())
	}

	segmentsRaw, ok := dist["segments"]
	if !ok {
		return nil, types.NewInvalidSchemeError("segmented scheme missing segments")
	}
	segmentsMap, ok := segmentsRaw.(map[string]interface{})
	if !ok {
		return nil, types.NewInvalidSchemeError("segments must be an object")
	}

	segments := make(map[string]map[string]map[string]float64, len(segmentsMap))
	for segKey, rawDimMap := range segmentsMap {
		dimMap, ok := rawDimMap.(map[string]interface{})
		if !ok {
			return nil, types.NewInvalidSchemeError(fmt.Sprintf("segment %q must be an object", segKey))
		}
		dims := make(map[string]map[string]float64, len(dimMap))
		for dim, rawDist := range dimMap {
			dist, err := asNumberMap(rawDist)
			if err != nil {
				return nil, types.NewInvalidSchemeError(fmt.Sprintf("segment %q dimension %q: %v", segKey, dim, err))
			}
			dims[dim] = dist
		}
		segments[segKey] = dims
	}

	return NewSegmentedScheme(name, segmentBy, segmentTargets, segments, config)
}

// asNumberMap coerces a decoded JSON value (map[string]interface{} with
// numeric values) into a map[string]float64. String values, even numeric
// ones, are rejected.
func asNumberMap(raw interface{}) (map[string]float64, error) {
	m, ok := raw.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("expected an object, got %T", raw)
	}
	out := make(map[string]float64, len(m))
	for k, v := range m {
		switch n := v.(type) {
		case float64:
			out[k] = n
		case int:
			out[k] = float64(n)
		default:
			return nil, fmt.Errorf("category %q: expected a number, got %T", k, v)
		}
	}
	return out, nil
}

// SchemeFromDataFrame builds a Scheme from a microdata table: one row per
// respondent, a frequency column, and one column per weighting dimension.
// For each dimension, targets are Σ(freq) grouped by observed category; when
// colFilter names a segmentation column, the same aggregation runs per
// segment and each segment's global weight is its Σ(freq) (§4.C4).
func SchemeFromDataFrame(dataset *types.Dataset, name string, colsWeighting []string, colFreq string, colFilter string, config types.SolverConfig) (*types.Scheme, error) {
	freqCol, ok := dataset.Column(colFreq)
	if !ok {
		return nil, types.NewMissingColumnError("", colFreq)
	}

	if colFilter == "" {
		dimTargets := make(map[string]map[string]float64, len(colsWeighting))
		for _, dim := range colsWeighting {
			col, ok := dataset.Column(dim)
			if !ok {
				return nil, types.NewMissingColumnError("", dim)
			}
			dimTargets[dim] = aggregateByCategory(col, freqCol, allRows(dataset.Len()))
		}
		return NewFlatScheme(name, dimTargets, config)
	}

	segCol, ok := dataset.Column(colFilter)
	if !ok {
		return nil, types.NewMissingColumnError("", colFilter)
	}

	segmentTargets := make(map[string]float64)
	segments := make(map[string]map[string]map[string]float64)

	segRows := groupRowsByCategory(segCol, allRows(dataset.Len()))
	for segKey, rows := range segRows {
		var total float64
		for _, row := range rows {
			total += freqCol.Floats[row]
		}
		segmentTargets[segKey] = total

		dims := make(map[string]map[string]float64, len(colsWeighting))
		for _, dim := range colsWeighting {
			col, ok := dataset.Column(dim)
			if !ok {
				return nil, types.NewMissingColumnError(segKey, dim)
			}
			dims[dim] = aggregateByCategory(col, freqCol, rows)
		}
		segments[segKey] = dims
	}

	return NewSegmentedScheme(name, colFilter, segmentTargets, segments, config)
}

// SchemeFromLongDF builds a Scheme from a long/tidy aggregate table with
// columns (variable, category, value[, filter]). Rows are pivoted: grouped
// by variable to build each Target, and (when colFilter is given) grouped by
// filter value to build segments, whose global weight is the Σ(value) of the
// first variable observed in that segment. This presumes every variable
// within a segment shares the same total; the builder does not check that
// precondition.
func SchemeFromLongDF(dataset *types.Dataset, name string, colVariable, colCategory, colValue, colFilter string, config types.SolverConfig) (*types.Scheme, error) {
	varCol, ok := dataset.Column(colVariable)
	if !ok {
		return nil, types.NewMissingColumnError("", colVariable)
	}
	catCol, ok := dataset.Column(colCategory)
	if !ok {
		return nil, types.NewMissingColumnError("", colCategory)
	}
	valCol, ok := dataset.Column(colValue)
	if !ok {
		return nil, types.NewMissingColumnError("", colValue)
	}

	buildDims := func(rows []int) map[string]map[string]float64 {
		dims := make(map[string]map[string]float64)
		for _, row := range rows {
			variable := varCol.StringAt(row)
			category := catCol.StringAt(row)
			if dims[variable] == nil {
				dims[variable] = make(map[string]float64)
			}
			dims[variable][category] += valCol.Floats[row]
		}
		return dims
	}

	if colFilter == "" {
		dims := buildDims(allRows(dataset.Len()))
		return NewFlatScheme(name, dims, config)
	}

	filterCol, ok := dataset.Column(colFilter)
	if !ok {
		return nil, types.NewMissingColumnError("", colFilter)
	}

	segRows := groupRowsByCategory(filterCol, allRows(dataset.Len()))
	segmentTargets := make(map[string]float64, len(segRows))
	segments := make(map[string]map[string]map[string]float64, len(segRows))

	for segKey, rows := range segRows {
		dims := buildDims(rows)
		segments[segKey] = dims

		var firstVariable string
		for _, row := range rows {
			firstVariable = varCol.StringAt(row)
			break
		}
		var total float64
		for _, row := range rows {
			if varCol.StringAt(row) == firstVariable {
				total += valCol.Floats[row]
			}
		}
		segmentTargets[segKey] = total
	}

	return NewSegmentedScheme(name, colFilter, segmentTargets, segments, config)
}

func allRows(n int) []int {
	rows := make([]int, n)
	for i := range rows {
		rows[i] = i
	}
	return rows
}

func aggregateByCategory(col, freqCol *types.Column, rows []int) map[string]float64 {
	out := make(map[string]float64)
	for _, row := range rows {
		out[col.StringAt(row)] += freqCol.Floats[row]
	}
	return out
}

func groupRowsByCategory(col *types.Column, rows []int) map[string][]int {
	out := make(map[string][]int)
	for _, row := range rows {
		key := col.StringAt(row)
		out[key] = append(out[key], row)
	}
	return out
}
