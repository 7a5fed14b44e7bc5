// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package core

import (
	"sort"

	"github.com/bitjungle/weightipy/pkg/types"
)

// NewFlatScheme builds a flat Scheme: one group named types.GlobalGroupName,
// spanning every row, with one Target per entry of dimTargets and a global
// weight of 100 (§4.C3).
func NewFlatScheme(name string, dimTargets map[string]map[string]float64, config types.SolverConfig) (*types.Scheme, error) {
	dims := sortedKeys(dimTargets)

	targets := make([]*types.Target, 0, len(dims))
	for _, dim := range dims {
		t, err := types.NewTarget(dim, dimTargets[dim], sortedKeys(dimTargets[dim]))
		if err != nil {
			return nil, err
		}
		targets = append(targets, t)
	}

	group := &types.Group{
		Name:         types.GlobalGroupName,
		Filter:       nil,
		Targets:      targets,
		GlobalWeight: 100,
	}

	return &types.Scheme{
		Name:       name,
		Groups:     []*types.Group{group},
		Dimensions: dims,
		Config:     config,
	}, nil
}

// NewSegmentedScheme builds a segmented Scheme: one group per key of
// segmentTargets, filtered on `segmentColumn == key`, with a global weight
// equal to the key's normalized share of segmentTargets and a Target list
// drawn from segments[key] (§4.C3). Every segment's dimension set must match
// the first segment's, or SegmentMismatch is raised.
func NewSegmentedScheme(name, segmentColumn string, segmentTargets map[string]float64, segments map[string]map[string]map[string]float64, config types.SolverConfig) (*types.Scheme, error) {
	var segmentTotal float64
	for _, v := range segmentTargets {
		segmentTotal += v
	}
	if segmentTotal <= 0 {
		return nil, types.NewZeroTotalError("", segmentColumn)
	}

	keys := sortedKeys(segmentTargets)

	var dims []string
	groups := make([]*types.Group, 0, len(keys))

	for i, key := range keys {
		segDims := sortedKeys(segments[key])
		if i == 0 {
			dims = segDims
		} else if !sameStringSet(dims, segDims) {
			return nil, types.NewSegmentMismatchError("segments disagree on their weighting dimensions", keys)
		}

		targets := make([]*types.Target, 0, len(segDims))
		for _, dim := range segDims {
			t, err := types.NewTarget(dim, segments[key][dim], sortedKeys(segments[key][dim]))
			if err != nil {
				return nil, err
			}
			targets = append(targets, t)
		}

		groups = append(groups, &types.Group{
			Name:         key,
			Filter:       types.ColumnEquals{Column: segmentColumn, Value: key},
			Targets:      targets,
			GlobalWeight: segmentTargets[key] / segmentTotal * 100,
		})
	}

	if err := requireUniqueGroupNames(groups); err != nil {
		return nil, err
	}

	return &types.Scheme{
		Name:       name,
		Groups:     groups,
		Dimensions: dims,
		Config:     config,
	}, nil
}

func requireUniqueGroupNames(groups []*types.Group) error {
	seen := make(map[string]bool, len(groups))
	for _, g := range groups {
		if seen[g.Name] {
			return types.NewInvalidSchemeError("duplicate group name: " + g.Name)
		}
		seen[g.Name] = true
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sameStringSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[string]bool, len(a))
	for _, v := range a {
		set[v] = true
	}
	for _, v := range b {
		if !set[v] {
			return false
		}
	}
	return true
}
