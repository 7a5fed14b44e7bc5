// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package core

import (
	"github.com/bitjungle/weightipy/pkg/types"
)

// Compose combines independent per-group weight vectors into the
// full-length output vector (§4.C7). Each group's raw weights (which sum to
// its own row count after the raking solve) are rescaled so that the
// group's share of the grand total matches its declared GlobalWeight. Rows
// not assigned to any group receive weight 1 and are listed in Unassigned.
func Compose(datasetLen int, scheme *types.Scheme, results map[string]*types.GroupResult, unassigned []int) *types.WeightResult {
	out := make([]float64, datasetLen)
	for _, row := range unassigned {
		out[row] = 1
	}

	var shareTotal float64
	var assignedTotal int
	for _, g := range scheme.Groups {
		result, ok := results[g.Name]
		if !ok {
			continue
		}
		shareTotal += g.GlobalWeight
		assignedTotal += len(result.Rows)
	}

	allConverged := true
	for _, g := range scheme.Groups {
		result, ok := results[g.Name]
		if !ok {
			continue
		}
		if !result.Convergence.Converged {
			allConverged = false
		}

		nG := len(result.Rows)
		if nG == 0 || shareTotal == 0 {
			continue
		}

		scale := (g.GlobalWeight * float64(assignedTotal) / shareTotal) / float64(nG)
		for i, row := range result.Rows {
			out[row] = result.Weights[i] * scale
		}
	}

	return &types.WeightResult{
		Scheme:     scheme,
		Weights:    out,
		Groups:     results,
		Unassigned: unassigned,
		Converged:  allConverged,
	}
}
