// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package core

import (
	"github.com/bitjungle/weightipy/pkg/types"
)

// Validate compares a Scheme against a dataset and returns a structured
// issue report (§4.C8). When raiseError is true, the first Error-severity
// issue is returned as an error immediately; otherwise Validate always
// returns the full report with a nil error.
func Validate(dataset *types.Dataset, scheme *types.Scheme, evaluator types.FilterEvaluator, raiseError bool) (*types.Report, error) {
	report := &types.Report{}

	for _, group := range scheme.Groups {
		rows, err := resolveFilterRows(dataset, group, evaluator, report)
		if err != nil {
			if raiseError {
				return report, err
			}
			continue
		}

		if len(rows) == 0 {
			report.Add(group.Name, "", types.IssueEmptyGroup, "filter matched zero rows")
			continue // EmptyGroup is a Warning; an empty group has no rows to check targets against
		}

		for _, dim := range scheme.Dimensions {
			target, ok := group.TargetFor(dim)
			if !ok {
				continue
			}

			col, ok := dataset.Column(dim)
			if !ok {
				report.Add(group.Name, dim, types.IssueMissingColumn, "column not found in dataset")
				if raiseError {
					return report, types.NewMissingColumnError(group.Name, dim)
				}
				continue
			}

			if target.Sum() == 0 {
				report.Add(group.Name, dim, types.IssueZeroTotal, "target sums to zero")
				if raiseError {
					return report, types.NewZeroTotalError(group.Name, dim)
				}
				continue
			}

			nanCount := 0
			observed := make(map[string]bool)
			for _, row := range rows {
				if col.IsNaNAt(row) {
					nanCount++
					continue
				}
				observed[col.StringAt(row)] = true
			}
			if nanCount > 0 {
				report.Add(group.Name, dim, types.IssueNaNValues, "column contains NaN within group")
				if raiseError {
					return report, types.NewNaNValuesError(group.Name, dim, nanCount)
				}
			}

			for _, cat := range target.Categories() {
				share, _ := target.Share(cat)
				if share > 0 && !observed[cat] {
					report.Add(group.Name, dim, types.IssueMissingInData, cat)
					if raiseError {
						return report, types.NewMissingInDataError(group.Name, dim, cat)
					}
				}
			}

			for cat := range observed {
				if _, ok := target.Share(cat); !ok {
					report.Add(group.Name, dim, types.IssueMissingInScheme, cat)
				}
			}
		}
	}

	return report, nil
}

func resolveFilterRows(dataset *types.Dataset, group *types.Group, evaluator types.FilterEvaluator, report *types.Report) ([]int, error) {
	rows, err := evaluator.Apply(group.Filter, dataset)
	if err != nil {
		report.Add(group.Name, "", types.IssueFilterError, err.Error())
		return nil, types.NewFilterErrorError(group.Name, err)
	}
	return rows, nil
}
