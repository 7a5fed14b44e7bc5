// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package types

import (
	"fmt"
)

// ErrorType represents categories of errors the weighting engine can raise.
type ErrorType string

const (
	// ErrZeroTotal indicates a target dimension sums to zero.
	ErrZeroTotal ErrorType = "zero_total"
	// ErrSegmentMismatch indicates segments of a scheme disagree on their dimension set.
	ErrSegmentMismatch ErrorType = "segment_mismatch"
	// ErrMissingColumn indicates the scheme references a column absent from the dataset.
	ErrMissingColumn ErrorType = "missing_column"
	// ErrNaNValues indicates a weighting column contains NaN within a group.
	ErrNaNValues ErrorType = "nan_values"
	// ErrMissingInData indicates a scheme category with target > 0 has no observations.
	ErrMissingInData ErrorType = "missing_in_data"
	// ErrFilterError indicates the filter evaluator rejected a descriptor.
	ErrFilterError ErrorType = "filter_error"
	// ErrInvalidScheme indicates a structurally malformed scheme definition.
	ErrInvalidScheme ErrorType = "invalid_scheme"
	// ErrEmptyCellWithNonzeroTarget indicates a raking cell has zero observed weight
	// but a nonzero target; this is fatal for the affected group.
	ErrEmptyCellWithNonzeroTarget ErrorType = "empty_cell_with_nonzero_target"
)

// WeightError represents a structured error raised by the weighting engine.
type WeightError struct {
	Type    ErrorType
	Message string
	Context map[string]interface{}
	Cause   error
}

// Error implements the error interface.
func (e *WeightError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s error: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s error: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause.
func (e *WeightError) Unwrap() error {
	return e.Cause
}

// NewZeroTotalError creates an error for a target dimension summing to zero.
func NewZeroTotalError(group, variable string) *WeightError {
	return &WeightError{
		Type:    ErrZeroTotal,
		Message: fmt.Sprintf("target for %q sums to zero", variable),
		Context: map[string]interface{}{
			"group":    group,
			"variable": variable,
		},
	}
}

// NewSegmentMismatchError creates an error for segments with differing dimension sets.
func NewSegmentMismatchError(message string, segments []string) *WeightError {
	return &WeightError{
		Type:    ErrSegmentMismatch,
		Message: message,
		Context: map[string]interface{}{
			"segments": segments,
		},
	}
}

// NewMissingColumnError creates an error for a scheme column absent from the dataset.
func NewMissingColumnError(group, variable string) *WeightError {
	return &WeightError{
		Type:    ErrMissingColumn,
		Message: fmt.Sprintf("column %q not found in dataset", variable),
		Context: map[string]interface{}{
			"group":    group,
			"variable": variable,
		},
	}
}

// NewNaNValuesError creates an error for NaN values found in a weighting column.
func NewNaNValuesError(group, variable string, count int) *WeightError {
	return &WeightError{
		Type:    ErrNaNValues,
		Message: fmt.Sprintf("column %q contains %d NaN value(s) within group %q", variable, count, group),
		Context: map[string]interface{}{
			"group":    group,
			"variable": variable,
			"count":    count,
		},
	}
}

// NewMissingInDataError creates an error for a target category with no observations.
func NewMissingInDataError(group, variable, category string) *WeightError {
	return &WeightError{
		Type:    ErrMissingInData,
		Message: fmt.Sprintf("category %q of %q has a nonzero target but no observations in group %q", category, variable, group),
		Context: map[string]interface{}{
			"group":    group,
			"variable": variable,
			"details":  category,
		},
	}
}

// NewFilterErrorError creates an error for a filter descriptor rejected by the evaluator.
func NewFilterErrorError(group string, cause error) *WeightError {
	return &WeightError{
		Type:    ErrFilterError,
		Message: fmt.Sprintf("filter evaluation failed for group %q", group),
		Context: map[string]interface{}{
			"group": group,
		},
		Cause: cause,
	}
}

// NewInvalidSchemeError creates an error for a structurally malformed scheme.
func NewInvalidSchemeError(message string) *WeightError {
	return &WeightError{
		Type:    ErrInvalidScheme,
		Message: message,
	}
}

// NewEmptyCellWithNonzeroTargetError creates the fatal runtime solver error raised
// when a raking cell has zero observed weight but a nonzero target.
func NewEmptyCellWithNonzeroTargetError(group, variable, category string) *WeightError {
	return &WeightError{
		Type:    ErrEmptyCellWithNonzeroTarget,
		Message: fmt.Sprintf("category %q of %q has zero observed weight but a nonzero target in group %q", category, variable, group),
		Context: map[string]interface{}{
			"group":    group,
			"variable": variable,
			"details":  category,
		},
	}
}
