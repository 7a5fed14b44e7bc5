// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

// Package types provides the core data structures and interfaces for the
// weightipy engine. It defines the column/dataset contract, the scheme model
// (targets, groups, flat and segmented schemes), the weight vector and
// convergence record produced by a solve, the validation report, and the
// structured error type shared across the engine.
//
// # Core Types
//
//   - Dataset / Column: the in-memory, read-only table the engine consumes.
//   - Target: a normalized percent distribution over one dimension's categories.
//   - Group: a filtered subset of rows together with its targets and share.
//   - Scheme: the full collection of groups and dimensions for one weighting run.
//   - WeightVector / ConvergenceRecord: the solver's outputs for one group.
//   - Report: the validator's structured issue table.
//
// # Error Handling
//
// WeightError carries a Type, a human-readable Message, a Context map for
// programmatic handling (group/variable/details), and an optional wrapped
// Cause. Construction and validation errors are raised eagerly; the single
// runtime solver error, EmptyCellWithNonzeroTarget, is raised during a solve
// and is fatal only for the affected group.
//
// # Thread Safety
//
// A Scheme is immutable after construction and safe for concurrent reads.
// A Dataset is borrowed read-only by the engine; callers must not mutate a
// Dataset while a solve is in progress.
package types
