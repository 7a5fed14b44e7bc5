// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

// Package table loads CSV files into types.Dataset values. Column typing
// (categorical vs. numeric) and row/weight-column ingestion are external
// collaborator concerns: the engine never imports this package, it only
// ever sees a *types.Dataset built by a caller, by this package or
// otherwise.
package table
