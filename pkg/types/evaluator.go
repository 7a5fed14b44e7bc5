// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package types

// FilterEvaluator is the one capability the core borrows from its host: given
// a group's FilterDescriptor and the dataset, return the row indices it
// selects. The core never interprets a descriptor itself (§4.C5); a nil
// descriptor conventionally means "every row".
type FilterEvaluator interface {
	Apply(descriptor FilterDescriptor, dataset *Dataset) ([]int, error)
}
