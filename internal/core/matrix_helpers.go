// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package core

import (
	"gonum.org/v1/gonum/mat"
)

// InitializeVector creates a new vector of specified size.
func InitializeVector(size int) *mat.VecDense {
	return mat.NewVecDense(size, nil)
}
