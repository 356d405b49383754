// Copyright 2025 The decomp Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "math/rand/v2"

// Randn creates a tensor filled with random values from the standard normal
// distribution N(0, 1).
func Randn(shape Shape) *Dense {
	t := Zeros(shape)
	for i := range t.data {
		t.data[i] = rand.NormFloat64()
	}
	return t
}

// Rand creates a tensor filled with random values from the uniform
// distribution U(0, 1).
func Rand(shape Shape) *Dense {
	t := Zeros(shape)
	for i := range t.data {
		t.data[i] = rand.Float64()
	}
	return t
}
