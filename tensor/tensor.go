// Copyright 2025 The decomp Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides dense multidimensional arrays for the decomp
// toolkit.
//
// Tensors are flat row-major slices with shape and stride bookkeeping:
//   - Dense: real-valued (float64) tensor
//   - CDense: complex-valued (complex128) tensor
//   - Shape: ordered axis dimensions
//
// Example:
//
//	x := tensor.Randn(tensor.Shape{4, 4, 4})
//	y, err := x.Transpose(2, 0, 1)
package tensor

import (
	"github.com/tensornet-go/decomp/internal/tensor"
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Dense is a real-valued tensor stored as a flat row-major float64 slice.
type Dense = tensor.Dense

// CDense is a complex-valued tensor stored as a flat row-major complex128
// slice.
type CDense = tensor.CDense

// Creation functions

// FromSlice creates a tensor from a flat row-major slice.
//
// Example:
//
//	data := []float64{1, 2, 3, 4, 5, 6}
//	x, err := tensor.FromSlice(data, tensor.Shape{2, 3})
func FromSlice(data []float64, shape Shape) (*Dense, error) {
	return tensor.FromSlice(data, shape)
}

// CFromSlice creates a complex tensor from a flat row-major slice.
func CFromSlice(data []complex128, shape Shape) (*CDense, error) {
	return tensor.CFromSlice(data, shape)
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape) *Dense {
	return tensor.Zeros(shape)
}

// Randn creates a tensor filled with random values from standard normal
// distribution N(0, 1).
func Randn(shape Shape) *Dense {
	return tensor.Randn(shape)
}

// Rand creates a tensor filled with random values from uniform distribution
// U(0, 1).
func Rand(shape Shape) *Dense {
	return tensor.Rand(shape)
}
