// Copyright 2025 The decomp Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "fmt"

// CDense is a complex-valued tensor stored as a flat row-major complex128
// slice. Eigendecomposition of a non-symmetric real matrix produces complex
// eigenvectors, so the eigenvector factor is carried as a CDense.
type CDense struct {
	data   []complex128
	shape  Shape
	stride []int
}

// CFromSlice creates a complex tensor from a flat row-major slice.
// The slice is used directly, not copied.
func CFromSlice(data []complex128, shape Shape) (*CDense, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if len(data) != shape.NumElements() {
		return nil, fmt.Errorf("data length %d does not match shape %v (%d elements)",
			len(data), shape, shape.NumElements())
	}
	return &CDense{
		data:   data,
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
	}, nil
}

// Shape returns the tensor's shape.
func (t *CDense) Shape() Shape {
	return t.shape
}

// Rank returns the number of axes.
func (t *CDense) Rank() int {
	return len(t.shape)
}

// NumElements returns the total number of elements.
func (t *CDense) NumElements() int {
	return t.shape.NumElements()
}

// Data returns the flat row-major backing slice.
func (t *CDense) Data() []complex128 {
	return t.data
}

// At returns the element at the given multi-index.
func (t *CDense) At(idx ...int) complex128 {
	if len(idx) != len(t.shape) {
		panic(fmt.Sprintf("index has %d entries, tensor has rank %d", len(idx), len(t.shape)))
	}
	off := 0
	for d, i := range idx {
		if i < 0 || i >= t.shape[d] {
			panic(fmt.Sprintf("index %d out of range for axis %d (size %d)", i, d, t.shape[d]))
		}
		off += i * t.stride[d]
	}
	return t.data[off]
}

// Reshape returns a tensor viewing the same data with a new shape.
// The element count must be unchanged.
func (t *CDense) Reshape(shape Shape) (*CDense, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("reshape: %w", err)
	}
	if shape.NumElements() != t.NumElements() {
		return nil, fmt.Errorf("reshape: cannot view %v (%d elements) as %v (%d elements)",
			t.shape, t.NumElements(), shape, shape.NumElements())
	}
	return &CDense{data: t.data, shape: shape.Clone(), stride: shape.ComputeStrides()}, nil
}
