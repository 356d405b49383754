// Copyright 2025 The decomp Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "fmt"

// Dense is a real-valued tensor stored as a flat row-major float64 slice.
//
// Dense values are treated as immutable by the decomposition code: every
// operation that changes shape or layout returns a fresh tensor.
type Dense struct {
	data   []float64
	shape  Shape
	stride []int
}

// FromSlice creates a tensor from a flat row-major slice.
// The slice is used directly, not copied.
func FromSlice(data []float64, shape Shape) (*Dense, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if len(data) != shape.NumElements() {
		return nil, fmt.Errorf("data length %d does not match shape %v (%d elements)",
			len(data), shape, shape.NumElements())
	}
	return &Dense{
		data:   data,
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
	}, nil
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape) *Dense {
	t, err := FromSlice(make([]float64, shape.NumElements()), shape)
	if err != nil {
		panic(fmt.Sprintf("zeros: %v", err))
	}
	return t
}

// Shape returns the tensor's shape.
func (t *Dense) Shape() Shape {
	return t.shape
}

// Rank returns the number of axes.
func (t *Dense) Rank() int {
	return len(t.shape)
}

// NumElements returns the total number of elements.
func (t *Dense) NumElements() int {
	return t.shape.NumElements()
}

// Data returns the flat row-major backing slice.
// WARNING: Direct access to underlying memory. Use with caution.
func (t *Dense) Data() []float64 {
	return t.data
}

// At returns the element at the given multi-index.
func (t *Dense) At(idx ...int) float64 {
	return t.data[t.offset(idx)]
}

// Set writes the element at the given multi-index.
func (t *Dense) Set(v float64, idx ...int) {
	t.data[t.offset(idx)] = v
}

func (t *Dense) offset(idx []int) int {
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
	return off
}

// Clone returns a deep copy of the tensor.
func (t *Dense) Clone() *Dense {
	data := make([]float64, len(t.data))
	copy(data, t.data)
	return &Dense{data: data, shape: t.shape.Clone(), stride: t.shape.ComputeStrides()}
}

// Transpose returns a contiguous copy with axes reordered by perm,
// so that out.shape[i] == t.shape[perm[i]].
func (t *Dense) Transpose(perm ...int) (*Dense, error) {
	if err := validatePerm(perm, t.Rank()); err != nil {
		return nil, fmt.Errorf("transpose: %w", err)
	}

	outShape := make(Shape, len(perm))
	for i, ax := range perm {
		outShape[i] = t.shape[ax]
	}
	out := Zeros(outShape)

	// Gather elements in output order. idx walks the output multi-index;
	// the source offset follows from the original strides.
	idx := make([]int, t.Rank())
	for i := range out.data {
		src := 0
		for d, ax := range perm {
			src += idx[d] * t.stride[ax]
		}
		out.data[i] = t.data[src]

		for d := len(idx) - 1; d >= 0; d-- {
			idx[d]++
			if idx[d] < outShape[d] {
				break
			}
			idx[d] = 0
		}
	}
	return out, nil
}

// Reshape returns a tensor viewing the same data with a new shape.
// The element count must be unchanged.
func (t *Dense) Reshape(shape Shape) (*Dense, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("reshape: %w", err)
	}
	if shape.NumElements() != t.NumElements() {
		return nil, fmt.Errorf("reshape: cannot view %v (%d elements) as %v (%d elements)",
			t.shape, t.NumElements(), shape, shape.NumElements())
	}
	return &Dense{data: t.data, shape: shape.Clone(), stride: shape.ComputeStrides()}, nil
}
