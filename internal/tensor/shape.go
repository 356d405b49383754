// Copyright 2025 The decomp Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "fmt"

// Shape represents the dimensions of a tensor.
type Shape []int

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks if the shape is valid.
// Zero-sized dimensions are allowed: a factor truncated to rank 0 is a
// legal tensor.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be >= 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// Concat returns a new shape formed by appending other to s.
func (s Shape) Concat(other Shape) Shape {
	out := make(Shape, 0, len(s)+len(other))
	out = append(out, s...)
	out = append(out, other...)
	return out
}

// validatePerm checks that perm is a permutation of 0..rank-1.
func validatePerm(perm []int, rank int) error {
	if len(perm) != rank {
		return fmt.Errorf("permutation has %d entries, tensor has rank %d", len(perm), rank)
	}
	seen := make([]bool, rank)
	for _, ax := range perm {
		if ax < 0 || ax >= rank {
			return fmt.Errorf("axis %d out of range for rank %d", ax, rank)
		}
		if seen[ax] {
			return fmt.Errorf("axis %d appears more than once in permutation", ax)
		}
		seen[ax] = true
	}
	return nil
}
