// Copyright 2025 The decomp Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"testing"
)

func TestFromSlice(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}

	x, err := FromSlice(data, Shape{2, 3})
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}

	if !x.Shape().Equal(Shape{2, 3}) {
		t.Errorf("shape = %v, want [2 3]", x.Shape())
	}
	if got := x.At(1, 2); got != 6 {
		t.Errorf("At(1,2) = %v, want 6", got)
	}
	if got := x.At(0, 1); got != 2 {
		t.Errorf("At(0,1) = %v, want 2", got)
	}
}

func TestFromSliceLengthMismatch(t *testing.T) {
	if _, err := FromSlice([]float64{1, 2, 3}, Shape{2, 2}); err == nil {
		t.Error("expected error for mismatched data length, got nil")
	}
}

func TestFromSliceNegativeDim(t *testing.T) {
	if _, err := FromSlice(nil, Shape{-1, 0}); err == nil {
		t.Error("expected error for negative dimension, got nil")
	}
}

func TestZeroSizedDimension(t *testing.T) {
	x, err := FromSlice(nil, Shape{4, 0})
	if err != nil {
		t.Fatalf("FromSlice with zero-sized axis: %v", err)
	}
	if x.NumElements() != 0 {
		t.Errorf("NumElements = %d, want 0", x.NumElements())
	}
}

func TestTranspose(t *testing.T) {
	// 2x3 matrix, transposed.
	x, err := FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}

	y, err := x.Transpose(1, 0)
	if err != nil {
		t.Fatalf("Transpose: %v", err)
	}

	if !y.Shape().Equal(Shape{3, 2}) {
		t.Fatalf("shape = %v, want [3 2]", y.Shape())
	}
	want := []float64{1, 4, 2, 5, 3, 6}
	for i, w := range want {
		if y.Data()[i] != w {
			t.Errorf("data[%d] = %v, want %v", i, y.Data()[i], w)
		}
	}
}

func TestTransposeRank3(t *testing.T) {
	x := Randn(Shape{2, 3, 4})

	y, err := x.Transpose(2, 0, 1)
	if err != nil {
		t.Fatalf("Transpose: %v", err)
	}

	if !y.Shape().Equal(Shape{4, 2, 3}) {
		t.Fatalf("shape = %v, want [4 2 3]", y.Shape())
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 4; k++ {
				if y.At(k, i, j) != x.At(i, j, k) {
					t.Fatalf("y[%d,%d,%d] != x[%d,%d,%d]", k, i, j, i, j, k)
				}
			}
		}
	}
}

func TestTransposeLeavesInputUntouched(t *testing.T) {
	x, err := FromSlice([]float64{1, 2, 3, 4}, Shape{2, 2})
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}

	y, err := x.Transpose(1, 0)
	if err != nil {
		t.Fatalf("Transpose: %v", err)
	}
	y.Set(99, 0, 0)

	if x.At(0, 0) != 1 {
		t.Errorf("input mutated: x[0,0] = %v, want 1", x.At(0, 0))
	}
}

func TestTransposeInvalidPerm(t *testing.T) {
	x := Randn(Shape{2, 3})

	if _, err := x.Transpose(0); err == nil {
		t.Error("expected error for short permutation")
	}
	if _, err := x.Transpose(0, 0); err == nil {
		t.Error("expected error for repeated axis")
	}
	if _, err := x.Transpose(0, 2); err == nil {
		t.Error("expected error for out-of-range axis")
	}
}

func TestReshape(t *testing.T) {
	x, err := FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}

	y, err := x.Reshape(Shape{3, 2})
	if err != nil {
		t.Fatalf("Reshape: %v", err)
	}
	if got := y.At(2, 1); got != 6 {
		t.Errorf("At(2,1) = %v, want 6", got)
	}

	if _, err := x.Reshape(Shape{4, 2}); err == nil {
		t.Error("expected error for element count mismatch")
	}
}

func TestCDenseReshape(t *testing.T) {
	x, err := CFromSlice([]complex128{1, 2i, 3, 4i}, Shape{2, 2})
	if err != nil {
		t.Fatalf("CFromSlice: %v", err)
	}

	y, err := x.Reshape(Shape{4, 1})
	if err != nil {
		t.Fatalf("Reshape: %v", err)
	}
	if got := y.At(1, 0); got != 2i {
		t.Errorf("At(1,0) = %v, want 2i", got)
	}
}

func TestShapeConcat(t *testing.T) {
	a := Shape{2, 3}
	b := Shape{4}

	c := a.Concat(b)
	if !c.Equal(Shape{2, 3, 4}) {
		t.Errorf("Concat = %v, want [2 3 4]", c)
	}
	// Appending to the result must not clobber the operands.
	_ = append(c, 9)
	if !a.Equal(Shape{2, 3}) || !b.Equal(Shape{4}) {
		t.Errorf("operands mutated: %v, %v", a, b)
	}
}

func TestShapeStrides(t *testing.T) {
	s := Shape{2, 3, 4}
	strides := s.ComputeStrides()

	want := []int{12, 4, 1}
	for i, w := range want {
		if strides[i] != w {
			t.Errorf("stride[%d] = %d, want %d", i, strides[i], w)
		}
	}
}
