// Copyright 2025 The decomp Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package decomp

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/tensornet-go/decomp/internal/tensor"
)

// SVDResult holds the truncated factors of an SVD call.
//
// In matrix terms U * diag(S) * V reconstructs the flattened input, exactly
// at full rank and approximately after truncation. U has shape
// shapeA + (Chi,) and V has shape (Chi,) + shapeB, where shapeA and shapeB
// are the sizes of the row-group and column-group axes in their given order.
type SVDResult struct {
	U      *tensor.Dense
	S      []float64
	V      *tensor.Dense
	Chi    int
	RelErr float64
}

// EigResult holds the truncated eigenpairs of an Eig call.
//
// Values[i] is the eigenvalue matching eigenvector column i of U; both are
// ordered by descending |value|. U has shape shapeA + (Chi,).
type EigResult struct {
	Values []complex128
	U      *tensor.CDense
	Chi    int
	RelErr float64
}

// SVD reshapes t so that the axes in axesA form the rows and the axes in
// axesB form the columns of a matrix, computes its singular value
// decomposition, truncates it according to the options, and reshapes the
// factors back to tensors matching the grouped axis shapes.
//
// Example:
//
//	res, err := decomp.SVD(t, []int{0, 1}, []int{2}, decomp.WithEps(1e-8))
func SVD(t *tensor.Dense, axesA, axesB []int, opts ...Option) (*SVDResult, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p, m, err := partitionAxes(t, axesA, axesB)
	if err != nil {
		return nil, fmt.Errorf("svd: %w", err)
	}

	u, s, vt, err := svdMatrix(m)
	if err != nil {
		return nil, err
	}

	chi, relErr := selectRank(s, o.chis, o.eps, o.breakDegenerate, o.degeneracyEps)

	uTens, err := tensor.FromSlice(firstCols(u, chi), p.shapeA.Concat(tensor.Shape{chi}))
	if err != nil {
		return nil, fmt.Errorf("svd: reshape U: %w", err)
	}
	vTens, err := tensor.FromSlice(firstRows(vt, chi), tensor.Shape{chi}.Concat(p.shapeB))
	if err != nil {
		return nil, fmt.Errorf("svd: reshape V: %w", err)
	}

	return &SVDResult{
		U:      uTens,
		S:      s[:chi:chi],
		V:      vTens,
		Chi:    chi,
		RelErr: relErr,
	}, nil
}

// Eig reshapes t like SVD does, eigendecomposes the resulting square matrix
// and truncates by descending eigenvalue magnitude. The flattened matrix
// must be square, i.e. the axes in axesA and axesB must have equal size
// products. With WithHermitian the symmetric-specialized algorithm is used.
func Eig(t *tensor.Dense, axesA, axesB []int, opts ...Option) (*EigResult, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p, m, err := partitionAxes(t, axesA, axesB)
	if err != nil {
		return nil, fmt.Errorf("eig: %w", err)
	}

	values, vectors, err := eigMatrix(m, o.hermitian)
	if err != nil {
		return nil, err
	}

	magnitudes := make([]float64, len(values))
	for i, v := range values {
		magnitudes[i] = cmplx.Abs(v)
	}

	chi, relErr := selectRank(magnitudes, o.chis, o.eps, o.breakDegenerate, o.degeneracyEps)

	uTens, err := tensor.CFromSlice(firstColsC(vectors, chi), p.shapeA.Concat(tensor.Shape{chi}))
	if err != nil {
		return nil, fmt.Errorf("eig: reshape U: %w", err)
	}

	return &EigResult{
		Values: values[:chi:chi],
		U:      uTens,
		Chi:    chi,
		RelErr: relErr,
	}, nil
}

// firstCols copies the first chi columns of m into a contiguous row-major
// slice.
func firstCols(m *mat.Dense, chi int) []float64 {
	rm := m.RawMatrix()
	out := make([]float64, rm.Rows*chi)
	for i := 0; i < rm.Rows; i++ {
		copy(out[i*chi:(i+1)*chi], rm.Data[i*rm.Stride:i*rm.Stride+chi])
	}
	return out
}

// firstRows copies the first chi rows of m into a contiguous row-major
// slice.
func firstRows(m *mat.Dense, chi int) []float64 {
	rm := m.RawMatrix()
	out := make([]float64, chi*rm.Cols)
	for i := 0; i < chi; i++ {
		copy(out[i*rm.Cols:(i+1)*rm.Cols], rm.Data[i*rm.Stride:i*rm.Stride+rm.Cols])
	}
	return out
}

// firstColsC is firstCols for complex matrices.
func firstColsC(m *mat.CDense, chi int) []complex128 {
	rows, _ := m.Dims()
	out := make([]complex128, rows*chi)
	for i := 0; i < rows; i++ {
		for j := 0; j < chi; j++ {
			out[i*chi+j] = m.At(i, j)
		}
	}
	return out
}
