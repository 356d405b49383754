// Copyright 2025 The decomp Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package decomp provides truncated tensor decompositions.
//
// A tensor's axes are split into two ordered groups, the tensor is flattened
// to a matrix, decomposed with a dense SVD or eigendecomposition, truncated
// under a shared rank-selection policy, and the factors are reshaped back to
// tensors matching the grouped axis shapes.
//
// The truncation policy is controlled per call with options:
//   - WithChis: explicit rank, or a set of candidate ranks
//   - WithEps: relative-error tolerance driving a smallest-sufficient-rank search
//   - WithBreakDegenerate / WithDegeneracyEps: whether and when numerically
//     tied values may be split across the truncation boundary
//   - WithHermitian: symmetric-specialized eigendecomposition
//
// Example:
//
//	t := tensor.Randn(tensor.Shape{4, 4, 4, 4})
//	res, err := decomp.SVD(t, []int{0, 1}, []int{2, 3}, decomp.WithEps(1e-6))
//	// res.U has shape (4, 4, chi), res.V has shape (chi, 4, 4)
package decomp

import (
	"github.com/tensornet-go/decomp/internal/decomp"
	"github.com/tensornet-go/decomp/internal/tensor"
)

// DefaultDegeneracyEps is the relative-difference threshold below which two
// adjacent values are considered degenerate.
const DefaultDegeneracyEps = decomp.DefaultDegeneracyEps

// ErrNotConverged is returned when the underlying dense decomposition fails
// to converge.
var ErrNotConverged = decomp.ErrNotConverged

// Option configures a single SVD or Eig call.
type Option = decomp.Option

// SVDResult holds the truncated factors of an SVD call.
type SVDResult = decomp.SVDResult

// EigResult holds the truncated eigenpairs of an Eig call.
type EigResult = decomp.EigResult

// SVD reshapes t so that the axes in axesA form the rows and the axes in
// axesB form the columns of a matrix, computes its singular value
// decomposition, truncates it according to the options, and reshapes the
// factors back into tensors. See SVDResult for the factor layout.
func SVD(t *tensor.Dense, axesA, axesB []int, opts ...Option) (*SVDResult, error) {
	return decomp.SVD(t, axesA, axesB, opts...)
}

// Eig is like SVD but computes eigenvalues and eigenvectors of the flattened
// (square) matrix, ordered by descending eigenvalue magnitude.
func Eig(t *tensor.Dense, axesA, axesB []int, opts ...Option) (*EigResult, error) {
	return decomp.Eig(t, axesA, axesB, opts...)
}

// Options

// WithChis sets the candidate truncation ranks.
func WithChis(chis ...int) Option {
	return decomp.WithChis(chis...)
}

// WithEps sets the relative truncation error tolerance.
func WithEps(eps float64) Option {
	return decomp.WithEps(eps)
}

// WithBreakDegenerate allows splitting degenerate values across the
// truncation boundary.
func WithBreakDegenerate() Option {
	return decomp.WithBreakDegenerate()
}

// WithDegeneracyEps sets the degeneracy threshold.
func WithDegeneracyEps(eps float64) Option {
	return decomp.WithDegeneracyEps(eps)
}

// WithHermitian marks the flattened matrix as hermitian/symmetric (Eig only).
func WithHermitian() Option {
	return decomp.WithHermitian()
}
