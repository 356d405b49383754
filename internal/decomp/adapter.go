// Copyright 2025 The decomp Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package decomp

import (
	"errors"
	"fmt"
	"math/cmplx"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// ErrNotConverged is returned when the underlying dense decomposition fails
// to converge. This is fatal for the call; it is never retried.
var ErrNotConverged = errors.New("decomposition did not converge")

// svdMatrix computes the thin SVD of m, returning U (r x k), the singular
// values (length k, descending, non-negative) and Vt (k x c) such that
// U * diag(s) * Vt reconstructs m, with k = min(r, c).
func svdMatrix(m *mat.Dense) (u *mat.Dense, s []float64, vt *mat.Dense, err error) {
	var svd mat.SVD
	if ok := svd.Factorize(m, mat.SVDThin); !ok {
		return nil, nil, nil, fmt.Errorf("svd: %w", ErrNotConverged)
	}
	s = svd.Values(nil)

	u = &mat.Dense{}
	svd.UTo(u)

	// gonum hands back V with singular vectors as columns; the reassembler
	// wants the k x c row form.
	var v mat.Dense
	svd.VTo(&v)
	vt = &mat.Dense{}
	vt.CloneFrom(v.T())
	return u, s, vt, nil
}

// eigMatrix computes the eigendecomposition of the square matrix m,
// returning eigenvalues and the matrix of eigenvector columns, both sorted
// by descending eigenvalue magnitude. The sort is performed here so that
// callers can rely on descending order as a contract rather than an
// assumption.
//
// With hermitian set, m is read as symmetric (upper triangle) and the
// specialized real-eigenvalue algorithm is used; the results are widened to
// complex so both paths share one return type.
func eigMatrix(m *mat.Dense, hermitian bool) ([]complex128, *mat.CDense, error) {
	n, c := m.Dims()
	if n != c {
		return nil, nil, fmt.Errorf("eig: matrix is %dx%d, eigendecomposition needs a square matrix", n, c)
	}

	var values []complex128
	var vectors *mat.CDense

	if hermitian {
		sym := mat.NewSymDense(n, nil)
		for i := 0; i < n; i++ {
			for j := i; j < n; j++ {
				sym.SetSym(i, j, m.At(i, j))
			}
		}
		var es mat.EigenSym
		if ok := es.Factorize(sym, true); !ok {
			return nil, nil, fmt.Errorf("eigh: %w", ErrNotConverged)
		}
		evals := es.Values(nil)
		var vecs mat.Dense
		es.VectorsTo(&vecs)

		values = make([]complex128, n)
		vectors = mat.NewCDense(n, n, nil)
		for j := 0; j < n; j++ {
			values[j] = complex(evals[j], 0)
			for i := 0; i < n; i++ {
				vectors.Set(i, j, complex(vecs.At(i, j), 0))
			}
		}
	} else {
		var eig mat.Eigen
		if ok := eig.Factorize(m, mat.EigenRight); !ok {
			return nil, nil, fmt.Errorf("eig: %w", ErrNotConverged)
		}
		values = eig.Values(nil)
		vectors = &mat.CDense{}
		eig.VectorsTo(vectors)
	}

	sortedVals, sortedVecs := sortByMagnitude(values, vectors)
	return sortedVals, sortedVecs, nil
}

// sortByMagnitude reorders values by descending |value| and applies the same
// permutation to the eigenvector columns.
func sortByMagnitude(values []complex128, vectors *mat.CDense) ([]complex128, *mat.CDense) {
	n := len(values)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return cmplx.Abs(values[order[i]]) > cmplx.Abs(values[order[j]])
	})

	sortedVals := make([]complex128, n)
	rows, _ := vectors.Dims()
	sorted := mat.NewCDense(rows, n, nil)
	for j, src := range order {
		sortedVals[j] = values[src]
		for i := 0; i < rows; i++ {
			sorted.Set(i, j, vectors.At(i, src))
		}
	}
	return sortedVals, sorted
}
