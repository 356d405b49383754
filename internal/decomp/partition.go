// Copyright 2025 The decomp Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package decomp

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/tensornet-go/decomp/internal/tensor"
)

// partition records how a tensor's axes were split into a row group and a
// column group, and the resulting matrix dimensions.
type partition struct {
	perm   []int
	shapeA tensor.Shape
	shapeB tensor.Shape
	dimA   int
	dimB   int
}

// partitionAxes permutes t's axes to axesA ++ axesB and flattens the result
// into a dimA x dimB matrix, where dimA and dimB are the products of the
// grouped axis sizes. Pure bookkeeping; t is not modified.
//
// axesA ++ axesB must be a permutation of all axes of t.
func partitionAxes(t *tensor.Dense, axesA, axesB []int) (*partition, *mat.Dense, error) {
	rank := t.Rank()
	if len(axesA)+len(axesB) != rank {
		return nil, nil, fmt.Errorf("partition: axis groups cover %d axes, tensor has rank %d",
			len(axesA)+len(axesB), rank)
	}

	perm := make([]int, 0, rank)
	perm = append(perm, axesA...)
	perm = append(perm, axesB...)

	permuted, err := t.Transpose(perm...)
	if err != nil {
		return nil, nil, fmt.Errorf("partition: %w", err)
	}

	shp := permuted.Shape()
	p := &partition{
		perm:   perm,
		shapeA: shp[:len(axesA)].Clone(),
		shapeB: shp[len(axesA):].Clone(),
		dimA:   1,
		dimB:   1,
	}
	for _, d := range p.shapeA {
		p.dimA *= d
	}
	for _, d := range p.shapeB {
		p.dimB *= d
	}
	if p.dimA == 0 || p.dimB == 0 {
		return nil, nil, fmt.Errorf("partition: flattened matrix is %dx%d, cannot decompose an empty matrix",
			p.dimA, p.dimB)
	}

	// The permuted tensor is contiguous row-major, which is exactly the
	// layout mat.NewDense expects.
	return p, mat.NewDense(p.dimA, p.dimB, permuted.Data()), nil
}
