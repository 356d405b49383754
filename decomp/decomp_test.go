// Copyright 2025 The decomp Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package decomp_test

import (
	"testing"

	"github.com/tensornet-go/decomp/decomp"
	"github.com/tensornet-go/decomp/tensor"
)

// TestPublicSVD exercises the exported surface the way a tensor-network
// caller would.
func TestPublicSVD(t *testing.T) {
	x := tensor.Randn(tensor.Shape{4, 4, 4, 4})

	res, err := decomp.SVD(x, []int{0, 1}, []int{2, 3}, decomp.WithEps(1e-12))
	if err != nil {
		t.Fatalf("SVD: %v", err)
	}

	if res.Chi < 1 || res.Chi > 16 {
		t.Errorf("Chi = %d, want within [1, 16]", res.Chi)
	}
	wantU := tensor.Shape{4, 4, res.Chi}
	if !res.U.Shape().Equal(wantU) {
		t.Errorf("U shape = %v, want %v", res.U.Shape(), wantU)
	}
	wantV := tensor.Shape{res.Chi, 4, 4}
	if !res.V.Shape().Equal(wantV) {
		t.Errorf("V shape = %v, want %v", res.V.Shape(), wantV)
	}
	if res.RelErr >= 1e-12 {
		t.Errorf("RelErr = %v, want below the requested tolerance", res.RelErr)
	}
}

func TestPublicEig(t *testing.T) {
	data := []float64{
		2, 1,
		1, 2,
	}
	x, err := tensor.FromSlice(data, tensor.Shape{2, 2})
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}

	res, err := decomp.Eig(x, []int{0}, []int{1}, decomp.WithHermitian())
	if err != nil {
		t.Fatalf("Eig: %v", err)
	}

	if res.Chi != 2 {
		t.Fatalf("Chi = %d, want 2", res.Chi)
	}
	// Eigenvalues of [[2,1],[1,2]] are 3 and 1, in descending order.
	if got := real(res.Values[0]); got < 2.999 || got > 3.001 {
		t.Errorf("Values[0] = %v, want 3", res.Values[0])
	}
	if got := real(res.Values[1]); got < 0.999 || got > 1.001 {
		t.Errorf("Values[1] = %v, want 1", res.Values[1])
	}
}
