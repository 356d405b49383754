// Copyright 2025 The decomp Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package decomp

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// DefaultDegeneracyEps is the relative-difference threshold below which two
// adjacent values are considered degenerate.
const DefaultDegeneracyEps = 1e-6

// selectRank picks the truncation rank for a value sequence.
//
// magnitudes must be sorted descending; the decomposition adapters guarantee
// this. chis is the set of candidate ranks (nil means "decide from eps"),
// eps the relative-error tolerance. The smallest candidate whose truncation
// error is strictly below eps wins; if none qualifies, the largest candidate
// tried is returned. Unless breakDegenerate is set, a candidate that would
// split a pair of degenerate values is walked down until the cut falls on a
// genuine gap.
//
// Returns the realized rank and the relative truncation error
// sqrt(sum(discarded^2) / sum(all^2)).
func selectRank(magnitudes []float64, chis []int, eps float64, breakDegenerate bool, degeneracyEps float64) (chi int, relErr float64) {
	n := len(magnitudes)
	candidates := canonicalChis(chis, n, eps)

	// An all-zero sequence carries no weight to discard: keep the smallest
	// requested rank.
	if floats.Sum(magnitudes) == 0 {
		smallest := candidates[0]
		for _, c := range candidates[1:] {
			if c < smallest {
				smallest = c
			}
		}
		return smallest, 0
	}

	sumAllSq := floats.Dot(magnitudes, magnitudes)
	for _, candidate := range candidates {
		chi = candidate
		if !breakDegenerate {
			chi = adjustForDegeneracy(chi, magnitudes, degeneracyEps)
		}
		relErr = truncationError(magnitudes, chi, sumAllSq)
		if relErr < eps {
			return chi, relErr
		}
	}
	return chi, relErr
}

// canonicalChis normalizes the candidate set. With no candidates given, a
// positive tolerance means "search every rank" and a non-positive one means
// "keep everything". With candidates given, a non-positive tolerance
// collapses the set to its maximum (exact mode, no search); otherwise the
// search runs from the smallest candidate up. Candidates are clamped to
// [0, n].
func canonicalChis(chis []int, n int, eps float64) []int {
	if len(chis) == 0 {
		if eps > 0 {
			all := make([]int, n+1)
			for i := range all {
				all[i] = i
			}
			return all
		}
		return []int{n}
	}

	out := make([]int, len(chis))
	for i, c := range chis {
		out[i] = max(0, min(c, n))
	}
	if eps <= 0 {
		top := out[0]
		for _, c := range out[1:] {
			if c > top {
				top = c
			}
		}
		return []int{top}
	}
	sort.Ints(out)
	return out
}

// adjustForDegeneracy walks chi downward while the cut would separate two
// values whose relative difference is below degeneracyEps, so that no
// degenerate cluster is split across the truncation boundary. It never grows
// chi.
func adjustForDegeneracy(chi int, magnitudes []float64, degeneracyEps float64) int {
	for chi > 0 && chi < len(magnitudes) {
		lastKept := magnitudes[chi-1]
		firstCut := magnitudes[chi]
		relDiff := math.Abs(lastKept - firstCut)
		if avg := (lastKept + firstCut) / 2; avg != 0 {
			relDiff /= avg
		}
		if relDiff >= degeneracyEps {
			break
		}
		chi--
	}
	return chi
}

// truncationError returns sqrt(sum(magnitudes[chi:]^2) / sumAllSq), the
// relative weight of the discarded tail, or 0 for a zero sequence.
func truncationError(magnitudes []float64, chi int, sumAllSq float64) float64 {
	if sumAllSq == 0 {
		return 0
	}
	tail := magnitudes[chi:]
	return math.Sqrt(floats.Dot(tail, tail) / sumAllSq)
}
