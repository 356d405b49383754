// Copyright 2025 The decomp Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package decomp

// options holds the per-call truncation policy.
type options struct {
	chis            []int
	eps             float64
	breakDegenerate bool
	degeneracyEps   float64
	hermitian       bool
}

// Option configures a single SVD or Eig call.
type Option func(*options)

func defaultOptions() options {
	return options{
		degeneracyEps: DefaultDegeneracyEps,
	}
}

// WithChis sets the candidate truncation ranks. A single value requests that
// exact rank; several values form the candidate set searched when a
// tolerance is set. Without this option the full rank is kept, or every rank
// is searched when a positive tolerance is given.
func WithChis(chis ...int) Option {
	return func(o *options) {
		o.chis = chis
	}
}

// WithEps sets the relative truncation error tolerance. The smallest
// candidate rank whose error is strictly below eps is selected. A
// non-positive eps (the default) disables the search and keeps the largest
// candidate rank.
func WithEps(eps float64) Option {
	return func(o *options) {
		o.eps = eps
	}
}

// WithBreakDegenerate allows the truncation boundary to split a cluster of
// degenerate values. By default the realized rank is walked down so that a
// numerically-tied pair is never half kept, half discarded.
func WithBreakDegenerate() Option {
	return func(o *options) {
		o.breakDegenerate = true
	}
}

// WithDegeneracyEps sets the relative-difference threshold below which two
// adjacent values count as degenerate. Default is DefaultDegeneracyEps.
func WithDegeneracyEps(eps float64) Option {
	return func(o *options) {
		o.degeneracyEps = eps
	}
}

// WithHermitian marks the flattened matrix as hermitian/symmetric, selecting
// the specialized real-eigenvalue algorithm. Only Eig consults this; SVD
// ignores it.
func WithHermitian() Option {
	return func(o *options) {
		o.hermitian = true
	}
}
