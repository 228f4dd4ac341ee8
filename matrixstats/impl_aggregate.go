// SPDX-License-Identifier: MIT
// Package: matrixstats
//
// Purpose:
//   - Column reducers returning one float64 per column: sum, mean, variance,
//     standard deviation, min, max, product.
//
// Conventions for every reducer below:
//   - n = Zeros() + Len() is the effective size of the dense column.
//   - On a raw column any missing value yields NA (checked up front, so the
//     result is the NA sentinel itself, not an arithmetic NaN).
//   - On a skipping column missing values are already gone; Zeros() still
//     counts only genuine implicit zeros.

package matrixstats

import (
	"math"

	"github.com/katalvlaran/sparsestats/sparse"
)

// reduceSum: Σ values; implicit zeros add nothing. Empty column → 0.
func reduceSum(col sparse.Column) float64 {
	if hasNA(col) {
		return sparse.NA()
	}
	return sumOf(col.Values().All())
}

// reduceMean: Σ values / n. n == 0 → NaN.
func reduceMean(col sparse.Column) float64 {
	if hasNA(col) {
		return sparse.NA()
	}
	n := col.Zeros() + col.Len()
	if n == 0 {
		return math.NaN()
	}
	return sumOf(col.Values().All()) / float64(n)
}

// reduceVar: sample variance (Σx² − (Σx)²/n) / (n−1), zeros contributing
// to n only. n <= 1 → NA (not NaN).
func reduceVar(col sparse.Column) float64 {
	if hasNA(col) {
		return sparse.NA()
	}
	n := col.Zeros() + col.Len()
	if n <= 1 {
		return sparse.NA()
	}
	var s, s2 compensated[float64]
	for v := range col.Values().All() {
		s.Add(v)
		s2.Add(v * v)
	}
	sum := s.Value()
	return (s2.Value() - sum*sum/float64(n)) / float64(n-1)
}

// reduceSd: square root of reduceVar; NA stays NA.
func reduceSd(col sparse.Column) float64 {
	v := reduceVar(col)
	if sparse.IsNA(v) {
		return v
	}
	return math.Sqrt(v)
}

// reduceMin folds the explicit values, starting from 0 when the column has
// implicit zeros. Nothing to fold → +Inf.
func reduceMin(col sparse.Column) float64 {
	if hasNA(col) {
		return sparse.NA()
	}
	acc := math.Inf(1)
	if col.Zeros() > 0 {
		acc = 0
	}
	for v := range col.Values().All() {
		acc = min(acc, v)
	}
	return acc
}

// reduceMax mirrors reduceMin. Nothing to fold → -Inf.
func reduceMax(col sparse.Column) float64 {
	if hasNA(col) {
		return sparse.NA()
	}
	acc := math.Inf(-1)
	if col.Zeros() > 0 {
		acc = 0
	}
	for v := range col.Values().All() {
		acc = max(acc, v)
	}
	return acc
}

// reduceProd: 0 whenever an implicit zero is present, else Π values
// (empty product 1).
func reduceProd(col sparse.Column) float64 {
	if hasNA(col) {
		return sparse.NA()
	}
	if col.Zeros() > 0 {
		return 0
	}
	acc := 1.0
	for v := range col.Values().All() {
		acc *= v
	}
	return acc
}
