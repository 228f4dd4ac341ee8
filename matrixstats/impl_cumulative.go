// SPDX-License-Identifier: MIT
// Package: matrixstats
//
// Purpose:
//   - Per-column prefix scans producing the full nrow-long dense output:
//     cumulative sum, product, min, max.
//
// Behavior highlights:
//   - Always run on raw columns; missing values are never dropped.
//   - Sum/product carry a missing value forward through arithmetic
//     (NA + x and NA · x stay missing; so does 0 · NA at an implicit zero).
//   - Min/max latch explicitly: once the running value is missing it stays
//     missing for every later row.
//   - Product at an implicit zero becomes 0·acc, exactly as dense
//     multiplication would (so ±Inf·0 gives NaN, like the dense column).
//
// Complexity:
//   - O(nrow) per column: the explicit (row, value) pairs are merged with the
//     implicit-zero gaps in one forward walk.

package matrixstats

import "github.com/katalvlaran/sparsestats/sparse"

// scanStep describes one cumulative scan.
//   - explicit folds a stored value into acc.
//   - implicit folds an implicit zero into acc.
//   - first reports row 0, where min/max start from the value itself.
type scanStep struct {
	init     float64
	explicit func(acc, v float64, first bool) float64
	implicit func(acc float64, first bool) float64
}

// scanReducer builds the reducer emitting one running value per row.
func scanReducer(nrow int, step scanStep) ColumnReducer[[]float64] {
	return func(col sparse.Column) []float64 {
		out := make([]float64, nrow)
		acc := step.init
		r := 0
		for row, v := range col.Raw().Entries() {
			for ; r < row; r++ {
				acc = step.implicit(acc, r == 0)
				out[r] = acc
			}
			acc = step.explicit(acc, v, r == 0)
			out[r] = acc
			r++
		}
		for ; r < nrow; r++ {
			acc = step.implicit(acc, r == 0)
			out[r] = acc
		}
		return out
	}
}

var cumsumStep = scanStep{
	init:     0,
	explicit: func(acc, v float64, _ bool) float64 { return acc + v },
	implicit: func(acc float64, _ bool) float64 { return acc },
}

var cumprodStep = scanStep{
	init:     1,
	explicit: func(acc, v float64, _ bool) float64 { return acc * v },
	implicit: func(acc float64, _ bool) float64 { return 0 * acc },
}

var cumminStep = scanStep{
	explicit: func(acc, v float64, first bool) float64 {
		switch {
		case first:
			return v
		case sparse.IsNA(acc):
			return acc
		case sparse.IsNA(v):
			return v
		}
		return min(acc, v)
	},
	implicit: func(acc float64, first bool) float64 {
		switch {
		case first:
			return 0
		case sparse.IsNA(acc):
			return acc
		}
		return min(acc, 0)
	},
}

var cummaxStep = scanStep{
	explicit: func(acc, v float64, first bool) float64 {
		switch {
		case first:
			return v
		case sparse.IsNA(acc):
			return acc
		case sparse.IsNA(v):
			return v
		}
		return max(acc, v)
	},
	implicit: func(acc float64, first bool) float64 {
		switch {
		case first:
			return 0
		case sparse.IsNA(acc):
			return acc
		}
		return max(acc, 0)
	},
}
