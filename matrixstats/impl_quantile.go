// SPDX-License-Identifier: MIT
// Package: matrixstats
//
// Purpose:
//   - Order statistics of the dense column (explicit values ∪ implicit zeros)
//     computed from the explicit values and the zero count alone.
//
// Algorithm (type-7 quantile):
//   - n = len(values) + zeros, h = (n-1)·p, lo = ⌊h⌋, hi = ⌈h⌉, frac = h - lo.
//   - Sort the explicit values only. With neg = number of negative values,
//     the k-th order statistic of the dense column is
//     sorted[k]          for k < neg,
//     0                  for neg <= k < neg+zeros,
//     sorted[k-zeros]    otherwise.
//   - Result = x(lo) + frac·(x(hi) - x(lo)).
//
// Complexity:
//   - O(m log m) per column for m explicit values; zeros are never materialized.

package matrixstats

import (
	"math"
	"sort"

	"golang.org/x/exp/slices"

	"github.com/katalvlaran/sparsestats/sparse"
)

// sortedColumn is a column's explicit values in ascending order plus its
// implicit zero count; it answers any order-statistic query.
type sortedColumn struct {
	values []float64
	zeros  int
	neg    int // number of values < 0
}

// newSortedColumn copies the column's values into buf (reused across
// columns), sorts them and locates the zero block.
func newSortedColumn(col sparse.Column, buf []float64) sortedColumn {
	buf = buf[:0]
	for v := range col.Values().All() {
		buf = append(buf, v)
	}
	slices.Sort(buf)
	return sortedColumn{
		values: buf,
		zeros:  col.Zeros(),
		neg:    sort.SearchFloat64s(buf, 0),
	}
}

// size returns the dense column length.
func (s sortedColumn) size() int { return len(s.values) + s.zeros }

// orderStat returns the k-th smallest (0-based) element of the dense column.
func (s sortedColumn) orderStat(k int) float64 {
	switch {
	case k < s.neg:
		return s.values[k]
	case k < s.neg+s.zeros:
		return 0
	default:
		return s.values[k-s.zeros]
	}
}

// quantile returns the type-7 p-quantile; NA for an empty column.
func (s sortedColumn) quantile(p float64) float64 {
	n := s.size()
	if n == 0 {
		return sparse.NA()
	}
	h := float64(n-1) * p
	lo := math.Floor(h)
	frac := h - lo
	xlo := s.orderStat(int(lo))
	if frac == 0 {
		return xlo
	}
	xhi := s.orderStat(int(math.Ceil(h)))
	if xhi == xlo {
		return xlo
	}
	return xlo + frac*(xhi-xlo)
}

// medianReducer: NA on a missing value (raw column) or an empty column;
// 0 straight away when implicit zeros outnumber half of the column and the
// shortcut is enabled (the middle rank then always lands in the zero block).
func medianReducer(shortcut bool) ColumnReducer[float64] {
	var buf []float64
	return func(col sparse.Column) float64 {
		if hasNA(col) {
			return sparse.NA()
		}
		n := col.Zeros() + col.Len()
		if n == 0 {
			return sparse.NA()
		}
		if shortcut && 2*col.Zeros() > n {
			return 0
		}
		s := newSortedColumn(col, buf)
		buf = s.values
		return s.quantile(0.5)
	}
}

// quantilesReducer evaluates every probability on one sorted copy of the
// column. A missing value (raw column) or an empty column gives all NA.
func quantilesReducer(probs []float64) ColumnReducer[[]float64] {
	var buf []float64
	return func(col sparse.Column) []float64 {
		out := make([]float64, len(probs))
		if hasNA(col) || col.Zeros()+col.Len() == 0 {
			for i := range out {
				out[i] = sparse.NA()
			}
			return out
		}
		s := newSortedColumn(col, buf)
		buf = s.values
		for i, p := range probs {
			out[i] = s.quantile(p)
		}
		return out
	}
}

// validateProbs rejects NaN and values outside [0, 1].
func validateProbs(probs []float64) error {
	for _, p := range probs {
		if math.IsNaN(p) || p < 0 || p > 1 {
			return ErrProbability
		}
	}
	return nil
}
