// SPDX-License-Identifier: MIT
// Package: matrixstats
//
// Purpose:
//   - Column predicates: count of a value, any missing, any equal, all equal.
//   - any/all answer in three-valued logic (sparse.Logical), exactly as the
//     same predicate over the dense column would: a missing value makes the
//     answer NA only when the known values cannot decide it.
//
// Notes:
//   - Implicit zeros are "equal to 0". Explicitly stored zeros are tolerated
//     and compared like any other value.
//   - value may itself be NA, in which case the predicate is about missing
//     entries (implicit zeros are never missing).

package matrixstats

import "github.com/katalvlaran/sparsestats/sparse"

// countReducer counts entries equal to value.
// value == 0 counts implicit zeros plus explicit zeros. On a raw column a
// missing value makes the result NAInteger only when nothing matched.
func countReducer(value float64) ColumnReducer[int] {
	if sparse.IsNA(value) {
		return func(col sparse.Column) int {
			n := 0
			for v := range col.Values().All() {
				if sparse.IsNA(v) {
					n++
				}
			}
			return n
		}
	}
	return func(col sparse.Column) int {
		n := 0
		if value == 0 {
			n = col.Zeros()
		}
		na := false
		for v := range col.Values().All() {
			switch {
			case sparse.IsNA(v):
				na = true
			case v == value:
				n++
			}
		}
		if na && n == 0 {
			return sparse.NAInteger
		}
		return n
	}
}

// reduceAnyNA: TRUE iff an explicit entry is missing.
func reduceAnyNA(col sparse.Column) sparse.Logical {
	return sparse.LogicalOf(hasNA(col))
}

// anyReducer: TRUE if some entry equals value, else NA if a missing value
// could be it, else FALSE.
// An implicit zero settles any(0) as TRUE even when every explicit entry is
// missing, as on the dense column; it does not answer NA there.
func anyReducer(value float64) ColumnReducer[sparse.Logical] {
	if sparse.IsNA(value) {
		return reduceAnyNA
	}
	return func(col sparse.Column) sparse.Logical {
		if value == 0 && col.Zeros() > 0 {
			return sparse.True
		}
		na := false
		for v := range col.Values().All() {
			if v == value {
				return sparse.True
			}
			if sparse.IsNA(v) {
				na = true
			}
		}
		if na {
			return sparse.NALogical
		}
		return sparse.False
	}
}

// allReducer: FALSE if some known entry differs from value, else NA if a
// missing value is present, else TRUE (vacuously TRUE for an empty column).
func allReducer(value float64) ColumnReducer[sparse.Logical] {
	if sparse.IsNA(value) {
		return func(col sparse.Column) sparse.Logical {
			if col.Zeros() > 0 {
				return sparse.False
			}
			for v := range col.Values().All() {
				if !sparse.IsNA(v) {
					return sparse.False
				}
			}
			return sparse.True
		}
	}
	return func(col sparse.Column) sparse.Logical {
		if value != 0 && col.Zeros() > 0 {
			return sparse.False
		}
		na := false
		for v := range col.Values().All() {
			if sparse.IsNA(v) {
				na = true
				continue
			}
			if v != value {
				return sparse.False
			}
		}
		if na {
			return sparse.NALogical
		}
		return sparse.True
	}
}
