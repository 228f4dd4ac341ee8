// SPDX-License-Identifier: MIT
// Package: matrixstats
//
// Purpose:
//   - The columnar reduction engine: walk the ColumnIterator once and apply a
//     reducer to every column, in column order.
//   - Under WithNARm(true) the reducer sees skipping columns (missing values
//     and their rows hidden, zero count unchanged); otherwise raw columns, and
//     the reducer itself turns a missing value into a missing result.
//
// Output shapes:
//   - []float64, []int, []sparse.Logical via the generic reduceColumns.
//   - *Dense via reduceVectors (fixed-width vector per column).
//
// Determinism:
//   - Columns are reduced strictly in order; each column's summation order is
//     its storage order.

package matrixstats

import (
	"github.com/go-logr/logr"

	"github.com/katalvlaran/sparsestats/sparse"
)

// ColumnReducer reduces one column (explicit values, their rows and the
// implicit zero count, all reachable from sparse.Column) to a result.
type ColumnReducer[R any] func(col sparse.Column) R

// reduceColumns applies f to every column and returns one result per column.
// Complexity: O(ncol + nnz) plus whatever f spends.
func reduceColumns[R any](m *sparse.CSC, naRm bool, f ColumnReducer[R]) []R {
	it := m.Columns()
	if naRm {
		it = m.SkippingColumns()
	}
	out := make([]R, 0, m.Cols())
	for it.Next() {
		out = append(out, f(it.Column()))
	}
	return out
}

// reduceVectors applies f (which must return exactly k values) to every
// column and lays the vectors out as a matrix; see setColumnVectors.
func reduceVectors(m *sparse.CSC, naRm bool, k int, asRows bool, f ColumnReducer[[]float64]) *Dense {
	return setColumnVectors(reduceColumns(m, naRm, f), k, asRows)
}

// Reduce runs a custom reducer over every column of m under the resolved
// missing-value policy.
// Errors:
//   - ErrNilMatrix when m is nil.
func Reduce[R any](m *sparse.CSC, f ColumnReducer[R], opts ...Option) ([]R, error) {
	o, err := begin("Reduce", m, opts)
	if err != nil {
		return nil, err
	}
	return reduceColumns(m, o.naRm, f), nil
}

// ReduceMatrix runs a reducer producing k values per column and returns
// them as a matrix laid out per WithColumnsAsRows.
// The reducer must return slices of length k; shorter slices panic.
func ReduceMatrix(m *sparse.CSC, k int, f ColumnReducer[[]float64], opts ...Option) (*Dense, error) {
	o, err := begin("ReduceMatrix", m, opts)
	if err != nil {
		return nil, err
	}
	return reduceVectors(m, o.naRm, k, o.columnsAsRows, f), nil
}

// begin resolves options, rejects a nil matrix and emits the entry log record.
func begin(op string, m *sparse.CSC, opts []Option) (Options, error) {
	o := gatherOptions(opts...)
	if m == nil {
		return o, statsErrorf(op, ErrNilMatrix)
	}
	logEntry(o.logger, op, m, o)
	return o, nil
}

func logEntry(l logr.Logger, op string, m *sparse.CSC, o Options) {
	r, c := m.Dims()
	l.V(logVerbosity).Info("reducing sparse matrix",
		"op", op, "rows", r, "cols", c, "nnz", m.Nnz(), "naRm", o.naRm)
}

// hasNA reports whether any value of the column is missing.
func hasNA(col sparse.Column) bool {
	for v := range col.Values().All() {
		if sparse.IsNA(v) {
			return true
		}
	}
	return false
}
