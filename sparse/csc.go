// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//   - CSC storage: values, row indices and column pointers plus dims.
//   - The arrays are borrowed from the producer and treated as read-only.
//
// Invariants (producer contract, checked only by Validate):
//   - len(values) == len(rowIdx) == nnz; len(colPtr) == ncol+1.
//   - colPtr[0] == 0, colPtr non-decreasing, colPtr[ncol] == nnz.
//   - Within a column rowIdx is strictly increasing and inside [0, nrow).

package sparse

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

const (
	opNew      = "New"
	opValidate = "Validate"
	opAt       = "At"
	opToDense  = "ToDense"
)

// CSC is a compressed-sparse-column matrix of float64.
type CSC struct {
	nrow, ncol int
	values     []float64 // explicit entries, column-major
	rowIdx     []int     // row of each explicit entry
	colPtr     []int     // ncol+1 offsets into values/rowIdx
}

// New wraps the three CSC arrays without copying or validating them.
// Complexity: O(1).
//
// Notes:
//   - A nil colPtr is accepted for ncol == 0 and replaced by []int{0}.
func New(nrow, ncol int, values []float64, rowIdx, colPtr []int) *CSC {
	if colPtr == nil && ncol == 0 {
		colPtr = []int{0}
	}
	return &CSC{nrow: nrow, ncol: ncol, values: values, rowIdx: rowIdx, colPtr: colPtr}
}

// NewChecked is New followed by Validate.
func NewChecked(nrow, ncol int, values []float64, rowIdx, colPtr []int) (*CSC, error) {
	m := New(nrow, ncol, values, rowIdx, colPtr)
	if err := Validate(m); err != nil {
		return nil, sparseErrorf(opNew, err)
	}
	return m, nil
}

// Dims returns (nrow, ncol).
func (m *CSC) Dims() (int, int) { return m.nrow, m.ncol }

// Rows returns nrow.
func (m *CSC) Rows() int { return m.nrow }

// Cols returns ncol.
func (m *CSC) Cols() int { return m.ncol }

// Nnz returns the number of explicit entries, missing ones included.
func (m *CSC) Nnz() int { return len(m.values) }

// Values returns the explicit value array. Callers must not modify it.
func (m *CSC) Values() []float64 { return m.values }

// RowIndices returns the row-index array. Callers must not modify it.
func (m *CSC) RowIndices() []int { return m.rowIdx }

// ColPointers returns the column-pointer array. Callers must not modify it.
func (m *CSC) ColPointers() []int { return m.colPtr }

// At returns the logical value at (i, j): the stored entry or 0.
// Complexity: O(log nnz_j) by binary search over the column's rows.
func (m *CSC) At(i, j int) (float64, error) {
	if i < 0 || i >= m.nrow || j < 0 || j >= m.ncol {
		return 0, fmt.Errorf("%s(%d,%d): %w", opAt, i, j, ErrOutOfRange)
	}
	lo, hi := m.colPtr[j], m.colPtr[j+1]
	rows := m.rowIdx[lo:hi]
	k := sort.SearchInts(rows, i)
	if k < len(rows) && rows[k] == i {
		return m.values[lo+k], nil
	}
	return 0, nil
}

// Validate checks every structural invariant of m.
// Implementation:
//   - Stage 1: nil and shape.
//   - Stage 2: array lengths against ncol and nnz.
//   - Stage 3: pointer monotonicity, then per-column row order and bounds.
//
// Complexity: O(ncol + nnz).
func Validate(m *CSC) error {
	// Stage 1: nil and shape.
	if m == nil {
		return sparseErrorf(opValidate, ErrNilMatrix)
	}
	if m.nrow < 0 || m.ncol < 0 {
		return sparseErrorf(opValidate, ErrBadShape)
	}

	// Stage 2: lengths.
	nnz := len(m.values)
	if len(m.rowIdx) != nnz || len(m.colPtr) != m.ncol+1 {
		return sparseErrorf(opValidate, ErrDimensionMismatch)
	}
	if m.colPtr[0] != 0 {
		return sparseErrorf(opValidate, ErrBadColumnPointers)
	}
	if m.colPtr[m.ncol] != nnz {
		return sparseErrorf(opValidate, ErrDimensionMismatch)
	}

	// Stage 3: pointers first, so every column range below is in bounds.
	var j, k int
	for j = 0; j < m.ncol; j++ {
		if m.colPtr[j+1] < m.colPtr[j] {
			return sparseErrorf(opValidate, ErrBadColumnPointers)
		}
	}
	for j = 0; j < m.ncol; j++ {
		lo, hi := m.colPtr[j], m.colPtr[j+1]
		for k = lo; k < hi; k++ {
			r := m.rowIdx[k]
			if r < 0 || r >= m.nrow {
				return fmt.Errorf("%s: column %d: %w", opValidate, j, ErrOutOfRange)
			}
			if k > lo && r <= m.rowIdx[k-1] {
				return fmt.Errorf("%s: column %d: %w", opValidate, j, ErrUnsorted)
			}
		}
	}
	return nil
}

// ToDense expands m into a gonum dense matrix, writing zeros for every
// implicit position and copying missing values as-is.
// Returns ErrBadShape when either dimension is zero (gonum cannot hold it).
// Complexity: O(nrow*ncol + nnz).
func (m *CSC) ToDense() (*mat.Dense, error) {
	if m.nrow == 0 || m.ncol == 0 {
		return nil, sparseErrorf(opToDense, ErrBadShape)
	}
	d := mat.NewDense(m.nrow, m.ncol, nil)
	var j, k int
	for j = 0; j < m.ncol; j++ {
		for k = m.colPtr[j]; k < m.colPtr[j+1]; k++ {
			d.Set(m.rowIdx[k], j, m.values[k])
		}
	}
	return d, nil
}

// Transpose returns a new CSC holding mᵀ. The output owns fresh arrays.
// Implementation:
//   - Stage 1: count entries per row of m (= per column of mᵀ).
//   - Stage 2: prefix-sum into column pointers.
//   - Stage 3: scatter entries column by column; since m's columns are
//     visited in increasing order, each output column receives increasing rows.
//
// Complexity: O(nrow + ncol + nnz).
func (m *CSC) Transpose() *CSC {
	nnz := len(m.values)
	colPtr := make([]int, m.nrow+1)

	// Stage 1: counts.
	for _, r := range m.rowIdx {
		colPtr[r+1]++
	}
	// Stage 2: prefix sums.
	var i, j, k int
	for i = 0; i < m.nrow; i++ {
		colPtr[i+1] += colPtr[i]
	}

	// Stage 3: scatter.
	values := make([]float64, nnz)
	rowIdx := make([]int, nnz)
	next := make([]int, m.nrow)
	copy(next, colPtr[:m.nrow])
	for j = 0; j < m.ncol; j++ {
		for k = m.colPtr[j]; k < m.colPtr[j+1]; k++ {
			r := m.rowIdx[k]
			dst := next[r]
			values[dst] = m.values[k]
			rowIdx[dst] = j
			next[r]++
		}
	}
	return &CSC{nrow: m.ncol, ncol: m.nrow, values: values, rowIdx: rowIdx, colPtr: colPtr}
}
