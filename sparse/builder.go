// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//   - Build CSC storage from coordinate triplets or from a dense gonum matrix.
//   - Unlike New, these constructors own their output arrays and guarantee
//     every structural invariant on return.

package sparse

import (
	"cmp"
	"fmt"

	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/mat"
)

const (
	opFromTriplets = "FromTriplets"
	opFromDense    = "FromDense"
)

// Triplet is one explicit (row, col, value) entry.
type Triplet struct {
	Row, Col int
	Value    float64
}

// FromTriplets builds a CSC matrix from entries given in any order.
// Implementation:
//   - Stage 1: validate shape and bounds of every triplet.
//   - Stage 2: sort a copy by (col, row); reject duplicated cells.
//   - Stage 3: emit values/rows and prefix-summed column pointers.
//
// Behavior highlights:
//   - Explicit zeros are stored as given; missing values are stored as given.
//
// Errors:
//   - ErrBadShape, ErrOutOfRange, ErrDuplicate (wrapped).
//
// Complexity:
//   - Time O(ncol + nnz log nnz), Space O(ncol + nnz).
func FromTriplets(nrow, ncol int, entries []Triplet) (*CSC, error) {
	// Stage 1: validate.
	if nrow < 0 || ncol < 0 {
		return nil, sparseErrorf(opFromTriplets, ErrBadShape)
	}
	for _, t := range entries {
		if t.Row < 0 || t.Row >= nrow || t.Col < 0 || t.Col >= ncol {
			return nil, fmt.Errorf("%s: (%d,%d): %w", opFromTriplets, t.Row, t.Col, ErrOutOfRange)
		}
	}

	// Stage 2: sort a private copy in column-major order.
	sorted := slices.Clone(entries)
	slices.SortFunc(sorted, func(a, b Triplet) int {
		if c := cmp.Compare(a.Col, b.Col); c != 0 {
			return c
		}
		return cmp.Compare(a.Row, b.Row)
	})

	// Stage 3: emit.
	nnz := len(sorted)
	values := make([]float64, nnz)
	rowIdx := make([]int, nnz)
	colPtr := make([]int, ncol+1)
	for k, t := range sorted {
		if k > 0 && sorted[k-1].Col == t.Col && sorted[k-1].Row == t.Row {
			return nil, fmt.Errorf("%s: (%d,%d): %w", opFromTriplets, t.Row, t.Col, ErrDuplicate)
		}
		values[k] = t.Value
		rowIdx[k] = t.Row
		colPtr[t.Col+1]++
	}
	for j := 0; j < ncol; j++ {
		colPtr[j+1] += colPtr[j]
	}
	return &CSC{nrow: nrow, ncol: ncol, values: values, rowIdx: rowIdx, colPtr: colPtr}, nil
}

// FromDense compresses any gonum matrix into CSC form. Exact zeros become
// implicit; every other value, NaN and NA included, is stored explicitly.
// Complexity: O(r*c).
func FromDense(a mat.Matrix) (*CSC, error) {
	if a == nil {
		return nil, sparseErrorf(opFromDense, ErrNilMatrix)
	}
	r, c := a.Dims()
	colPtr := make([]int, c+1)
	var values []float64
	var rowIdx []int
	var i, j int
	var v float64
	for j = 0; j < c; j++ {
		for i = 0; i < r; i++ {
			v = a.At(i, j)
			if v == 0 {
				continue
			}
			values = append(values, v)
			rowIdx = append(rowIdx, i)
		}
		colPtr[j+1] = len(values)
	}
	return &CSC{nrow: r, ncol: c, values: values, rowIdx: rowIdx, colPtr: colPtr}, nil
}
