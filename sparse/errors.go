// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// Constructors and Validate return these sentinels (wrapped with the
// operation name); callers match them via errors.Is. The traversal path
// (views, ColumnIterator) never returns errors.

package sparse

import (
	"errors"
	"fmt"
)

var (
	// ErrNilMatrix indicates that a nil *CSC was passed where a matrix is required.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrBadShape is returned when nrow or ncol is negative, and by ToDense
	// for zero-sized matrices.
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrDimensionMismatch indicates ragged arrays: len(values) != len(rowIdx),
	// or len(colPtr) != ncol+1, or colPtr[ncol] != nnz.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrOutOfRange indicates a row or column index outside the matrix bounds.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrBadColumnPointers signals colPtr[0] != 0 or a decreasing pointer.
	ErrBadColumnPointers = errors.New("sparse: column pointers not non-decreasing from 0")

	// ErrUnsorted signals row indices that are not strictly increasing within a column.
	ErrUnsorted = errors.New("sparse: row indices not strictly increasing within column")

	// ErrDuplicate signals two triplets addressing the same (row, col) cell.
	ErrDuplicate = errors.New("sparse: duplicate entry")
)

// sparseErrorf wraps err with the operation tag.
func sparseErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
