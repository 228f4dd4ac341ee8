// SPDX-License-Identifier: MIT

// Package sparse holds the compressed-sparse-column (CSC) storage read by
// the statistics engine, together with the lazy views used to traverse it.
//
// The package provides:
//
//   - CSC: the immutable (values, row indices, column pointers, dims) triplet.
//   - NA / IsNA: the missing-value sentinel and its predicate.
//   - SubsetView and SkipNA: non-owning views over one column's slice of the
//     value and row-index arrays; SkipNA omits missing values lazily.
//   - ColumnIterator: a single forward cursor over the column pointers that
//     yields (values, rows, implicit zero count) per column.
//
// Nothing in the traversal path copies or validates the storage. Use
// Validate (or the FromTriplets / FromDense constructors) when the producer
// of the arrays is not trusted.
//
// Quick example (4×3, column-major):
//
//	col 0: row 1 = 2.0, row 3 = NA
//	col 1: empty
//	col 2: row 0 = -1.0, row 2 = 3.0
//
//	m := sparse.New(4, 3,
//		[]float64{2, sparse.NA(), -1, 3},
//		[]int{1, 3, 0, 2},
//		[]int{0, 2, 2, 4})
package sparse
