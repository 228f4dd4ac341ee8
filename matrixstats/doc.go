// SPDX-License-Identifier: MIT

// Package matrixstats computes column-wise and row-wise statistics directly
// over CSC storage (package sparse) without expanding implicit zeros.
//
// The package provides:
//
//   - Column reductions: ColSums2, ColMeans2, ColMedians, ColVars, ColSds,
//     ColMins, ColMaxs, ColProds.
//   - Column predicates: ColCounts, ColAnyNAs, ColAnys, ColAlls (three-valued).
//   - Column quantiles: ColQuantiles (type-7, several probabilities at once).
//   - Cumulative scans: ColCumsums, ColCumprods, ColCummins, ColCummaxs.
//   - Row reductions: RowSums2, RowMeans2, RowVars, RowSds.
//   - Reduce / ReduceMatrix: the engine itself, for custom column reducers.
//
// Column operations walk one lazy column view at a time; row operations make
// a single forward pass over every explicit entry and scatter into per-row
// accumulators. Every result equals the same statistic computed on the dense
// expansion, including how missing values (sparse.NA) propagate.
//
// Missing values are dropped with WithNARm(true) and propagate otherwise.
// Statistical edge cases (empty column, all-missing column, one element)
// never produce errors; they yield NA, NaN or ±Inf as documented per function.
package matrixstats
