// SPDX-License-Identifier: MIT
// Package matrixstats: public API facades.
//
// Purpose:
//   - One entry point per statistic. Each resolves options, rejects a nil
//     matrix, logs once, and delegates to the reducer in impl_*.go.
//   - No facade validates the CSC structure; see sparse.Validate.
//
// Output shapes:
//   - Col* reductions: one value per column, in column order.
//   - ColQuantiles: ncol × len(probs) (or transposed, WithColumnsAsRows(false)).
//   - ColCum*: nrow × ncol.
//   - Row*: one value per row.

package matrixstats

import "github.com/katalvlaran/sparsestats/sparse"

// Operation name constants for unified error wrapping and log records.
const (
	opColSums2     = "ColSums2"
	opColMeans2    = "ColMeans2"
	opColMedians   = "ColMedians"
	opColVars      = "ColVars"
	opColSds       = "ColSds"
	opColMins      = "ColMins"
	opColMaxs      = "ColMaxs"
	opColProds     = "ColProds"
	opColCounts    = "ColCounts"
	opColAnyNAs    = "ColAnyNAs"
	opColAnys      = "ColAnys"
	opColAlls      = "ColAlls"
	opColQuantiles = "ColQuantiles"
	opColCumsums   = "ColCumsums"
	opColCumprods  = "ColCumprods"
	opColCummins   = "ColCummins"
	opColCummaxs   = "ColCummaxs"
	opRowSums2     = "RowSums2"
	opRowMeans2    = "RowMeans2"
	opRowVars      = "RowVars"
	opRowSds       = "RowSds"
)

// colDoubles is the shared body of the float64-per-column facades.
func colDoubles(op string, m *sparse.CSC, opts []Option, f func(Options) ColumnReducer[float64]) ([]float64, error) {
	o, err := begin(op, m, opts)
	if err != nil {
		return nil, err
	}
	return reduceColumns(m, o.naRm, f(o)), nil
}

func fixed(f ColumnReducer[float64]) func(Options) ColumnReducer[float64] {
	return func(Options) ColumnReducer[float64] { return f }
}

// ColSums2 returns per-column sums. Empty column → 0; a kept missing value → NA.
func ColSums2(m *sparse.CSC, opts ...Option) ([]float64, error) {
	return colDoubles(opColSums2, m, opts, fixed(reduceSum))
}

// ColMeans2 returns per-column means over nrow (minus dropped missing values).
// A column with no entries left → NaN.
func ColMeans2(m *sparse.CSC, opts ...Option) ([]float64, error) {
	return colDoubles(opColMeans2, m, opts, fixed(reduceMean))
}

// ColMedians returns per-column medians (type-7, p = 0.5). Empty column → NA.
func ColMedians(m *sparse.CSC, opts ...Option) ([]float64, error) {
	return colDoubles(opColMedians, m, opts, func(o Options) ColumnReducer[float64] {
		return medianReducer(o.medianShortcut)
	})
}

// ColVars returns per-column sample variances. Effective size <= 1 → NA.
func ColVars(m *sparse.CSC, opts ...Option) ([]float64, error) {
	return colDoubles(opColVars, m, opts, fixed(reduceVar))
}

// ColSds returns per-column sample standard deviations.
func ColSds(m *sparse.CSC, opts ...Option) ([]float64, error) {
	return colDoubles(opColSds, m, opts, fixed(reduceSd))
}

// ColMins returns per-column minima. A column with no entries → +Inf.
func ColMins(m *sparse.CSC, opts ...Option) ([]float64, error) {
	return colDoubles(opColMins, m, opts, fixed(reduceMin))
}

// ColMaxs returns per-column maxima. A column with no entries → -Inf.
func ColMaxs(m *sparse.CSC, opts ...Option) ([]float64, error) {
	return colDoubles(opColMaxs, m, opts, fixed(reduceMax))
}

// ColProds returns per-column products; any implicit zero gives 0.
func ColProds(m *sparse.CSC, opts ...Option) ([]float64, error) {
	return colDoubles(opColProds, m, opts, fixed(reduceProd))
}

// ColCounts returns, per column, how many entries equal value.
// With missing values kept, a column containing one and no match → sparse.NAInteger.
func ColCounts(m *sparse.CSC, value float64, opts ...Option) ([]int, error) {
	o, err := begin(opColCounts, m, opts)
	if err != nil {
		return nil, err
	}
	return reduceColumns(m, o.naRm, countReducer(value)), nil
}

// ColAnyNAs reports, per column, whether any entry is missing.
// The NA policy option is ignored: missing values are what it looks for.
func ColAnyNAs(m *sparse.CSC, opts ...Option) ([]sparse.Logical, error) {
	if _, err := begin(opColAnyNAs, m, opts); err != nil {
		return nil, err
	}
	return reduceColumns(m, false, reduceAnyNA), nil
}

// ColAnys reports, per column, whether any entry equals value (three-valued).
func ColAnys(m *sparse.CSC, value float64, opts ...Option) ([]sparse.Logical, error) {
	o, err := begin(opColAnys, m, opts)
	if err != nil {
		return nil, err
	}
	return reduceColumns(m, o.naRm, anyReducer(value)), nil
}

// ColAlls reports, per column, whether every entry equals value (three-valued).
func ColAlls(m *sparse.CSC, value float64, opts ...Option) ([]sparse.Logical, error) {
	o, err := begin(opColAlls, m, opts)
	if err != nil {
		return nil, err
	}
	return reduceColumns(m, o.naRm, allReducer(value)), nil
}

// ColQuantiles returns type-7 quantiles for every probability, per column.
// Errors:
//   - ErrNilMatrix, ErrProbability (wrapped).
func ColQuantiles(m *sparse.CSC, probs []float64, opts ...Option) (*Dense, error) {
	o, err := begin(opColQuantiles, m, opts)
	if err != nil {
		return nil, err
	}
	if err = validateProbs(probs); err != nil {
		return nil, statsErrorf(opColQuantiles, err)
	}
	return reduceVectors(m, o.naRm, len(probs), o.columnsAsRows, quantilesReducer(probs)), nil
}

// colScan is the shared body of the cumulative facades (nrow × ncol output).
func colScan(op string, m *sparse.CSC, opts []Option, step scanStep) (*Dense, error) {
	if _, err := begin(op, m, opts); err != nil {
		return nil, err
	}
	return reduceVectors(m, false, m.Rows(), false, scanReducer(m.Rows(), step)), nil
}

// ColCumsums returns running column sums (nrow × ncol).
func ColCumsums(m *sparse.CSC, opts ...Option) (*Dense, error) {
	return colScan(opColCumsums, m, opts, cumsumStep)
}

// ColCumprods returns running column products (nrow × ncol).
func ColCumprods(m *sparse.CSC, opts ...Option) (*Dense, error) {
	return colScan(opColCumprods, m, opts, cumprodStep)
}

// ColCummins returns running column minima (nrow × ncol).
func ColCummins(m *sparse.CSC, opts ...Option) (*Dense, error) {
	return colScan(opColCummins, m, opts, cumminStep)
}

// ColCummaxs returns running column maxima (nrow × ncol).
func ColCummaxs(m *sparse.CSC, opts ...Option) (*Dense, error) {
	return colScan(opColCummaxs, m, opts, cummaxStep)
}

// rowDoubles is the shared body of the row facades.
func rowDoubles(op string, m *sparse.CSC, opts []Option, f func(*sparse.CSC, bool) []float64) ([]float64, error) {
	o, err := begin(op, m, opts)
	if err != nil {
		return nil, err
	}
	return f(m, o.naRm), nil
}

// RowSums2 returns per-row sums.
func RowSums2(m *sparse.CSC, opts ...Option) ([]float64, error) {
	return rowDoubles(opRowSums2, m, opts, rowSums)
}

// RowMeans2 returns per-row means over ncol (minus dropped missing values).
func RowMeans2(m *sparse.CSC, opts ...Option) ([]float64, error) {
	return rowDoubles(opRowMeans2, m, opts, rowMeans)
}

// RowVars returns per-row sample variances. Effective size <= 1 → NA.
func RowVars(m *sparse.CSC, opts ...Option) ([]float64, error) {
	return rowDoubles(opRowVars, m, opts, rowVars)
}

// RowSds returns per-row sample standard deviations.
func RowSds(m *sparse.CSC, opts ...Option) ([]float64, error) {
	return rowDoubles(opRowSds, m, opts, rowSds)
}
