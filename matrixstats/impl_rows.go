// SPDX-License-Identifier: MIT
// Package: matrixstats
//
// Purpose:
//   - Row reductions over column-ordered storage. A per-row view would need
//     random access, so instead one forward pass over all explicit
//     (value, row) pairs scatters into per-row accumulators.
//
// Accumulators (length nrow, created per call):
//   - sums:     compensated running sums (extended precision substitute).
//   - nas:      missing entries seen per row.
//   - explicit: explicit entries per row (missing ones included), giving
//     zeros = ncol - explicit.
//
// Missing policy:
//   - naRm: missing entries are counted in nas and skipped.
//   - otherwise: a row with any missing entry reduces to NA.

package matrixstats

import (
	"math"

	"github.com/katalvlaran/sparsestats/sparse"
)

// rowPass holds the per-row accumulators of one forward pass.
type rowPass struct {
	sums []compensated[float64]
	nas  []int
}

// accumulateRows scatters every explicit entry of m into per-row sums,
// counting missing entries instead of summing them.
// Complexity: O(nrow + nnz).
func accumulateRows(m *sparse.CSC) rowPass {
	nrow := m.Rows()
	p := rowPass{
		sums: make([]compensated[float64], nrow),
		nas:  make([]int, nrow),
	}
	rows := m.RowIndices()
	for k, v := range m.Values() {
		r := rows[k]
		if sparse.IsNA(v) {
			p.nas[r]++
			continue
		}
		p.sums[r].Add(v)
	}
	return p
}

// rowSums: Σ row; NA when a missing entry is kept.
func rowSums(m *sparse.CSC, naRm bool) []float64 {
	p := accumulateRows(m)
	out := make([]float64, m.Rows())
	for i := range out {
		if !naRm && p.nas[i] > 0 {
			out[i] = sparse.NA()
			continue
		}
		out[i] = p.sums[i].Value()
	}
	return out
}

// rowMeans: Σ row / (ncol - dropped missing). A row with nothing left
// (ncol == dropped) is 0/0 = NaN.
func rowMeans(m *sparse.CSC, naRm bool) []float64 {
	p := accumulateRows(m)
	ncol := m.Cols()
	out := make([]float64, m.Rows())
	for i := range out {
		if !naRm && p.nas[i] > 0 {
			out[i] = sparse.NA()
			continue
		}
		out[i] = p.sums[i].Value() / float64(ncol-p.nas[i])
	}
	return out
}

// rowVars is a two-pass sample variance.
// Implementation:
//   - Stage 1: rowMeans (first full pass).
//   - Stage 2: second full pass accumulating (x - mean)² per explicit,
//     non-missing entry and counting explicit entries per row.
//   - Stage 3: add zeros·mean² for the implicit zeros and divide by
//     ncol - missing - 1; a non-positive denominator gives NA.
func rowVars(m *sparse.CSC, naRm bool) []float64 {
	// Stage 1: means.
	means := rowMeans(m, naRm)
	nrow, ncol := m.Dims()

	// Stage 2: squared deviations.
	ss := make([]compensated[float64], nrow)
	nas := make([]int, nrow)
	explicit := make([]int, nrow)
	rows := m.RowIndices()
	for k, v := range m.Values() {
		r := rows[k]
		explicit[r]++
		if sparse.IsNA(v) {
			nas[r]++
			continue
		}
		d := v - means[r]
		ss[r].Add(d * d)
	}

	// Stage 3: finalize.
	out := make([]float64, nrow)
	for i := range out {
		if !naRm && nas[i] > 0 {
			out[i] = sparse.NA()
			continue
		}
		den := ncol - nas[i] - 1
		if den <= 0 {
			out[i] = sparse.NA()
			continue
		}
		zeros := float64(ncol - explicit[i])
		out[i] = (ss[i].Value() + zeros*means[i]*means[i]) / float64(den)
	}
	return out
}

// rowSds: square roots of rowVars; NA stays NA.
func rowSds(m *sparse.CSC, naRm bool) []float64 {
	out := rowVars(m, naRm)
	for i, v := range out {
		if !sparse.IsNA(v) {
			out[i] = math.Sqrt(v)
		}
	}
	return out
}
