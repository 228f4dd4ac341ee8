// SPDX-License-Identifier: MIT
// Package matrixstats_test contains test helpers
//
// Purpose:
//   - Deterministic sparse fixtures (the 4×3 reference scenario and seeded
//     random matrices with missing values, empty and full columns).
//   - Dense oracles: every statistic recomputed on the gonum expansion, so
//     sparse results can be checked against the definition.

package matrixstats_test

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/sparsestats/sparse"
	"github.com/stretchr/testify/require"
)

// scenario builds the 4×3 reference matrix:
//
//	col 0: row 1 = 2, row 3 = NA
//	col 1: empty
//	col 2: row 0 = -1, row 2 = 3
func scenario() *sparse.CSC {
	return sparse.New(4, 3,
		[]float64{2, sparse.NA(), -1, 3},
		[]int{1, 3, 0, 2},
		[]int{0, 2, 2, 4})
}

// randomCSC builds an nrow×ncol matrix of small non-zero integers. Each
// column picks a density from {0, 0.3, 0.7, 1} so empty and fully populated
// columns both occur; naRate of the stored entries become NA.
func randomCSC(t testing.TB, seed int64, nrow, ncol int, naRate float64) *sparse.CSC {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	densities := []float64{0, 0.3, 0.7, 1}
	var entries []sparse.Triplet
	var i, j int
	for j = 0; j < ncol; j++ {
		d := densities[rng.Intn(len(densities))]
		for i = 0; i < nrow; i++ {
			if rng.Float64() >= d {
				continue
			}
			v := float64(rng.Intn(9) - 4)
			if v == 0 {
				v = 5
			}
			if rng.Float64() < naRate {
				v = sparse.NA()
			}
			entries = append(entries, sparse.Triplet{Row: i, Col: j, Value: v})
		}
	}
	m, err := sparse.FromTriplets(nrow, ncol, entries)
	require.NoError(t, err)
	return m
}

// denseColumns expands m into one []float64 per column.
func denseColumns(t testing.TB, m *sparse.CSC) [][]float64 {
	t.Helper()
	d, err := m.ToDense()
	require.NoError(t, err)
	r, c := d.Dims()
	out := make([][]float64, c)
	for j := 0; j < c; j++ {
		out[j] = make([]float64, r)
		for i := 0; i < r; i++ {
			out[j][i] = d.At(i, j)
		}
	}
	return out
}

// denseRows expands m into one []float64 per row.
func denseRows(t testing.TB, m *sparse.CSC) [][]float64 {
	t.Helper()
	return denseColumns(t, m.Transpose())
}

// prepare applies the NA policy to a dense vector: ok=false means the
// result must be NA (a missing value is kept); otherwise the kept values.
func prepare(xs []float64, naRm bool) ([]float64, bool) {
	kept := make([]float64, 0, len(xs))
	for _, x := range xs {
		if sparse.IsNA(x) {
			if !naRm {
				return nil, false
			}
			continue
		}
		kept = append(kept, x)
	}
	return kept, true
}

func denseSum(xs []float64, naRm bool) float64 {
	kept, ok := prepare(xs, naRm)
	if !ok {
		return sparse.NA()
	}
	s := 0.0
	for _, x := range kept {
		s += x
	}
	return s
}

func denseMean(xs []float64, naRm bool) float64 {
	kept, ok := prepare(xs, naRm)
	if !ok {
		return sparse.NA()
	}
	if len(kept) == 0 {
		return math.NaN()
	}
	return denseSum(kept, false) / float64(len(kept))
}

func denseVar(xs []float64, naRm bool) float64 {
	kept, ok := prepare(xs, naRm)
	if !ok || len(kept) <= 1 {
		return sparse.NA()
	}
	mean := denseMean(kept, false)
	ss := 0.0
	for _, x := range kept {
		ss += (x - mean) * (x - mean)
	}
	return ss / float64(len(kept)-1)
}

func denseMin(xs []float64, naRm bool) float64 {
	kept, ok := prepare(xs, naRm)
	if !ok {
		return sparse.NA()
	}
	acc := math.Inf(1)
	for _, x := range kept {
		acc = math.Min(acc, x)
	}
	return acc
}

func denseMax(xs []float64, naRm bool) float64 {
	kept, ok := prepare(xs, naRm)
	if !ok {
		return sparse.NA()
	}
	acc := math.Inf(-1)
	for _, x := range kept {
		acc = math.Max(acc, x)
	}
	return acc
}

func denseProd(xs []float64, naRm bool) float64 {
	kept, ok := prepare(xs, naRm)
	if !ok {
		return sparse.NA()
	}
	acc := 1.0
	for _, x := range kept {
		acc *= x
	}
	return acc
}

// denseQuantile is the textbook type-7 quantile on a sorted copy.
func denseQuantile(xs []float64, p float64, naRm bool) float64 {
	kept, ok := prepare(xs, naRm)
	if !ok || len(kept) == 0 {
		return sparse.NA()
	}
	sort.Float64s(kept)
	h := float64(len(kept)-1) * p
	lo := math.Floor(h)
	frac := h - lo
	xlo := kept[int(lo)]
	if frac == 0 {
		return xlo
	}
	xhi := kept[int(math.Ceil(h))]
	if xhi == xlo {
		return xlo
	}
	return xlo + frac*(xhi-xlo)
}

// requireSameFloats compares element-wise: NA must meet NA, NaN and ±Inf
// must match, finite values must agree within tol.
func requireSameFloats(t testing.TB, want, got []float64, tol float64, msgAndArgs ...interface{}) {
	t.Helper()
	require.Len(t, got, len(want), msgAndArgs...)
	for i := range want {
		w, g := want[i], got[i]
		if sparse.IsNA(w) {
			require.Truef(t, sparse.IsNA(g), "index %d: want NA, got %g %v", i, g, msgAndArgs)
			continue
		}
		require.Falsef(t, sparse.IsNA(g), "index %d: want %g, got NA %v", i, w, msgAndArgs)
		if math.IsInf(w, 0) {
			require.Equalf(t, w, g, "index %d %v", i, msgAndArgs)
			continue
		}
		require.InDeltaf(t, w, g, tol, "index %d %v", i, msgAndArgs)
	}
}

// denseApply evaluates f on every dense vector.
func denseApply(vecs [][]float64, f func([]float64) float64) []float64 {
	out := make([]float64, len(vecs))
	for j, v := range vecs {
		out[j] = f(v)
	}
	return out
}
