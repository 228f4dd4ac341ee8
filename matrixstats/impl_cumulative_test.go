// SPDX-License-Identifier: MIT

package matrixstats_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/sparsestats/matrixstats"
	"github.com/katalvlaran/sparsestats/sparse"
	"github.com/stretchr/testify/require"
)

func TestScenario_ColCumsums(t *testing.T) {
	t.Parallel()
	got, err := matrixstats.ColCumsums(scenario())
	require.NoError(t, err)
	r, c := got.Dims()
	require.Equal(t, 4, r)
	require.Equal(t, 3, c)

	requireSameFloats(t, []float64{0, 2, 2, sparse.NA()}, got.Col(0), 0)
	require.Equal(t, []float64{0, 0, 0, 0}, got.Col(1))
	require.Equal(t, []float64{-1, -1, 2, 2}, got.Col(2))
}

func TestScenario_ColCumminsCummaxs(t *testing.T) {
	t.Parallel()
	m := scenario()

	mins, err := matrixstats.ColCummins(m)
	require.NoError(t, err)
	requireSameFloats(t, []float64{0, 0, 0, sparse.NA()}, mins.Col(0), 0)
	require.Equal(t, []float64{-1, -1, -1, -1}, mins.Col(2))

	maxs, err := matrixstats.ColCummaxs(m)
	require.NoError(t, err)
	requireSameFloats(t, []float64{0, 2, 2, sparse.NA()}, maxs.Col(0), 0)
	require.Equal(t, []float64{-1, 0, 3, 3}, maxs.Col(2))
}

func TestScenario_ColCumprods(t *testing.T) {
	t.Parallel()
	got, err := matrixstats.ColCumprods(scenario())
	require.NoError(t, err)
	// Row 0 of column 0 is an implicit zero: the product is 0 from there on,
	// until the missing value at row 3.
	requireSameFloats(t, []float64{0, 0, 0, sparse.NA()}, got.Col(0), 0)
	requireSameFloats(t, []float64{-1, 0, 0, 0}, got.Col(2), 0)
}

func TestCumulative_IgnoresDropPolicy(t *testing.T) {
	t.Parallel()
	m := scenario()
	raw, err := matrixstats.ColCumsums(m)
	require.NoError(t, err)
	dropped, err := matrixstats.ColCumsums(m, matrixstats.WithNARm(true))
	require.NoError(t, err)
	requireSameFloats(t, raw.RawData(), dropped.RawData(), 0)
}

func TestCummin_MissingLatches(t *testing.T) {
	t.Parallel()
	// 5×1 column [3, NA, -9, 0, 1] with the zero implicit.
	m := sparse.New(5, 1, []float64{3, sparse.NA(), -9, 1}, []int{0, 1, 2, 4}, []int{0, 4})
	mins, err := matrixstats.ColCummins(m)
	require.NoError(t, err)
	col := mins.Col(0)
	require.Equal(t, 3.0, col[0])
	for i := 1; i < len(col); i++ {
		require.Truef(t, sparse.IsNA(col[i]), "row %d stays missing", i)
	}
}

// denseScan is the textbook prefix scan used as the oracle: f folds x into
// acc; row 0 starts from x itself unless startFromInit is set.
func denseScan(xs []float64, init float64, startFromInit bool, f func(acc, x float64) float64) []float64 {
	out := make([]float64, len(xs))
	acc := init
	for i, x := range xs {
		if i == 0 && !startFromInit {
			acc = x
		} else {
			acc = f(acc, x)
		}
		out[i] = acc
	}
	return out
}

func latch(pick func(a, b float64) float64) func(acc, x float64) float64 {
	return func(acc, x float64) float64 {
		switch {
		case sparse.IsNA(acc):
			return acc
		case sparse.IsNA(x):
			return x
		}
		return pick(acc, x)
	}
}

func TestCumulative_MatchDense(t *testing.T) {
	t.Parallel()
	type scanFn func(*sparse.CSC, ...matrixstats.Option) (*matrixstats.Dense, error)
	cases := []struct {
		name  string
		fn    scanFn
		dense func([]float64) []float64
	}{
		{"cumsum", matrixstats.ColCumsums, func(xs []float64) []float64 {
			return denseScan(xs, 0, true, func(acc, x float64) float64 { return acc + x })
		}},
		{"cumprod", matrixstats.ColCumprods, func(xs []float64) []float64 {
			return denseScan(xs, 1, true, func(acc, x float64) float64 { return acc * x })
		}},
		{"cummin", matrixstats.ColCummins, func(xs []float64) []float64 {
			return denseScan(xs, 0, false, latch(math.Min))
		}},
		{"cummax", matrixstats.ColCummaxs, func(xs []float64) []float64 {
			return denseScan(xs, 0, false, latch(math.Max))
		}},
	}

	var seed int64
	for seed = 1; seed <= 8; seed++ {
		m := randomCSC(t, seed, 10, 9, 0.1)
		cols := denseColumns(t, m)
		for _, tc := range cases {
			got, err := tc.fn(m)
			require.NoError(t, err)
			for j, col := range cols {
				requireSameFloats(t, tc.dense(col), got.Col(j), 0,
					fmt.Sprintf("%s seed=%d col=%d", tc.name, seed, j))
			}
		}
	}
}

func TestCumsum_LastRowIsColumnSum(t *testing.T) {
	t.Parallel()
	m := randomCSC(t, 7, 12, 20, 0.05)
	cum, err := matrixstats.ColCumsums(m)
	require.NoError(t, err)
	sums, err := matrixstats.ColSums2(m)
	require.NoError(t, err)
	requireSameFloats(t, sums, cum.Row(m.Rows()-1), epsTight)
}

func TestCumulative_ZeroRows(t *testing.T) {
	t.Parallel()
	m := sparse.New(0, 3, nil, nil, []int{0, 0, 0, 0})
	got, err := matrixstats.ColCummaxs(m)
	require.NoError(t, err)
	r, c := got.Dims()
	require.Equal(t, 0, r)
	require.Equal(t, 3, c)
}
