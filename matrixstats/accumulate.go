// SPDX-License-Identifier: MIT

package matrixstats

import (
	"iter"
	"math"

	"golang.org/x/exp/constraints"
)

// compensated is a Neumaier running sum: the rounding error of every
// addition is collected in c and folded back in by Value. It bounds the
// error of long sums to O(ε) instead of O(nε), standing in for the wider
// accumulator type Go lacks.
type compensated[F constraints.Float] struct {
	sum F
	c   F
}

// Add accumulates x.
func (a *compensated[F]) Add(x F) {
	t := a.sum + x
	if absf(a.sum) >= absf(x) {
		a.c += (a.sum - t) + x
	} else {
		a.c += (x - t) + a.sum
	}
	a.sum = t
}

// Value returns the compensated total. Non-finite sums are returned as-is
// since the correction term is meaningless (Inf - Inf) there.
func (a *compensated[F]) Value() F {
	s := float64(a.sum)
	if math.IsNaN(s) || math.IsInf(s, 0) {
		return a.sum
	}
	return a.sum + a.c
}

func absf[F constraints.Float](x F) F {
	if x < 0 {
		return -x
	}
	return x
}

// sumOf returns the compensated sum of xs.
func sumOf(xs iter.Seq[float64]) float64 {
	var acc compensated[float64]
	for x := range xs {
		acc.Add(x)
	}
	return acc.Value()
}
