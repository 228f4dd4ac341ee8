// SPDX-License-Identifier: MIT

package matrixstats

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

const opDenseMat = "Dense.Mat"

// Dense is the row-major result container of the vector-per-column
// operations (quantiles, cumulative scans).
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int
	data []float64
}

// newDense allocates an r×c zero matrix. Zero-sized shapes are legal.
func newDense(r, c int) *Dense {
	return &Dense{r: r, c: c, data: make([]float64, r*c)}
}

// Dims returns (rows, cols).
func (m *Dense) Dims() (int, int) { return m.r, m.c }

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// At returns the element at (i, j).
// Returns ErrOutOfRange (wrapped) on invalid indices.
func (m *Dense) At(i, j int) (float64, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, fmt.Errorf("Dense.At(%d,%d): %w", i, j, ErrOutOfRange)
	}
	return m.data[i*m.c+j], nil
}

// Row returns a copy of row i. Panics if i is out of range.
func (m *Dense) Row(i int) []float64 {
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])
	return out
}

// Col returns a copy of column j. Panics if j is out of range.
func (m *Dense) Col(j int) []float64 {
	if j < 0 || j >= m.c {
		panic(fmt.Sprintf("matrixstats: Dense.Col(%d) out of range", j))
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}
	return out
}

// RawData exposes the row-major backing slice without copying.
func (m *Dense) RawData() []float64 { return m.data }

// Mat copies the result into a gonum dense matrix. gonum cannot represent
// zero-sized matrices, so those return ErrBadShape (wrapped).
func (m *Dense) Mat() (*mat.Dense, error) {
	if m.r == 0 || m.c == 0 {
		return nil, statsErrorf(opDenseMat, ErrBadShape)
	}
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return mat.NewDense(m.r, m.c, data), nil
}

// String implements fmt.Stringer for debugging.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		b.WriteByte('[')
		for j = 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", m.data[i*m.c+j])
		}
		b.WriteString("]\n")
	}
	return b.String()
}

// setColumnVectors lays per-column vectors of length k into a matrix:
// asRows gives len(vecs) × k (vector j is row j), otherwise k × len(vecs)
// (vector j is column j).
func setColumnVectors(vecs [][]float64, k int, asRows bool) *Dense {
	n := len(vecs)
	if asRows {
		out := newDense(n, k)
		for j, v := range vecs {
			copy(out.data[j*k:(j+1)*k], v)
		}
		return out
	}
	out := newDense(k, n)
	var i int
	for j, v := range vecs {
		for i = 0; i < k; i++ {
			out.data[i*n+j] = v[i]
		}
	}
	return out
}
