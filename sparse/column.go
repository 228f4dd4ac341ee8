// SPDX-License-Identifier: MIT

package sparse

import "iter"

// Column is the transient slice of one CSC column handed to a reducer:
// its explicit values, their row indices and the number of implicit zeros.
// A Column borrows the matrix arrays and must not outlive the matrix.
type Column struct {
	index  int
	values SubsetView[float64]
	rows   SubsetView[int]
	zeros  int
	skipNA bool
}

// Index returns the column number.
func (c Column) Index() int { return c.index }

// Zeros returns nrow minus the number of explicit entries (missing ones
// included). Dropping missing values never changes it.
func (c Column) Zeros() int { return c.zeros }

// Skipping reports whether missing values are hidden from this column.
func (c Column) Skipping() bool { return c.skipNA }

// SkipNA returns the same column with missing values (and their rows)
// hidden from Values, Rows and Entries.
func (c Column) SkipNA() Column {
	c.skipNA = true
	return c
}

// Raw returns the same column with nothing hidden.
func (c Column) Raw() Column {
	c.skipNA = false
	return c
}

// Len returns the number of values the column yields.
func (c Column) Len() int {
	if c.skipNA {
		return SkipNA(c.values).Len()
	}
	return c.values.Len()
}

// Values returns the explicit values, filtered when skipping.
func (c Column) Values() Sequence[float64] {
	if c.skipNA {
		return SkipNA(c.values)
	}
	return c.values
}

// Rows returns the row indices aligned with Values.
func (c Column) Rows() Sequence[int] {
	if c.skipNA {
		return SkipNAAligned(c.rows, c.values)
	}
	return c.rows
}

// Entries yields (row, value) pairs in increasing row order.
func (c Column) Entries() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		for i, v := range c.values.data {
			if c.skipNA && IsNA(v) {
				continue
			}
			if !yield(c.rows.data[i], v) {
				return
			}
		}
	}
}

// Column returns column j as a raw view. Complexity: O(1).
// Panics if j is outside [0, ncol).
func (m *CSC) Column(j int) Column {
	lo, hi := m.colPtr[j], m.colPtr[j+1]
	return Column{
		index:  j,
		values: Subset(m.values, lo, hi),
		rows:   Subset(m.rowIdx, lo, hi),
		zeros:  m.nrow - (hi - lo),
	}
}

// ColumnIterator is a single forward cursor over the column pointers.
// It starts before column 0 and is exhausted after column ncol-1; it can
// be consumed once.
type ColumnIterator struct {
	m      *CSC
	next   int
	cur    Column
	skipNA bool
}

// Columns returns a fresh iterator over the raw columns of m.
func (m *CSC) Columns() *ColumnIterator {
	return &ColumnIterator{m: m}
}

// SkippingColumns returns a fresh iterator whose columns hide missing values.
func (m *CSC) SkippingColumns() *ColumnIterator {
	return &ColumnIterator{m: m, skipNA: true}
}

// Next advances to the next column and reports whether one exists.
// Each step is O(1).
func (it *ColumnIterator) Next() bool {
	if it.next >= it.m.ncol {
		return false
	}
	it.cur = it.m.Column(it.next)
	it.cur.skipNA = it.skipNA
	it.next++
	return true
}

// Column returns the column at the cursor. Valid after Next returned true.
func (it *ColumnIterator) Column() Column { return it.cur }

// Remaining returns how many columns Next will still yield.
func (it *ColumnIterator) Remaining() int { return it.m.ncol - it.next }

// All adapts the iterator to a range-over-func sequence of (index, column).
func (it *ColumnIterator) All() iter.Seq2[int, Column] {
	return func(yield func(int, Column) bool) {
		for it.Next() {
			if !yield(it.cur.index, it.cur) {
				return
			}
		}
	}
}
