// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//   - Non-owning windows over the CSC arrays (SubsetView) and a lazy
//     decorator that hides missing values (SkipNAView).
//
// Determinism & Performance:
//   - Construction of a SubsetView is O(1): it re-slices, never copies.
//   - SkipNAView counts its surviving elements once at construction so Len
//     is the post-filter size; iteration walks the base window and allocates
//     no intermediate buffer.

package sparse

import "iter"

// Sequence is a read-only, forward-iterable collection with a known size.
type Sequence[T any] interface {
	// Len returns the number of elements All yields.
	Len() int
	// All yields the elements in storage order.
	All() iter.Seq[T]
}

// SubsetView is a window [lo, hi) over a slice owned by someone else.
// It is valid only while the backing slice is.
type SubsetView[T any] struct {
	data []T
}

// Subset returns the window base[lo:hi]. The capacity is clipped so the
// view can never be appended into its neighbour's storage.
// Complexity: O(1).
func Subset[T any](base []T, lo, hi int) SubsetView[T] {
	return SubsetView[T]{data: base[lo:hi:hi]}
}

// Len returns the number of elements in the window.
func (v SubsetView[T]) Len() int { return len(v.data) }

// IsEmpty reports whether the window has no elements.
func (v SubsetView[T]) IsEmpty() bool { return len(v.data) == 0 }

// At returns the i-th element of the window. Panics if i is out of range.
func (v SubsetView[T]) At(i int) T { return v.data[i] }

// All yields every element in storage order.
func (v SubsetView[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range v.data {
			if !yield(x) {
				return
			}
		}
	}
}

// SkipNAView yields the elements of base whose aligned key is not missing.
// With base == keys it is the plain "values without NA" view; with base the
// row-index window it yields the rows of the surviving values.
type SkipNAView[T any] struct {
	base SubsetView[T]
	keys SubsetView[float64]
	n    int // surviving count
}

// SkipNA wraps a value window so that missing values are skipped.
// Complexity: O(len) to count survivors, no allocation.
func SkipNA(values SubsetView[float64]) SkipNAView[float64] {
	return SkipNAAligned(values, values)
}

// SkipNAAligned wraps base so that position i is skipped whenever keys[i]
// is missing. base and keys must have the same length.
func SkipNAAligned[T any](base SubsetView[T], keys SubsetView[float64]) SkipNAView[T] {
	n := 0
	for _, k := range keys.data {
		if !IsNA(k) {
			n++
		}
	}
	return SkipNAView[T]{base: base, keys: keys, n: n}
}

// Len returns the post-filter element count.
func (v SkipNAView[T]) Len() int { return v.n }

// IsEmpty reports whether no element survives the filter.
func (v SkipNAView[T]) IsEmpty() bool { return v.n == 0 }

// All yields the surviving elements in storage order.
func (v SkipNAView[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i, x := range v.base.data {
			if IsNA(v.keys.data[i]) {
				continue
			}
			if !yield(x) {
				return
			}
		}
	}
}
