// Package sparsestats computes column and row statistics over sparse
// matrices stored in compressed-sparse-column (CSC) form, without ever
// materializing the implicit zeros.
//
// What is inside?
//
//	• Storage & views: CSC, missing-value sentinel, lazy column views
//	• Column reductions: sums, means, medians, variances, extrema, products
//	• Predicates: counts, any/all in three-valued logic, missing detection
//	• Order statistics: type-7 quantiles from sorted explicit values + zero count
//	• Cumulative scans: running sums, products, minima, maxima
//	• Row reductions: sums, means, variances in one pass over column storage
//
// Every result matches the statistic computed on the dense expansion,
// including how missing values propagate or are dropped.
//
// Everything is organized under two subpackages:
//
//	sparse/       CSC storage, NA / Logical, SubsetView, SkipNA, ColumnIterator
//	matrixstats/  Col* / Row* statistics, Reduce engine, Dense results, options
//
// Quick ASCII example (4×3, · = implicit zero):
//
//	     c0   c1   c2
//	r0    ·    ·   -1
//	r1    2    ·    ·
//	r2    ·    ·    3
//	r3   NA    ·    ·
//
//	ColSums2(m, WithNARm(true)) == [2, 0, 2]
//
//	go get github.com/katalvlaran/sparsestats
package sparsestats
