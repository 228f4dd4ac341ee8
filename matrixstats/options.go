// SPDX-License-Identifier: MIT

// Package matrixstats: functional configuration for every entry point.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Notes:
//   - Options never carry state across calls; each entry point resolves its
//     own Options value.
//   - Cumulative scans ignore the NA policy: they always see raw columns.
package matrixstats

import "github.com/go-logr/logr"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultNARm keeps missing values, so they propagate into results.
	DefaultNARm = false

	// DefaultColumnsAsRows lays ColQuantiles out as one row per input column
	// (ncol × len(probs)).
	DefaultColumnsAsRows = true

	// DefaultMedianShortcut answers 0 for a median without touching the
	// explicit values when implicit zeros are more than half of the column.
	DefaultMedianShortcut = true
)

// logVerbosity is the V-level of the one record each entry point emits.
const logVerbosity = 1

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	naRm           bool
	columnsAsRows  bool
	medianShortcut bool
	logger         logr.Logger
}

// WithNARm selects the missing-value policy: true drops missing values
// before reducing, false propagates them into the result.
func WithNARm(naRm bool) Option {
	return func(o *Options) { o.naRm = naRm }
}

// WithColumnsAsRows chooses the ColQuantiles layout: true gives
// ncol × len(probs), false gives len(probs) × ncol.
func WithColumnsAsRows(asRows bool) Option {
	return func(o *Options) { o.columnsAsRows = asRows }
}

// WithMedianShortcut toggles the zero-majority median fast path.
// Results are identical either way; disabling it only forces the full
// order-statistic lookup.
func WithMedianShortcut(on bool) Option {
	return func(o *Options) { o.medianShortcut = on }
}

// WithLogger installs a structured logger. A zero logr.Logger discards.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		naRm:           DefaultNARm,
		columnsAsRows:  DefaultColumnsAsRows,
		medianShortcut: DefaultMedianShortcut,
		logger:         logr.Discard(),
	}
}

// gatherOptions applies opts over the defaults. nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// NARm reports the resolved missing-value policy.
func (o Options) NARm() bool { return o.naRm }

// ColumnsAsRows reports the resolved quantile layout.
func (o Options) ColumnsAsRows() bool { return o.columnsAsRows }

// MedianShortcut reports whether the zero-majority fast path is on.
func (o Options) MedianShortcut() bool { return o.medianShortcut }

// NewOptions resolves opts into an Options value (exported for tests and
// for callers that want to inspect the effective configuration).
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }
