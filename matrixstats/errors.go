// SPDX-License-Identifier: MIT
// Package matrixstats: sentinel error set.
// Errors only come from argument checks at the entry points; numeric edge
// cases are encoded in the results (NA, NaN, ±Inf), never as errors.

package matrixstats

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/sparsestats/sparse"
)

var (
	// ErrNilMatrix is returned when the input matrix is nil.
	// It is the same sentinel as sparse.ErrNilMatrix.
	ErrNilMatrix = sparse.ErrNilMatrix

	// ErrOutOfRange is returned by Dense.At on invalid indices.
	ErrOutOfRange = sparse.ErrOutOfRange

	// ErrBadShape is returned by Dense.Mat for zero-sized results.
	ErrBadShape = sparse.ErrBadShape

	// ErrProbability indicates a quantile probability that is NaN or outside [0, 1].
	ErrProbability = errors.New("matrixstats: probability must be in [0, 1]")
)

// statsErrorf wraps err with the operation tag.
func statsErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
