// SPDX-License-Identifier: MIT

// Package eigen: Hotelling deflation.
package eigen

import (
	"github.com/katalvlaran/spectra/matrix"
)

// Deflate removes one eigenpair's contribution from a square matrix,
// returning M − λ·eeᵀ as a fresh matrix.
// Implementation:
//   - Stage 1 (Validate): non-nil square m; vector length must match its order.
//   - Stage 2 (Compose): Outer → Scale → Sub, all pure kernels.
//
// Behavior highlights:
//   - Pure: m is never mutated; feeding the result back into the solver
//     surfaces the next-dominant pair.
//   - With a unit eigenvector the deflated matrix maps e to (λ − λ)·e = 0,
//     so e cannot be re-extracted.
//
// Inputs:
//   - m: non-nil square matrix of order n.
//   - pair: eigenpair whose Vector has length n (unit norm expected).
//
// Returns:
//   - matrix.Matrix: fresh deflated matrix, same shape as m.
//
// Errors:
//   - ErrNilMatrix / ErrDimensionMismatch (from validators), wrapped with
//     the operation tag.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Deflate(m matrix.Matrix, pair EigenPair) (matrix.Matrix, error) {
	// Validate the matrix and the vector against its order.
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return nil, eigenErrorf(opDeflate, err)
	}
	if err := matrix.ValidateVecLen(pair.Vector, m.Rows()); err != nil {
		return nil, eigenErrorf(opDeflate, err)
	}

	// λ·eeᵀ via the rank-1 kernels.
	outer, err := matrix.Outer(pair.Vector, pair.Vector)
	if err != nil {
		return nil, eigenErrorf(opDeflate, err)
	}
	scaled, err := matrix.Scale(outer, pair.Value)
	if err != nil {
		return nil, eigenErrorf(opDeflate, err)
	}

	deflated, err := matrix.Sub(m, scaled)
	if err != nil {
		return nil, eigenErrorf(opDeflate, err)
	}

	return deflated, nil
}

// deflateInPlace subtracts λ·eeᵀ directly from the decomposer's working copy,
// avoiding the O(n²) allocations of the pure composition. The caller
// guarantees a square matrix whose order matches len(pair.Vector).
// Time: O(n²). Space: O(1).
func deflateInPlace(work matrix.Matrix, pair EigenPair) error {
	n := work.Rows()

	var (
		i, j int     // loop iterators
		ei   float64 // pair.Vector[i], hoisted per row
		cur  float64 // current cell value
		err  error
	)
	for i = 0; i < n; i++ {
		ei = pair.Vector[i] * pair.Value
		// Skip whole rows with a zero factor.
		if ei == 0 {
			continue
		}
		for j = 0; j < n; j++ {
			if cur, err = work.At(i, j); err != nil {
				return eigenErrorf(opDeflate, err)
			}
			if err = work.Set(i, j, cur-ei*pair.Vector[j]); err != nil {
				return eigenErrorf(opDeflate, err)
			}
		}
	}

	return nil
}
