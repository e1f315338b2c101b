// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the vector kernels consumed by iterative spectral methods:
//     dot product, Euclidean norm, unit normalization, difference and the
//     rank-1 outer product.
//   - Keep the same validation and determinism discipline as the matrix
//     kernels: central validators, sentinel errors, fixed loop orders.
//
// Determinism & Performance:
//   - Every kernel is a single deterministic pass; no hidden allocations
//     beyond the documented result.
//
// AI-Hints:
//   - Vectors are plain []float64 by design; they interoperate with MatVec
//     and with Dense columns without wrapper types.

package matrix

import (
	"math"
)

// Operation name constants for unified error wrapping.
const (
	opDot       = "Dot"
	opNorm      = "Norm"
	opNormalize = "Normalize"
	opSubVec    = "SubVec"
	opOuter     = "Outer"
)

// Dot computes the inner product Σ_i x[i]*y[i].
//
// Inputs:
//   - x, y: non-nil vectors of equal length (length 0 is allowed; result 0).
//
// Errors:
//   - ErrNilMatrix (nil vector), ErrDimensionMismatch (length mismatch).
//
// Determinism:
//   - Fixed 0..n-1 accumulation order.
//
// Complexity:
//   - Time O(n), Space O(1).
func Dot(x, y []float64) (float64, error) {
	// Guard nil operands; lengths must agree exactly.
	if x == nil || y == nil {
		return 0, matrixErrorf(opDot, ErrNilMatrix)
	}
	if len(x) != len(y) {
		return 0, matrixErrorf(opDot, ErrDimensionMismatch)
	}

	// Single deterministic accumulation pass.
	acc := ZeroSum
	for i := 0; i < len(x); i++ {
		acc += x[i] * y[i]
	}

	return acc, nil
}

// Norm computes the Euclidean (Frobenius) norm √(Σ_i x[i]²).
//
// Errors:
//   - ErrNilMatrix (nil vector).
//
// Complexity:
//   - Time O(n), Space O(1).
//
// Notes:
//   - The zero-length vector has norm 0 by convention.
func Norm(x []float64) (float64, error) {
	// Guard nil operand.
	if x == nil {
		return 0, matrixErrorf(opNorm, ErrNilMatrix)
	}

	// Accumulate squared magnitudes deterministically.
	sq := NormZero
	for i := 0; i < len(x); i++ {
		sq += x[i] * x[i]
	}

	return math.Sqrt(sq), nil
}

// Normalize returns a fresh unit-norm copy of x (x / ‖x‖).
// Implementation:
//   - Stage 1: compute ‖x‖ via Norm.
//   - Stage 2: scale a copy by 1/‖x‖; a zero vector is returned as an
//     unchanged copy (degenerate-input policy, no NaN propagation).
//
// Returns:
//   - []float64: fresh slice; the input is never mutated.
//   - float64: the original norm (callers often need it alongside the unit vector).
//
// Errors:
//   - ErrNilMatrix (nil vector).
//
// Complexity:
//   - Time O(n), Space O(n).
//
// AI-Hints:
//   - The returned norm lets power-iteration reuse ‖Mx‖ without a second pass.
func Normalize(x []float64) ([]float64, float64, error) {
	// Compute the norm first; it doubles as the degenerate-input detector.
	n, err := Norm(x)
	if err != nil {
		return nil, 0, matrixErrorf(opNormalize, err)
	}

	// Copy out so the caller's slice is never aliased.
	out := make([]float64, len(x))
	copy(out, x)

	// Degenerate policy: a zero vector stays zero (scale 1), mirroring the
	// degenerate-row policy of the column statistics.
	if n == NormZero {
		return out, n, nil
	}

	// Divide onto the unit sphere; direct division keeps exactly
	// representable quotients exact (3/5 → 0.6), unlike a reciprocal round
	// trip.
	for i := 0; i < len(out); i++ {
		out[i] /= n
	}

	return out, n, nil
}

// SubVec computes the element-wise difference x − y as a fresh slice.
//
// Errors:
//   - ErrNilMatrix (nil vector), ErrDimensionMismatch (length mismatch).
//
// Complexity:
//   - Time O(n), Space O(n).
func SubVec(x, y []float64) ([]float64, error) {
	// Guard nil operands; lengths must agree exactly.
	if x == nil || y == nil {
		return nil, matrixErrorf(opSubVec, ErrNilMatrix)
	}
	if len(x) != len(y) {
		return nil, matrixErrorf(opSubVec, ErrDimensionMismatch)
	}

	// Single deterministic pass into a fresh result.
	out := make([]float64, len(x))
	for i := 0; i < len(x); i++ {
		out[i] = x[i] - y[i]
	}

	return out, nil
}

// Outer computes the rank-1 outer product x·yᵀ as a fresh Dense.
// Implementation:
//   - Stage 1: validate non-nil, non-empty operands.
//   - Stage 2: fill out[i,j] = x[i]*y[j] with a flat i→j loop, skipping
//     whole rows when x[i]==0.
//
// Inputs:
//   - x: column factor, length r ≥ 1.
//   - y: row factor, length c ≥ 1.
//
// Returns:
//   - *Dense: r×c matrix with out[i,j] = x[i]*y[j].
//
// Errors:
//   - ErrNilMatrix (nil vector), ErrBadShape (empty vector).
//
// Determinism:
//   - Fixed i→j fill order.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Deflation M − λ·eeᵀ composes Outer with Scale and Sub; for hot loops
//     prefer a fused in-place update on *Dense instead of three allocations.
func Outer(x, y []float64) (*Dense, error) {
	// Guard nil operands.
	if x == nil || y == nil {
		return nil, matrixErrorf(opOuter, ErrNilMatrix)
	}
	// Dense storage requires at least one row and one column.
	if len(x) == 0 || len(y) == 0 {
		return nil, matrixErrorf(opOuter, ErrBadShape)
	}

	// Allocate the r×c result once.
	r, c := len(x), len(y)
	res, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opOuter, err)
	}

	// Fill row-major; a zero x[i] zeroes the whole row, which the fresh
	// allocation already guarantees.
	var i, j, base int
	var xi float64
	for i = 0; i < r; i++ {
		xi = x[i]
		if xi == 0 {
			continue // row is already all zeros
		}
		base = i * c
		for j = 0; j < c; j++ {
			res.data[base+j] = xi * y[j]
		}
	}

	return res, nil
}
