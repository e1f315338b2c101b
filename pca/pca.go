// SPDX-License-Identifier: MIT

// Package pca: projection and variance attribution.
package pca

import (
	"fmt"

	"github.com/katalvlaran/spectra/eigen"
	"github.com/katalvlaran/spectra/matrix"
)

// Operation tags used in wrapped errors (single source of truth).
const (
	opProject           = "Project"
	opExplainedVariance = "ExplainedVariance"
	opFit               = "Fit"
)

// pcaErrorf unifies error wrapping with an operation tag, preserving the
// underlying sentinel for errors.Is.
func pcaErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// Project maps observations onto the principal axes of a decomposition.
// Implementation:
//   - Stage 1 (Validate): non-nil X; an empty decomposition short-circuits.
//   - Stage 2 (Assemble): eigenvectors as columns via Decomposition.Vectors.
//   - Stage 3 (Multiply): X·E through the matrix kernel, which enforces the
//     inner-dimension contract.
//
// Behavior highlights:
//   - The result has one column per retained pair, in the decomposition's
//     descending-magnitude order; column j is the coordinate along axis j.
//   - An empty decomposition yields a valid m×0 matrix, not an error: no
//     retained axes means no coordinates.
//
// Inputs:
//   - X: m×n observation matrix (rows = observations).
//   - dec: decomposition of the matching n×n covariance.
//
// Returns:
//   - matrix.Matrix: fresh m×k projection, k = dec.Len().
//
// Errors:
//   - ErrNilMatrix (nil X), ErrDimensionMismatch (X.Cols() differs from the
//     eigenvector length), wrapped with the operation tag.
//
// Complexity:
//   - Time O(m·n·k), Space O(m·k).
func Project(X matrix.Matrix, dec eigen.Decomposition) (matrix.Matrix, error) {
	if err := matrix.ValidateNotNil(X); err != nil {
		return nil, pcaErrorf(opProject, err)
	}

	// No retained axes: the projection exists but carries no coordinates.
	if dec.Len() == 0 {
		empty, err := matrix.NewDense(X.Rows(), 0)
		if err != nil {
			return nil, pcaErrorf(opProject, err)
		}

		return empty, nil
	}

	E, err := dec.Vectors()
	if err != nil {
		return nil, pcaErrorf(opProject, err)
	}

	projected, err := matrix.Mul(X, E)
	if err != nil {
		return nil, pcaErrorf(opProject, err)
	}

	return projected, nil
}

// ExplainedVariance attributes the total sample variance of a projection to
// its columns, normalized to sum to 1.
// Implementation:
//   - Stage 1 (Validate): non-nil input; at least two rows for a sample
//     variance (mirrors the column-statistics policy).
//   - Stage 2 (Accumulate): per-column mean, then per-column sample variance
//     with the 1/(r−1) estimator.
//   - Stage 3 (Normalize): divide by the total; an all-zero total yields
//     all-zero ratios instead of NaN.
//
// Inputs:
//   - projected: m×k projection (typically the output of Project), m ≥ 2.
//     A zero-column input is legal and yields an empty slice.
//
// Returns:
//   - []float64: k ratios in column order; they sum to 1 unless the total
//     variance is zero.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (fewer than two rows),
//     wrapped with the operation tag.
//
// Complexity:
//   - Time O(m·k), Space O(k).
func ExplainedVariance(projected matrix.Matrix) ([]float64, error) {
	if err := matrix.ValidateNotNil(projected); err != nil {
		return nil, pcaErrorf(opExplainedVariance, err)
	}

	r, k := projected.Rows(), projected.Cols()
	if k == 0 {
		return []float64{}, nil
	}
	if r < 2 {
		return nil, pcaErrorf(opExplainedVariance, matrix.ErrDimensionMismatch)
	}

	// Column means first, then squared deviations; two deterministic passes.
	means := make([]float64, k)
	vars := make([]float64, k)
	var (
		i, j int     // loop iterators
		v    float64 // current cell
		d    float64 // deviation from the column mean
		err  error
	)
	for i = 0; i < r; i++ {
		for j = 0; j < k; j++ {
			if v, err = projected.At(i, j); err != nil {
				return nil, pcaErrorf(opExplainedVariance, err)
			}
			means[j] += v
		}
	}
	inv := 1.0 / float64(r)
	for j = 0; j < k; j++ {
		means[j] *= inv
	}

	for i = 0; i < r; i++ {
		for j = 0; j < k; j++ {
			if v, err = projected.At(i, j); err != nil {
				return nil, pcaErrorf(opExplainedVariance, err)
			}
			d = v - means[j]
			vars[j] += d * d
		}
	}

	// Sample estimator and the normalization total.
	denom := 1.0 / float64(r-1)
	total := 0.0
	for j = 0; j < k; j++ {
		vars[j] *= denom
		total += vars[j]
	}

	// Degenerate total: constant projection in every column, zero shares.
	if total == 0 {
		return vars, nil
	}

	invTotal := 1.0 / total
	for j = 0; j < k; j++ {
		vars[j] *= invTotal
	}

	return vars, nil
}
