// SPDX-License-Identifier: MIT

// Package pca: end-to-end pipeline over raw observations.
package pca

import (
	"github.com/katalvlaran/spectra/eigen"
	"github.com/katalvlaran/spectra/matrix"
)

// Result bundles everything Fit produces for one observation matrix.
type Result struct {
	// Decomposition of the covariance of the standardized observations,
	// descending eigenvalue magnitude.
	Decomposition eigen.Decomposition

	// Projected holds the standardized observations expressed in principal
	// coordinates, one column per retained axis (m×k).
	Projected matrix.Matrix

	// Ratios is the explained-variance share per retained axis; sums to 1
	// unless the projection is constant.
	Ratios []float64
}

// Fit runs the full analysis on an m×n observation matrix.
// Implementation:
//   - Stage 1 (Standardize): per-column zero mean, unit sample variance
//     (degenerate constant columns become all-zero, per the statistics
//     policy).
//   - Stage 2 (Covariance): n×n sample covariance of the standardized data.
//   - Stage 3 (Decompose): eigen.Decompose under the caller's options.
//   - Stage 4 (Attribute): Project + ExplainedVariance on the retained axes.
//
// Behavior highlights:
//   - Fully deterministic for fixed input and options.
//   - A constant input survives the pipeline: standardization zeroes it, the
//     zero covariance decomposes to nothing, and the projection is m×0 with
//     empty ratios.
//
// Inputs:
//   - X: m×n observations, m ≥ 2 (sample statistics need two rows).
//   - opts: forwarded verbatim to eigen.Decompose.
//
// Returns:
//   - *Result: decomposition, projected coordinates, variance shares.
//
// Errors:
//   - ErrNilMatrix / ErrDimensionMismatch from the statistics stages, plus
//     anything eigen.Decompose reports, wrapped with the operation tag.
//
// Complexity:
//   - Dominated by covariance and decomposition: O(m·n² + n·cap·n²).
func Fit(X matrix.Matrix, opts ...eigen.Option) (*Result, error) {
	// Stage 1: standardize columns.
	Z, _, _, err := matrix.StandardizeColumns(X)
	if err != nil {
		return nil, pcaErrorf(opFit, err)
	}

	// Stage 2: covariance of the standardized data.
	cov, _, err := matrix.Covariance(Z)
	if err != nil {
		return nil, pcaErrorf(opFit, err)
	}

	// Stage 3: ordered eigen-decomposition.
	dec, err := eigen.Decompose(cov, opts...)
	if err != nil {
		return nil, pcaErrorf(opFit, err)
	}

	// Stage 4: principal coordinates and variance attribution.
	projected, err := Project(Z, dec)
	if err != nil {
		return nil, pcaErrorf(opFit, err)
	}
	ratios, err := ExplainedVariance(projected)
	if err != nil {
		return nil, pcaErrorf(opFit, err)
	}

	return &Result{
		Decomposition: dec,
		Projected:     projected,
		Ratios:        ratios,
	}, nil
}
