// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the column statistics PCA builds on (centering, z-scoring,
//     covariance) as deterministic compositions over canonical kernels and
//     small ew* micro-kernels.
//   - Keep tight loops centralized in ew* where it improves reuse and consistency.
//
// Exposed API (via facades in api.go):
//   - CenterColumns(X)      -> (Xc, means)        // subtract per-column mean
//   - StandardizeColumns(X) -> (Z, means, stds)   // (X - mean) / std per column
//   - Covariance(X)         -> (Cov, means)       // sample covariance: (Xcᵀ Xc)/(r-1)
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Dense fast-paths avoid At/Set and operate on row-major flat buffers.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock flat-slice fast paths.
//   - StandardizeColumns is the canonical producer for the eigen/pca pipeline:
//     its covariance equals the correlation matrix of X.

package matrix

import "math"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opCenterColumns      = "CenterColumns"
	opStandardizeColumns = "StandardizeColumns"
	opCovariance         = "Covariance"
)

// ewBroadcastSubCols returns a copy of X with vals[j] subtracted from every
// element of column j. Internal micro-kernel shared by the centering paths.
//
// Contract: X non-nil; len(vals) == X.Cols() (enforced by callers).
// Determinism: fixed i→j order. Complexity: O(r*c) time and space.
func ewBroadcastSubCols(X Matrix, vals []float64) (Matrix, error) {
	r, c := X.Rows(), X.Cols()
	res, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}

	var i, j, base int
	// Fast-path: flat row-major walk.
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base = i * c
			for j = 0; j < c; j++ {
				res.data[base+j] = d.data[base+j] - vals[j]
			}
		}
		return res, nil
	}

	// Fallback: interface path via At (bounds already validated by shape).
	var v float64
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			v, err = X.At(i, j)
			if err != nil {
				return nil, err
			}
			res.data[base+j] = v - vals[j]
		}
	}

	return res, nil
}

// ewScaleCols returns a copy of X with column j multiplied by scale[j].
// Internal micro-kernel shared by the z-scoring path.
//
// Contract: X non-nil; len(scale) == X.Cols() (enforced by callers).
// Determinism: fixed i→j order. Complexity: O(r*c) time and space.
func ewScaleCols(X Matrix, scale []float64) (Matrix, error) {
	r, c := X.Rows(), X.Cols()
	res, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}

	var i, j, base int
	// Fast-path: flat row-major walk.
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base = i * c
			for j = 0; j < c; j++ {
				res.data[base+j] = d.data[base+j] * scale[j]
			}
		}
		return res, nil
	}

	// Fallback: interface path via At.
	var v float64
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			v, err = X.At(i, j)
			if err != nil {
				return nil, err
			}
			res.data[base+j] = v * scale[j]
		}
	}

	return res, nil
}

// columnMeans computes the per-column arithmetic mean in one deterministic pass.
// Contract: X non-nil with r ≥ 1 (enforced by callers). Complexity: O(r*c).
func columnMeans(X Matrix) ([]float64, error) {
	r, c := X.Rows(), X.Cols()
	means := make([]float64, c)

	var i, j, base int
	// Fast-path: accumulate straight off the flat buffer.
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base = i * c
			for j = 0; j < c; j++ {
				means[j] += d.data[base+j]
			}
		}
	} else {
		var v float64
		var err error
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				v, err = X.At(i, j)
				if err != nil {
					return nil, err
				}
				means[j] += v
			}
		}
	}

	// Convert sums to averages.
	invR := 1.0 / float64(r)
	for j = 0; j < c; j++ {
		means[j] *= invR
	}

	return means, nil
}

// centerColumns subtracts the per-column mean from every element.
// Implementation:
//   - Stage 1: Validate X (non-nil).
//   - Stage 2: Compute column means deterministically (Dense fast-path; At fallback).
//   - Stage 3: Apply ewBroadcastSubCols to produce a centered copy.
//
// Returns:
//   - Matrix: centered copy (r×c).
//   - []float64: column means (len=c).
//
// Errors:
//   - ErrNilMatrix from validation; wrapped At/NewDense errors from fallback paths.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for output (+ O(c) means).
//
// AI-Hints:
//   - For repeated centering, reuse the returned means to un-center later.
func centerColumns(X Matrix) (Matrix, []float64, error) {
	// Stage 1 (Validate): ensure X is present.
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	// Stage 2 (Means): single deterministic accumulation pass.
	means, err := columnMeans(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	// Stage 3 (Apply): broadcast-subtract the means over rows.
	Xc, err := ewBroadcastSubCols(X, means)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	// Return centered matrix and means.
	return Xc, means, nil
}

// standardizeColumns z-scores every column: Z[i,j] = (X[i,j] − mean_j) / std_j.
// Implementation:
//   - Stage 1: Validate X; require r ≥ 2 (sample std denominator).
//   - Stage 2: Center columns once, reusing the canonical implementation.
//   - Stage 3: Compute sample stds; degenerate std==0 ⇒ invStd=0 (column zeroed).
//   - Stage 4: Z = Xc * diag(invStd) via ewScaleCols.
//
// Returns:
//   - Matrix: standardized copy (r×c).
//   - []float64: column means.
//   - []float64: column sample stds.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (r<2), wrapped alloc/At errors.
//
// Determinism:
//   - Fixed accumulation order; stable output.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) (+ O(c) auxiliary slices).
//
// Notes:
//   - Zeroing degenerate columns (instead of dividing by 0) keeps downstream
//     covariance finite; such columns carry no variance to explain anyway.
func standardizeColumns(X Matrix) (Matrix, []float64, []float64, error) {
	// Stage 1 (Validate): ensure X is present.
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, nil, matrixErrorf(opStandardizeColumns, err)
	}
	// Sample std requires at least two observations.
	r, c := X.Rows(), X.Cols()
	if r < 2 {
		return nil, nil, nil, matrixErrorf(opStandardizeColumns, ErrDimensionMismatch)
	}

	// Stage 2 (Center): subtract column means.
	Xc, means, err := centerColumns(X)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opStandardizeColumns, err)
	}

	// Stage 3 (Stds): std[j] = sqrt( Σ_i Xc[i,j]² / (r-1) ).
	sumsq := make([]float64, c) // accumulate squared sums deterministically
	var i, j, base int
	var v float64
	if d, ok := Xc.(*Dense); ok {
		for i = 0; i < r; i++ {
			base = i * c
			for j = 0; j < c; j++ {
				v = d.data[base+j]
				sumsq[j] += v * v
			}
		}
	} else {
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				v, err = Xc.At(i, j)
				if err != nil {
					return nil, nil, nil, matrixErrorf(opStandardizeColumns, err)
				}
				sumsq[j] += v * v
			}
		}
	}

	inv := 1.0 / float64(r-1)
	stds := make([]float64, c)
	invStd := make([]float64, c)
	for j = 0; j < c; j++ {
		stds[j] = math.Sqrt(sumsq[j] * inv)
		if stds[j] > 0 {
			invStd[j] = 1.0 / stds[j]
		} // degenerate std==0 keeps invStd[j]=0 and zeroes the column
	}

	// Stage 4 (Apply): Z = Xc * diag(invStd).
	Z, err := ewScaleCols(Xc, invStd)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opStandardizeColumns, err)
	}

	// Return standardized matrix, means and stds.
	return Z, means, stds, nil
}

// covariance computes sample covariance of columns: Cov = (Xcᵀ * Xc)/(r-1).
// Implementation:
//   - Stage 1: Validate X, require r ≥ 2 (sample denominator).
//   - Stage 2: Center columns once; then compose Transpose → Mul → Scale.
//
// Returns:
//   - Matrix: Covariance (c×c), symmetric; diagonal equals per-column sample variances.
//   - []float64: column means used for centering.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (r<2), wrapped alloc/At/Set errors.
//
// Complexity:
//   - Time O(r*c + r*c²), Space O(c²).
//
// Notes:
//   - Result is positive semi-definite on well-formed data (modulo numeric noise).
//
// AI-Hints:
//   - Feed the result straight into eigen.Decompose; symmetry holds by construction.
func covariance(X Matrix) (Matrix, []float64, error) {
	// Stage 1 (Validate): ensure X is present.
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	// Sample covariance requires at least two observations.
	if X.Rows() < 2 {
		return nil, nil, matrixErrorf(opCovariance, ErrDimensionMismatch)
	}

	// Stage 2 (Center): reuse the canonical centering implementation.
	Xc, means, err := centerColumns(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	// Stage 3 (Compute): Cov = (Xcᵀ Xc)/(r-1) via canonical kernels.
	Xct, err := Transpose(Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	G, err := Mul(Xct, Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	Cov, err := Scale(G, 1.0/float64(X.Rows()-1))
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	return Cov, means, nil
}
