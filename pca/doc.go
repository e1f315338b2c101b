// SPDX-License-Identifier: MIT

// Package pca — principal component analysis on top of eigen and matrix. 📉
//
// What ❓
//
// pca turns an eigen-decomposition of a covariance matrix into usable
// analysis output:
//
//   - Project maps observations onto the retained principal axes (X·E,
//     eigenvectors as columns).
//   - ExplainedVariance reports how much of the total sample variance each
//     projected coordinate carries, normalized to sum to 1.
//   - Fit bundles the whole pipeline: standardize columns → covariance →
//     decompose → project → explained variance.
//
// Why ✨
//
//   - Degenerate inputs stay well-defined: an empty decomposition projects to
//     an m×0 matrix, and an all-zero variance total yields zero ratios rather
//     than NaN.
//   - Deterministic end to end: every stage inherits the fixed-seed,
//     fixed-loop-order guarantees of the lower layers.
//
// Quick start 🚀
//
//	res, err := pca.Fit(observations)
//	if err != nil {
//	    // matrix sentinels via errors.Is
//	}
//	fmt.Println(res.Ratios) // variance share per principal axis
package pca
