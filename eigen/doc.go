// SPDX-License-Identifier: MIT

// Package eigen — ordered eigen-decomposition for symmetric matrices. 🔭
//
// What ❓
//
// eigen extracts eigenvalue/eigenvector pairs from a real symmetric matrix
// using power iteration with Hotelling deflation:
//
//  1. Solve — power iteration finds the dominant pair of the working matrix:
//     start from a deterministic all-ones direction, repeatedly apply the
//     matrix and renormalize, stop when the direction settles (or the
//     iteration cap is reached). The eigenvalue is the Rayleigh quotient.
//  2. Filter — pairs whose eigenvalue magnitude falls below the discard
//     threshold belong to the numerical null space and are dropped.
//  3. Deflate — subtract λ·eeᵀ so the next round surfaces the next pair.
//
// Repeating the cycle n times yields 0..n pairs ordered by descending
// eigenvalue magnitude.
//
// Why ✨
//
//   - Deterministic: fixed seed, fixed loop order, no randomness. Identical
//     inputs produce identical outputs on every run.
//   - Honest about quality: a solve that exhausts its iteration cap is not an
//     error; the best-effort pair is returned and the outcome is reported as
//     data (Stats.Converged, Decomposition.Unconverged).
//   - Small surface: PowerIteration, Deflate, Decompose, plus functional
//     Options with documented defaults.
//
// Quick start 🚀
//
//	cov, _ := matrix.NewDenseFromRows(rows) // any symmetric matrix.Matrix
//	dec, err := eigen.Decompose(cov, eigen.WithEpsilon(1e-6))
//	if err != nil {
//	    // matrix.ErrDimensionMismatch / matrix.ErrAsymmetry via errors.Is
//	}
//	fmt.Println(dec.Values()) // descending magnitude
//
// See the sibling packages: matrix (dense storage and kernels) and pca
// (projection and explained variance built on this decomposer).
package eigen
