// SPDX-License-Identifier: MIT

// Package eigen: full decomposition loop (solve → filter → deflate).
package eigen

import (
	"math"
	"sort"

	"github.com/katalvlaran/spectra/matrix"
)

// Decompose extracts every significant eigenpair of a symmetric matrix.
// Implementation:
//   - Stage 1 (Validate): non-nil, square, symmetric within epsilon.
//   - Stage 2 (Prepare): clone a working copy; the input is never mutated.
//   - Stage 3 (Extract): n rounds of powerIterate → threshold filter →
//     in-place deflation. Deflation always runs, including for discarded
//     pairs, so each round targets a fresh direction.
//   - Stage 4 (Finalize): stable sort by descending eigenvalue magnitude.
//
// Behavior highlights:
//   - Returns 0..n pairs: near-null directions (|λ| below the discard
//     threshold) are silently dropped, so a rank-r matrix yields r pairs and
//     the zero matrix yields an empty decomposition.
//   - Non-convergent rounds still contribute their best-effort pair; they are
//     tallied in Decomposition.Unconverged rather than raised as errors.
//   - Ordering is by |value|, not by signed value: on positive semi-definite
//     input (covariance matrices) the two coincide, but an indefinite matrix
//     such as diag(-2, 1) yields the signed sequence (-2, 1).
//   - For a symmetric input the retained eigenvectors are mutually orthogonal
//     up to the convergence tolerance.
//
// Inputs:
//   - m: non-nil symmetric matrix (symmetry checked within the epsilon
//     option).
//   - opts: WithEpsilon, WithMaxIterations, WithDiscardThreshold.
//
// Returns:
//   - Decomposition: retained pairs, |Value| descending.
//
// Errors:
//   - ErrNilMatrix / ErrDimensionMismatch / ErrAsymmetry (from
//     ValidateSymmetric), wrapped with the operation tag.
//
// Determinism:
//   - Inherited from powerIterate plus a stable sort; identical inputs and
//     options produce identical decompositions.
//
// Complexity:
//   - Time O(n · cap · n²) worst case, Space O(n²) for the working copy.
func Decompose(m matrix.Matrix, opts ...Option) (Decomposition, error) {
	o := gatherOptions(opts...)

	// Symmetry within the convergence tolerance; also rejects nil/non-square.
	if err := matrix.ValidateSymmetric(m, o.eps); err != nil {
		return Decomposition{}, eigenErrorf(opDecompose, err)
	}

	n := m.Rows()
	work := m.Clone() // deflation mutates only this copy
	dec := Decomposition{Pairs: make([]EigenPair, 0, n)}

	var (
		pair  EigenPair
		stats Stats
		err   error
		round int // extraction round, one per matrix row
	)
	for round = 0; round < n; round++ {
		if pair, stats, err = powerIterate(work, o); err != nil {
			return Decomposition{}, eigenErrorf(opDecompose, err)
		}
		if !stats.Converged {
			dec.Unconverged++
		}

		// Threshold filter: magnitudes below the cutoff belong to the
		// numerical null space.
		if math.Abs(pair.Value) >= o.discard {
			dec.Pairs = append(dec.Pairs, pair)
		}

		// Deflate unconditionally so the next round cannot rediscover the
		// same direction, discarded or not.
		if err = deflateInPlace(work, pair); err != nil {
			return Decomposition{}, eigenErrorf(opDecompose, err)
		}
	}

	// Deflation emits in roughly descending magnitude already; the stable
	// sort pins the contract against rounding-induced swaps.
	sort.SliceStable(dec.Pairs, func(a, b int) bool {
		return math.Abs(dec.Pairs[a].Value) > math.Abs(dec.Pairs[b].Value)
	})

	return dec, nil
}
