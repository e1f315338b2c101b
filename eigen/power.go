// SPDX-License-Identifier: MIT

// Package eigen: dominant-pair solver (power iteration).
package eigen

import (
	"fmt"

	"github.com/katalvlaran/spectra/matrix"
)

// Operation tags used in wrapped errors (single source of truth).
const (
	opPowerIteration = "PowerIteration"
	opDeflate        = "Deflate"
	opDecompose      = "Decompose"
	opVectors        = "Decomposition.Vectors"
)

// eigenErrorf unifies error wrapping with an operation tag, preserving the
// underlying sentinel for errors.Is.
func eigenErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// PowerIteration extracts the dominant eigenpair of a square matrix.
// Implementation:
//   - Stage 1 (Validate): non-nil, square input.
//   - Stage 2 (Iterate): from the deterministic all-ones direction, repeat
//     x' = normalize(M·x) until ‖x − x'‖ falls below epsilon or the iteration
//     cap is reached.
//   - Stage 3 (Finalize): eigenvalue via the Rayleigh quotient xᵀ(M·x).
//
// Behavior highlights:
//   - Deterministic: fixed seed, no randomness; identical inputs yield
//     identical pairs and step counts.
//   - Best-effort on non-convergence: reaching the cap is NOT an error; the
//     current direction is returned and Stats.Converged is false.
//   - A direction mapped into the null space (‖M·x‖ = 0, e.g. the zero
//     matrix) terminates immediately with eigenvalue 0 and the current unit
//     direction.
//
// Inputs:
//   - m: non-nil square matrix. Symmetry is the caller's contract; Decompose
//     enforces it, the raw solver does not.
//   - opts: WithEpsilon, WithMaxIterations (WithDiscardThreshold is ignored
//     here; filtering is the decomposer's job).
//
// Returns:
//   - EigenPair: dominant eigenvalue estimate with its unit eigenvector.
//   - Stats: steps performed and whether the run converged.
//   - error: validation failures only.
//
// Errors:
//   - ErrNilMatrix / ErrDimensionMismatch (from validators), wrapped with
//     the operation tag.
//
// Determinism:
//   - Fixed all-ones seed and fixed loop order.
//
// Complexity:
//   - Time O(steps · n²) for an n×n matrix, Space O(n).
//
// Notes:
//   - With a sign-alternating dominant eigenvalue (λ < 0) the direction flips
//     every step and the difference test never fires; the run exhausts the
//     cap and reports Converged=false while the Rayleigh quotient still
//     estimates λ correctly.
func PowerIteration(m matrix.Matrix, opts ...Option) (EigenPair, Stats, error) {
	o := gatherOptions(opts...)

	// Validate once at the boundary; the inner loop assumes a sane shape.
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return EigenPair{}, Stats{}, eigenErrorf(opPowerIteration, err)
	}

	return powerIterate(m, o)
}

// powerIterate is the boundary-free core shared with Decompose: the input is
// assumed non-nil and square.
func powerIterate(m matrix.Matrix, o Options) (EigenPair, Stats, error) {
	n := m.Rows()

	// Deterministic seed: the all-ones direction, scaled onto the unit sphere.
	x := make([]float64, n)
	var i int // loop iterator
	for i = 0; i < n; i++ {
		x[i] = 1.0
	}
	x, _, err := matrix.Normalize(x)
	if err != nil {
		return EigenPair{}, Stats{}, eigenErrorf(opPowerIteration, err)
	}

	var (
		stats Stats
		y     []float64 // M·x of the current step
		next  []float64 // normalized successor direction
		norm  float64   // ‖M·x‖
		diff  []float64 // x − next
		step  float64   // ‖x − next‖
	)
	for stats.Steps = 1; stats.Steps <= o.maxIterations; stats.Steps++ {
		if y, err = matrix.MatVec(m, x); err != nil {
			return EigenPair{}, Stats{}, eigenErrorf(opPowerIteration, err)
		}
		if next, norm, err = matrix.Normalize(y); err != nil {
			return EigenPair{}, Stats{}, eigenErrorf(opPowerIteration, err)
		}

		// Null-space hit: x has no component the matrix can amplify.
		// The current unit direction is final; the Rayleigh quotient is 0.
		if norm == 0 {
			stats.Converged = true

			break
		}

		if diff, err = matrix.SubVec(x, next); err != nil {
			return EigenPair{}, Stats{}, eigenErrorf(opPowerIteration, err)
		}
		if step, err = matrix.Norm(diff); err != nil {
			return EigenPair{}, Stats{}, eigenErrorf(opPowerIteration, err)
		}

		x = next
		if step < o.eps {
			stats.Converged = true

			break
		}
	}
	// Clamp the counter when the loop ran to exhaustion.
	if stats.Steps > o.maxIterations {
		stats.Steps = o.maxIterations
	}

	// Rayleigh quotient λ = xᵀ(M·x) on the final direction.
	if y, err = matrix.MatVec(m, x); err != nil {
		return EigenPair{}, Stats{}, eigenErrorf(opPowerIteration, err)
	}
	lambda, err := matrix.Dot(x, y)
	if err != nil {
		return EigenPair{}, Stats{}, eigenErrorf(opPowerIteration, err)
	}

	return EigenPair{Value: lambda, Vector: x}, stats, nil
}
