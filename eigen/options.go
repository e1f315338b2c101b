// SPDX-License-Identifier: MIT

// Package eigen: functional configuration for the solver and the decomposer.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Policy:
//   - Options fields are unexported; public entry points consume ...Option.
//   - Constructors panic only on programmer error (NaN epsilon, zero cap).
//   - No global state; resolution is pure and deterministic.
package eigen

import "math"

// DEFAULTS - single source of truth for zero-option behavior.
const (
	// DefaultEpsilon is the convergence tolerance: a power-iteration step
	// counts as converged when the direction moves by less than this amount
	// in Euclidean norm.
	DefaultEpsilon = 1e-5

	// DefaultMaxIterations caps the multiply-normalize steps of a single
	// power-iteration run. Hitting the cap is reported via Stats.Converged,
	// never as an error.
	DefaultMaxIterations = 100

	// DefaultDiscardThreshold is the null-space cutoff: extracted pairs with
	// |value| below it are dropped from the decomposition.
	DefaultDiscardThreshold = 1e-5
)

// Internal panic messages (no magic strings).
const (
	panicEpsilonInvalid   = "eigen: WithEpsilon: eps must be finite, positive"
	panicMaxIterInvalid   = "eigen: WithMaxIterations: n must be >= 1"
	panicThresholdInvalid = "eigen: WithDiscardThreshold: t must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and resolve them via gatherOptions.
type Options struct {
	eps           float64 // > 0; DefaultEpsilon
	maxIterations int     // >= 1; DefaultMaxIterations
	discard       float64 // >= 0; DefaultDiscardThreshold
}

// WithEpsilon sets the convergence tolerance of a power-iteration run.
// Implementation:
//   - Stage 1: validate eps is finite and > 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Inputs:
//   - eps: positive finite tolerance.
//
// Returns:
//   - Option: functional setter.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Notes:
//   - Smaller eps sharpens eigenvectors at the cost of more steps; pair it
//     with WithMaxIterations when tightening below the default.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithMaxIterations caps the steps of a single power-iteration run.
// Implementation:
//   - Stage 1: validate n >= 1.
//   - Stage 2: return a setter that writes n into Options.
//
// Inputs:
//   - n: iteration cap, at least 1.
//
// Returns:
//   - Option: functional setter.
//
// Errors:
//   - Panics with a stable message when n < 1.
//
// Notes:
//   - The cap bounds work per pair; Decompose performs one run per matrix row,
//     so total work is O(rows · n · cost(MatVec)).
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIterations = n }
}

// WithDiscardThreshold sets the null-space cutoff used by Decompose.
// Implementation:
//   - Stage 1: validate t is finite and >= 0.
//   - Stage 2: return a setter that writes t into Options.
//
// Inputs:
//   - t: non-negative finite cutoff; 0 retains every extracted pair.
//
// Returns:
//   - Option: functional setter.
//
// Errors:
//   - Panics with a stable message when t is invalid.
func WithDiscardThreshold(t float64) Option {
	if math.IsNaN(t) || math.IsInf(t, 0) || t < 0 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.discard = t }
}

// gatherOptions applies user-provided setters on top of the documented
// defaults; last-writer-wins. Canonical internal entry for public APIs.
// Time: O(k) for k options. Space: O(1).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:           DefaultEpsilon,
		maxIterations: DefaultMaxIterations,
		discard:       DefaultDiscardThreshold,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
