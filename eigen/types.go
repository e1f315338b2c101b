// SPDX-License-Identifier: MIT

// Package eigen: result types shared by the solver and the decomposer.
package eigen

import (
	"github.com/katalvlaran/spectra/matrix"
)

// EigenPair couples one eigenvalue with its unit-length eigenvector.
//
// Invariants (maintained by PowerIteration / Decompose):
//   - Vector has Euclidean norm 1 (up to floating-point rounding).
//   - Vector length equals the order of the matrix it was extracted from.
//
// The sign of Vector is not canonical: e and −e span the same eigenspace,
// and which one the solver lands on depends only on the deterministic seed.
type EigenPair struct {
	Value  float64
	Vector []float64
}

// Stats reports how a single power-iteration run behaved.
//
// Fields:
//   - Steps     — multiply-normalize steps actually performed (≤ the cap).
//   - Converged — true when the direction settled within epsilon before the
//     cap; false when the run was cut off and the result is best-effort.
//
// Non-convergence is a quality signal, not an error: the returned pair is
// still the best available estimate and remains usable downstream.
type Stats struct {
	Steps     int
	Converged bool
}

// Decomposition is an ordered collection of eigenpairs, descending by
// eigenvalue magnitude. It may hold fewer pairs than the matrix order when
// near-null directions were discarded, down to zero pairs for a zero matrix.
type Decomposition struct {
	// Pairs holds the retained eigenpairs, |Value| descending.
	Pairs []EigenPair

	// Unconverged counts solver runs that exhausted the iteration cap.
	// Zero means every retained pair converged within epsilon.
	Unconverged int
}

// Len returns the number of retained eigenpairs.
func (d Decomposition) Len() int { return len(d.Pairs) }

// Values returns the eigenvalues in stored (descending-magnitude) order.
// The returned slice is a copy; mutating it does not affect d.
func (d Decomposition) Values() []float64 {
	vals := make([]float64, len(d.Pairs))
	var i int // loop iterator
	for i = range d.Pairs {
		vals[i] = d.Pairs[i].Value
	}

	return vals
}

// Vectors assembles the eigenvectors as the columns of an n×k Dense matrix,
// k = Len(), columns in stored order. An empty decomposition yields a 0×0
// matrix. Eigenvector data is copied; the result does not alias d.
func (d Decomposition) Vectors() (*matrix.Dense, error) {
	if len(d.Pairs) == 0 {
		return matrix.NewDense(0, 0)
	}

	n := len(d.Pairs[0].Vector) // rows = matrix order
	k := len(d.Pairs)           // cols = retained pairs
	E, err := matrix.NewDense(n, k)
	if err != nil {
		return nil, eigenErrorf(opVectors, err)
	}

	var i, j int // loop iterators
	for j = 0; j < k; j++ {
		for i = 0; i < n; i++ {
			if err = E.Set(i, j, d.Pairs[j].Vector[i]); err != nil {
				return nil, eigenErrorf(opVectors, err)
			}
		}
	}

	return E, nil
}
