// SPDX-License-Identifier: MIT

package eigen_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spectra/matrix"
)

// testTol is the default comparison tolerance for solver-quality assertions.
const testTol = 1e-4

// MustFromRows builds a Dense from literal rows or fails the test.
func MustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err, "NewDenseFromRows")

	return m
}

// MustAt fetches one element or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// vecNorm is a bare Euclidean norm for assertion arithmetic.
func vecNorm(x []float64) float64 {
	var sq float64
	for _, v := range x {
		sq += v * v
	}

	return math.Sqrt(sq)
}

// residual computes ‖M·v − λ·v‖, the defect of (λ, v) as an eigenpair of M.
func residual(t *testing.T, m matrix.Matrix, lambda float64, v []float64) float64 {
	t.Helper()
	mv, err := matrix.MatVec(m, v)
	require.NoError(t, err, "MatVec")

	diff := make([]float64, len(v))
	for i := range v {
		diff[i] = mv[i] - lambda*v[i]
	}

	return vecNorm(diff)
}
