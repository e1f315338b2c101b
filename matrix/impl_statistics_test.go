// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the column statistics.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spectra/matrix"
)

// TestCenterColumns_ZeroMeans verifies the centered copy has zero column means
// and that the reported means match a hand computation.
func TestCenterColumns_ZeroMeans(t *testing.T) {
	X := MustFromRows(t, [][]float64{
		{1, 10},
		{2, 20},
		{3, 30},
	})

	Xc, means, err := matrix.CenterColumns(X)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2, 20}, means, testTol)

	// every column of the centered copy must sum to zero
	for j := 0; j < Xc.Cols(); j++ {
		sum := 0.0
		for i := 0; i < Xc.Rows(); i++ {
			sum += MustAt(t, Xc, i, j)
		}
		assert.InDelta(t, 0.0, sum, testTol, "column %d not centered", j)
	}

	// the input must be untouched
	CompareClose(t, [][]float64{{1, 10}, {2, 20}, {3, 30}}, X)
}

// TestStandardizeColumns_UnitVariance checks z-scoring produces mean 0 and
// sample variance 1 per non-degenerate column, and zeroes constant columns.
func TestStandardizeColumns_UnitVariance(t *testing.T) {
	X := MustFromRows(t, [][]float64{
		{1, 5, 7},
		{2, 5, 9},
		{3, 5, 11},
		{4, 5, 13},
	})

	Z, means, stds, err := matrix.StandardizeColumns(X)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, means[0], testTol)
	assert.Equal(t, 0.0, stds[1], "constant column has zero std")

	r := Z.Rows()
	for j := 0; j < Z.Cols(); j++ {
		mean, sumsq := 0.0, 0.0
		for i := 0; i < r; i++ {
			mean += MustAt(t, Z, i, j)
		}
		mean /= float64(r)
		for i := 0; i < r; i++ {
			d := MustAt(t, Z, i, j) - mean
			sumsq += d * d
		}
		variance := sumsq / float64(r-1)

		assert.InDelta(t, 0.0, mean, testTol, "column %d mean", j)
		if j == 1 {
			assert.InDelta(t, 0.0, variance, testTol, "degenerate column must be zeroed")
		} else {
			assert.InDelta(t, 1.0, variance, testTol, "column %d variance", j)
		}
		// no NaN leakage from the degenerate column
		for i := 0; i < r; i++ {
			assert.False(t, math.IsNaN(MustAt(t, Z, i, j)))
		}
	}
}

// TestStandardizeColumns_TooFewRows ensures the r>=2 precondition is enforced.
func TestStandardizeColumns_TooFewRows(t *testing.T) {
	X := MustFromRows(t, [][]float64{{1, 2}})
	_, _, _, err := matrix.StandardizeColumns(X)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestCovariance_KnownValues checks a hand-computed 2-column covariance and
// the structural properties (symmetry, variances on the diagonal).
func TestCovariance_KnownValues(t *testing.T) {
	// columns: x = {1,2,3}, y = {2,4,6}  ⇒  var(x)=1, var(y)=4, cov(x,y)=2
	X := MustFromRows(t, [][]float64{
		{1, 2},
		{2, 4},
		{3, 6},
	})

	Cov, means, err := matrix.Covariance(X)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2, 4}, means, testTol)
	CompareClose(t, [][]float64{{1, 2}, {2, 4}}, Cov)

	assert.NoError(t, matrix.ValidateSymmetric(Cov, testTol), "covariance must be symmetric")
}

// TestCovariance_TooFewRows ensures the sample denominator precondition holds.
func TestCovariance_TooFewRows(t *testing.T) {
	X := MustFromRows(t, [][]float64{{1, 2}})
	_, _, err := matrix.Covariance(X)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
