// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Dense storage type.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spectra/matrix"
)

// TestNewDense_DefaultZero verifies that a freshly constructed Dense is all zeros.
func TestNewDense_DefaultZero(t *testing.T) {
	const rows, cols = 4, 3
	m := MustDense(t, rows, cols)

	// immediately after creation all elements should be 0
	var i, j int // loop iterators
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			assert.Equal(t, 0.0, MustAt(t, m, i, j), "fresh Dense must be zero-initialized")
		}
	}
}

// TestNewDense_BadShape ensures negative dimensions report ErrBadShape.
func TestNewDense_BadShape(t *testing.T) {
	for _, tc := range []struct{ r, c int }{{-1, 2}, {2, -1}, {-3, -3}} {
		_, err := matrix.NewDense(tc.r, tc.c)
		assert.ErrorIs(t, err, matrix.ErrBadShape, "NewDense(%d,%d)", tc.r, tc.c)
	}
}

// TestNewDense_ZeroSized confirms 0×c and r×0 shapes are legal but carry no
// addressable elements.
func TestNewDense_ZeroSized(t *testing.T) {
	for _, tc := range []struct{ r, c int }{{0, 3}, {3, 0}, {0, 0}} {
		m, err := matrix.NewDense(tc.r, tc.c)
		require.NoError(t, err, "NewDense(%d,%d)", tc.r, tc.c)
		assert.Equal(t, tc.r, m.Rows())
		assert.Equal(t, tc.c, m.Cols())

		_, err = m.At(0, 0)
		assert.ErrorIs(t, err, matrix.ErrOutOfRange, "zero-sized matrix has no elements")
	}
}

// TestAtSet_Bounds verifies ErrOutOfRange on every invalid index combination.
func TestAtSet_Bounds(t *testing.T) {
	m := MustDense(t, 2, 2)

	for _, tc := range []struct{ i, j int }{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err := m.At(tc.i, tc.j)
		assert.ErrorIs(t, err, matrix.ErrOutOfRange, "At(%d,%d)", tc.i, tc.j)
		err = m.Set(tc.i, tc.j, 1.0)
		assert.ErrorIs(t, err, matrix.ErrOutOfRange, "Set(%d,%d)", tc.i, tc.j)
	}
}

// TestNewDenseFromRows_RoundTrip checks ingestion preserves every element.
func TestNewDenseFromRows_RoundTrip(t *testing.T) {
	rows := [][]float64{
		{1, 2, 3},
		{4, 5, 6},
	}
	m := MustFromRows(t, rows)

	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	CompareClose(t, rows, m)

	// the input slices must be copied, not aliased
	rows[0][0] = 99
	assert.Equal(t, 1.0, MustAt(t, m, 0, 0), "ingestion must copy, not alias")
}

// TestNewDenseFromRows_Errors covers empty, ragged and non-finite inputs.
func TestNewDenseFromRows_Errors(t *testing.T) {
	_, err := matrix.NewDenseFromRows(nil)
	assert.ErrorIs(t, err, matrix.ErrBadShape, "nil input")

	_, err = matrix.NewDenseFromRows([][]float64{{}})
	assert.ErrorIs(t, err, matrix.ErrBadShape, "empty first row")

	_, err = matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrRaggedRows, "ragged rows")

	_, err = matrix.NewDenseFromRows([][]float64{{1, math.NaN()}})
	assert.ErrorIs(t, err, matrix.ErrNaNInf, "NaN element")

	_, err = matrix.NewDenseFromRows([][]float64{{math.Inf(1), 0}})
	assert.ErrorIs(t, err, matrix.ErrNaNInf, "+Inf element")
}

// TestClone_Independence verifies a clone shares no storage with the original.
func TestClone_Independence(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	cl := m.Clone()

	MustSet(t, m, 0, 0, 42)
	assert.Equal(t, 1.0, MustAt(t, cl, 0, 0), "clone must be a deep copy")
	assert.Equal(t, 42.0, MustAt(t, m, 0, 0))
}

// TestRowCol_CopiesOut verifies Row/Col return copies with bounds checking.
func TestRowCol_CopiesOut(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 6}, row)

	col, err := m.Col(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 6}, col)

	// mutating the returned slice must not touch the matrix
	row[0] = -1
	assert.Equal(t, 4.0, MustAt(t, m, 1, 0))

	_, err = m.Row(2)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Col(3)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}
