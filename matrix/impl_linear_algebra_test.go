// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the universal linear-algebra kernels.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spectra/matrix"
)

// TestAdd_Sub_Correctness checks element-wise add/sub on a small fixture.
func TestAdd_Sub_Correctness(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustFromRows(t, [][]float64{{10, 20}, {30, 40}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	CompareClose(t, [][]float64{{11, 22}, {33, 44}}, sum)

	diff, err := matrix.Sub(b, a)
	require.NoError(t, err)
	CompareClose(t, [][]float64{{9, 18}, {27, 36}}, diff)

	// operands must be untouched
	CompareClose(t, [][]float64{{1, 2}, {3, 4}}, a)
}

// TestAdd_ShapeMismatch verifies the sentinel on incompatible shapes.
func TestAdd_ShapeMismatch(t *testing.T) {
	a := MustDense(t, 2, 2)
	b := MustDense(t, 2, 3)

	_, err := matrix.Add(a, b)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Add(nil, b)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMul_KnownProduct checks a hand-computed 2×3 × 3×2 product.
func TestMul_KnownProduct(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := MustFromRows(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})

	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	CompareClose(t, [][]float64{{58, 64}, {139, 154}}, c)
}

// TestMul_FastPathMatchesFallback forces the interface fallback through the
// hide wrapper and asserts it agrees with the *Dense fast path exactly.
func TestMul_FastPathMatchesFallback(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, -2}, {0, 3}})
	b := MustFromRows(t, [][]float64{{5, 6}, {7, -8}})

	fast, err := matrix.Mul(a, b)
	require.NoError(t, err)
	slow, err := matrix.Mul(hide{a}, b)
	require.NoError(t, err)

	for i := 0; i < fast.Rows(); i++ {
		for j := 0; j < fast.Cols(); j++ {
			assert.Equal(t, MustAt(t, fast, i, j), MustAt(t, slow, i, j),
				"fast path and fallback diverge at [%d,%d]", i, j)
		}
	}
}

// TestMul_InnerMismatch ensures Mul rejects incompatible inner dimensions.
func TestMul_InnerMismatch(t *testing.T) {
	a := MustDense(t, 2, 3)
	b := MustDense(t, 2, 2)

	_, err := matrix.Mul(a, b)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestTranspose_Shape verifies dimensions flip and entries move to (j,i).
func TestTranspose_Shape(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	mt, err := matrix.Transpose(m)
	require.NoError(t, err)
	CompareClose(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, mt)
}

// TestScale_Correctness checks α·M, including the zeroing case α=0.
func TestScale_Correctness(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, -2}, {3, 0}})

	doubled, err := matrix.Scale(m, 2)
	require.NoError(t, err)
	CompareClose(t, [][]float64{{2, -4}, {6, 0}}, doubled)

	zeroed, err := matrix.Scale(m, 0)
	require.NoError(t, err)
	CompareClose(t, [][]float64{{0, 0}, {0, 0}}, zeroed)
}

// TestMatVec_Correctness checks y = M·x on both fast and fallback paths.
func TestMatVec_Correctness(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	x := []float64{10, 100}

	y, err := matrix.MatVec(m, x)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{210, 430, 650}, y, testTol)

	ySlow, err := matrix.MatVec(hide{m}, x)
	require.NoError(t, err)
	assert.Equal(t, y, ySlow, "fast path and fallback must agree")

	_, err = matrix.MatVec(m, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestSymmetrize_RepairsDrift verifies (M+Mᵀ)/2 restores exact symmetry.
func TestSymmetrize_RepairsDrift(t *testing.T) {
	m := MustFromRows(t, [][]float64{{2, 1.0001}, {0.9999, 1}})

	s, err := matrix.Symmetrize(m)
	require.NoError(t, err)
	assert.NoError(t, matrix.ValidateSymmetric(s, 0), "symmetrized matrix must be exactly symmetric")
	assert.InDelta(t, 1.0, MustAt(t, s, 0, 1), 1e-12)
}

// TestIdentity_Facades covers NewIdentity, IdentityLike and ZerosLike.
func TestIdentity_Facades(t *testing.T) {
	I, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	CompareClose(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, I)

	like, err := matrix.IdentityLike(I)
	require.NoError(t, err)
	CompareClose(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, like)

	_, err = matrix.IdentityLike(MustDense(t, 2, 3))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch, "IdentityLike requires square input")

	z, err := matrix.ZerosLike(I)
	require.NoError(t, err)
	CompareClose(t, [][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}, z)
}
