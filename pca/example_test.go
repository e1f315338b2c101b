// SPDX-License-Identifier: MIT

package pca_test

import (
	"fmt"

	"github.com/katalvlaran/spectra/eigen"
	"github.com/katalvlaran/spectra/matrix"
	"github.com/katalvlaran/spectra/pca"
)

// ExampleFit analyzes two perfectly correlated columns: standardization and
// decomposition collapse them onto a single principal axis.
func ExampleFit() {
	X, _ := matrix.NewDenseFromRows([][]float64{
		{1, 2},
		{2, 4},
		{3, 6},
	})

	res, _ := pca.Fit(X)
	fmt.Printf("axes=%d share=%.2f\n", res.Decomposition.Len(), res.Ratios[0])
	// Output:
	// axes=1 share=1.00
}

// ExampleProject maps observations onto a precomputed decomposition.
func ExampleProject() {
	cov, _ := matrix.NewDenseFromRows([][]float64{
		{2, 0},
		{0, 1},
	})
	dec, _ := eigen.Decompose(cov)

	X, _ := matrix.NewDenseFromRows([][]float64{
		{1, 0},
		{0, 1},
	})
	projected, _ := pca.Project(X, dec)
	fmt.Printf("%d x %d\n", projected.Rows(), projected.Cols())
	// Output:
	// 2 x 2
}
