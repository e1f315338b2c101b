// Package matrix provides dense linear-algebra primitives for spectral
// computations: row-major float64 storage, element kernels, vector
// operations and the column statistics feeding PCA.
//
// The matrix package provides:
//
//   - Dense, a row-major flat-slice implementation of the Matrix interface,
//     with O(1) bounds-checked element access and deep Clone.
//   - Canonical kernels (Add, Sub, Mul, Transpose, Scale, MatVec) with a
//     *Dense fast-path and a generic interface fallback.
//   - Vector helpers (Dot, Norm, Normalize, Outer, SubVec) used by the
//     power-iteration solver in the eigen package.
//   - Column statistics (CenterColumns, StandardizeColumns, Covariance)
//     expressed as deterministic compositions over the kernels.
//
// All operations validate fail-fast through central validators and report
// package sentinel errors matchable via errors.Is. Kernels never mutate
// their inputs; every result is freshly allocated.
//
// Matrices are best for dense or small data where O(r·c) memory is
// acceptable. See the examples in this package for usage patterns.
package matrix
