// Package spectra is an in-memory toolkit for ordered eigen-decomposition
// of symmetric matrices and principal component analysis — from dense
// primitives to variance-explained statistics.
//
// 🚀 What is spectra?
//
//	A small, deterministic, zero-dependency library that brings together:
//		• Dense primitives: row-major matrices & vector kernels with strict validation
//		• Power iteration: dominant eigenpair extraction with a bounded, reproducible loop
//		• Deflation: rank-1 spectrum removal exposing the next eigenpair
//		• Decomposition: ordered, orthonormal, null-space-filtered eigenpair sets
//		• PCA: projection onto principal axes + per-axis explained variance
//
// ✨ Why choose spectra?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Reproducible – deterministic seeding, fixed loop orders, no hidden randomness
//   - Pure Go – no cgo, no hidden deps
//   - Honest numerics – bounded iteration with explicit convergence reporting
//
// Under the hood, everything is organized under three subpackages:
//
//	matrix/ — Dense storage, linear-algebra kernels, validators & column statistics
//	eigen/  — power-iteration solver, deflator and the ordered eigen-decomposer
//	pca/    — projection of observations onto principal axes & variance analysis
//
// Quick sketch of the pipeline:
//
//	X (m×n, standardized) → Covariance (n×n) → Decompose → Project → ExplainedVariance
//
// Dive into the package docs and example tests for full walkthroughs.
//
//	go get github.com/katalvlaran/spectra
package spectra
