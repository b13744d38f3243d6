// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra primitives used by the
// finite-element layer of sbeso.
//
// The matrix package provides:
//
//   - Dense, a flat row-major float64 matrix implementing the Matrix interface.
//   - Central validators (nil, shape, square, symmetry, finiteness).
//   - Kernels needed by assembly and sensitivity analysis: AddAt scatter,
//     Submatrix/Gather extraction over index sets, MatVec and QuadForm.
//   - Two dense solvers: Solve (LAPACK-style LU from gonum) and SolveLU
//     (Doolittle LU with partial pivoting, pure Go).
//
// Errors are package-level sentinels prefixed "matrix: ..." and are matched
// with errors.Is. Kernels wrap them with an operation tag ("Solve: ...").
//
// Dense matrices are O(n²) in memory, so they suit the small and medium
// meshes a regular-grid BESO run uses.
package matrix
