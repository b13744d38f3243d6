// SPDX-License-Identifier: MIT

// Package fem assembles and solves the linear static system K·U = F on a
// regular quadrilateral mesh.
//
// A Solver is bound once to a mesh, an element stiffness matrix KE and a set
// of resolved boundary conditions; each Solve call then takes a design field x
// (rows = nely, cols = nelx) and the penalization exponent p:
//
//	K = Σ_e x_e^p · KE  scattered at the element's 8 DOFs
//	U_free = K_ff⁻¹ · F_free,  U_fixed = 0
//
// The global matrix is dense and rebuilt per call. Two interchangeable
// backends factor K_ff:
//
//   - BackendLU (default): gonum mat.LU via matrix.Solve.
//   - BackendDoolittle: the in-package Doolittle LU via matrix.SolveLU.
//
// A singular or numerically non-invertible K_ff yields an error matching
// matrix.ErrSingular (errors.Is); so does a non-finite solution.
package fem
