// Package grid stores per-element scalar fields over a regular 2D mesh:
// the BESO design (density) grid and the sensitivity fields derived from it.
//
// What:
//
//   - Field is a rectangular, row-major float64 grid with Rows = elements
//     along y (nely) and Cols = elements along x (nelx).
//   - Reductions (Sum, Min, Max, Mean) and element-wise Average use gonum/floats.
//   - ConnectedComponents finds contiguous "solid" regions (value ≥ threshold)
//     under 4- or 8-connectivity.
//
// Complexity:
//
//   - Construction, Clone, reductions: O(W×H).
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = 4 or 8).
//
// Errors:
//
//   - ErrEmptyGrid: requested or supplied grid has no rows or no columns.
//   - ErrNonRectangular: rows of a 2D slice have differing lengths.
//   - ErrOutOfRange: (row, col) outside the grid.
//   - ErrShapeMismatch: binary operation on fields of different shapes.
package grid
