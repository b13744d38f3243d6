// SPDX-License-Identifier: MIT

package matrix

// Matrix is the read-only view the kernels and validators accept.
// *Dense is the only implementation in this module and takes the flat-slice
// fast path; anything else is read element by element through At.
type Matrix interface {
	Rows() int
	Cols() int

	// At returns element (i, j), or ErrOutOfRange outside the shape.
	At(i, j int) (float64, error)
}
