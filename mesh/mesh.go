// SPDX-License-Identifier: MIT

// Package mesh describes the regular rectangular grid of 4-node quadrilateral
// elements: node numbering, degree-of-freedom numbering and the element →
// DOF map shared by stiffness assembly and sensitivity analysis.
//
// Conventions (all 0-based):
//
//   - Elements: column elx ∈ [0, nelx), row ely ∈ [0, nely); row 0 is the top.
//   - Nodes: column ∈ [0, nelx], row ∈ [0, nely]; node = (nely+1)*col + row,
//     i.e. nodes are numbered down each column, left to right.
//   - DOFs: node n owns 2n (x) and 2n+1 (y).
//
// The 1-based form of the node formula, (nely+1)*(col-1) + row, is the same
// numbering shifted by one; ElementDOFs is the 0-based translation of the
// classic [2n1-1, 2n1, 2n2-1, 2n2, 2n2+1, 2n2+2, 2n1+1, 2n1+2] edof vector.
package mesh

import (
	"errors"
	"fmt"
)

// ErrBadMesh indicates a non-positive element count.
var ErrBadMesh = errors.New("mesh: element counts must be > 0")

// DOFsPerNode is 2 for plane stress (ux, uy).
const DOFsPerNode = 2

// DOFsPerElement is 8 for a 4-node quadrilateral.
const DOFsPerElement = 4 * DOFsPerNode

// Mesh is a nelx × nely grid of square unit elements.
type Mesh struct {
	Nelx int // elements along x (columns)
	Nely int // elements along y (rows)
}

// New validates and returns a Mesh.
func New(nelx, nely int) (Mesh, error) {
	if nelx <= 0 || nely <= 0 {
		return Mesh{}, fmt.Errorf("%dx%d: %w", nelx, nely, ErrBadMesh)
	}

	return Mesh{Nelx: nelx, Nely: nely}, nil
}

// Validate reports ErrBadMesh for a zero-value or negative mesh.
func (m Mesh) Validate() error {
	_, err := New(m.Nelx, m.Nely)
	return err
}

// Elements returns nelx*nely.
func (m Mesh) Elements() int { return m.Nelx * m.Nely }

// Nodes returns (nelx+1)*(nely+1).
func (m Mesh) Nodes() int { return (m.Nelx + 1) * (m.Nely + 1) }

// NDOF returns 2*(nelx+1)*(nely+1).
func (m Mesh) NDOF() int { return DOFsPerNode * m.Nodes() }

// Node returns the node number at (col, row).
func (m Mesh) Node(col, row int) int { return (m.Nely+1)*col + row }

// NodeDOFs returns the x and y DOF of node n.
func (m Mesh) NodeDOFs(n int) (x, y int) { return DOFsPerNode * n, DOFsPerNode*n + 1 }

// ElementDOFs returns the 8 global DOFs of element (elx, ely) in the order
// expected by the element stiffness matrix: upper-left, upper-right,
// lower-right, lower-left corner, x then y for each.
func (m Mesh) ElementDOFs(elx, ely int) [DOFsPerElement]int {
	n1 := m.Node(elx, ely)   // upper-left node
	n2 := m.Node(elx+1, ely) // upper-right node

	return [DOFsPerElement]int{
		2 * n1, 2*n1 + 1,
		2 * n2, 2*n2 + 1,
		2*n2 + 2, 2*n2 + 3,
		2*n1 + 2, 2*n1 + 3,
	}
}

// ForEachElement calls fn for every element, column-major (elx outer, ely inner),
// which is the assembly order. Iteration stops at the first error.
func (m Mesh) ForEachElement(fn func(elx, ely int) error) error {
	for elx := 0; elx < m.Nelx; elx++ {
		for ely := 0; ely < m.Nely; ely++ {
			if err := fn(elx, ely); err != nil {
				return err
			}
		}
	}

	return nil
}

// String implements fmt.Stringer.
func (m Mesh) String() string { return fmt.Sprintf("%dx%d", m.Nelx, m.Nely) }
