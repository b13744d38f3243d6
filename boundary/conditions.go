// SPDX-License-Identifier: MIT

package boundary

import (
	"fmt"
	"math"
	"slices"

	"github.com/adrian0850/sbeso/mesh"
)

// Conditions are the resolved FE inputs for one mesh.
// Fixed and Free are sorted, disjoint and together cover [0, NDOF).
// Force has length NDOF and exactly one non-zero entry, at LoadDOF.
type Conditions struct {
	NDOF    int
	Fixed   []int
	Free    []int
	Force   []float64
	LoadDOF int
}

// NewConditions builds Conditions from an explicit fixed set and a single
// point load. fixed may be unsorted and contain duplicates.
//
// Errors: ErrBadMesh (from mesh), ErrNoSupports, ErrDOFOutOfRange,
// ErrLoadOnSupport, ErrBadForce.
// Complexity: O(NDOF + |fixed|·log|fixed|).
func NewConditions(m mesh.Mesh, fixed []int, loadDOF int, force float64) (*Conditions, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if len(fixed) == 0 {
		return nil, ErrNoSupports
	}
	if force == 0 || math.IsNaN(force) || math.IsInf(force, 0) {
		return nil, fmt.Errorf("force=%g: %w", force, ErrBadForce)
	}
	ndof := m.NDOF()
	if loadDOF < 0 || loadDOF >= ndof {
		return nil, fmt.Errorf("load dof %d of %d: %w", loadDOF, ndof, ErrDOFOutOfRange)
	}

	isFixed := make([]bool, ndof)
	for _, d := range fixed {
		if d < 0 || d >= ndof {
			return nil, fmt.Errorf("fixed dof %d of %d: %w", d, ndof, ErrDOFOutOfRange)
		}
		isFixed[d] = true
	}
	if isFixed[loadDOF] {
		return nil, fmt.Errorf("dof %d: %w", loadDOF, ErrLoadOnSupport)
	}

	c := &Conditions{
		NDOF:    ndof,
		Force:   make([]float64, ndof),
		LoadDOF: loadDOF,
	}
	for d, f := range isFixed {
		if f {
			c.Fixed = append(c.Fixed, d)
		} else {
			c.Free = append(c.Free, d)
		}
	}
	c.Force[loadDOF] = force

	return c, nil
}

// Resolve maps a (support, load) case pair to Conditions on m.
//
// Stage 1 (Validate): mesh dimensions, then both enum values.
// Stage 2 (Supports): collect the clamped nodes for bc; both DOFs of each.
// Stage 3 (Load): locate the load node for lc and apply the force on its y DOF.
//
// Errors: mesh.ErrBadMesh, ErrUnknownBoundaryCase, ErrUnknownLoadCase, plus
// anything NewConditions reports (notably ErrLoadOnSupport when the load node
// sits inside the clamped region).
func Resolve(m mesh.Mesh, bc BoundaryCase, lc LoadCase, opts ...Option) (*Conditions, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	nodes, err := supportNodes(m, bc, o.span(m))
	if err != nil {
		return nil, err
	}
	load, err := loadNode(m, lc)
	if err != nil {
		return nil, err
	}

	fixed := make([]int, 0, 2*len(nodes))
	for _, n := range nodes {
		x, y := m.NodeDOFs(n)
		fixed = append(fixed, x, y)
	}
	_, ly := m.NodeDOFs(load)

	c, err := NewConditions(m, fixed, ly, o.force)
	if err != nil {
		return nil, fmt.Errorf("%s/%s: %w", bc, lc, err)
	}

	return c, nil
}

// span returns the corner-support run length for m.
func (o options) span(m mesh.Mesh) int {
	n := o.cornerSpan
	if n <= 0 {
		n = max(1, int(math.Round(cornerFraction*float64(m.Nelx+1))))
	}

	return min(n, m.Nelx+1)
}

// edge selectors.
func leftEdge(m mesh.Mesh) []int   { return column(m, 0) }
func rightEdge(m mesh.Mesh) []int  { return column(m, m.Nelx) }
func topEdge(m mesh.Mesh) []int    { return row(m, 0, 0, m.Nelx+1) }
func bottomEdge(m mesh.Mesh) []int { return row(m, m.Nely, 0, m.Nelx+1) }

func column(m mesh.Mesh, col int) []int {
	out := make([]int, 0, m.Nely+1)
	for r := 0; r <= m.Nely; r++ {
		out = append(out, m.Node(col, r))
	}

	return out
}

// row returns nodes on row r for columns [from, to).
func row(m mesh.Mesh, r, from, to int) []int {
	out := make([]int, 0, to-from)
	for c := from; c < to; c++ {
		out = append(out, m.Node(c, r))
	}

	return out
}

// corner selectors: a run of span nodes along the top/bottom edge.
func leftTop(m mesh.Mesh, span int) []int     { return row(m, 0, 0, span) }
func leftBottom(m mesh.Mesh, span int) []int  { return row(m, m.Nely, 0, span) }
func rightTop(m mesh.Mesh, span int) []int    { return row(m, 0, m.Nelx+1-span, m.Nelx+1) }
func rightBottom(m mesh.Mesh, span int) []int { return row(m, m.Nely, m.Nelx+1-span, m.Nelx+1) }

// supportNodes dispatches bc to its clamped node list. Overlapping selections
// (e.g. corners shared by two edges) are deduplicated by NewConditions.
func supportNodes(m mesh.Mesh, bc BoundaryCase, span int) ([]int, error) {
	switch bc {
	case AllLeft:
		return leftEdge(m), nil
	case AllRight:
		return rightEdge(m), nil
	case AllTop:
		return topEdge(m), nil
	case AllBottom:
		return bottomEdge(m), nil
	case AllLeftRight:
		return slices.Concat(leftEdge(m), rightEdge(m)), nil
	case AllTopBottom:
		return slices.Concat(topEdge(m), bottomEdge(m)), nil
	case LTLB:
		return slices.Concat(leftTop(m, span), leftBottom(m, span)), nil
	case RTRB:
		return slices.Concat(rightTop(m, span), rightBottom(m, span)), nil
	case LTRT:
		return slices.Concat(leftTop(m, span), rightTop(m, span)), nil
	case LBRB:
		return slices.Concat(leftBottom(m, span), rightBottom(m, span)), nil
	case LTRB:
		return slices.Concat(leftTop(m, span), rightBottom(m, span)), nil
	case LBRT:
		return slices.Concat(leftBottom(m, span), rightTop(m, span)), nil
	default:
		return nil, fmt.Errorf("%v: %w", bc, ErrUnknownBoundaryCase)
	}
}

// loadNode dispatches lc to the loaded node.
func loadNode(m mesh.Mesh, lc LoadCase) (int, error) {
	var r, c int
	switch lc {
	case BLeft, BMiddle, BRight:
		r = m.Nely
	case MLeft, MMiddle, MRight:
		r = m.Nely / 2
	case TLeft, TMiddle, TRight:
		r = 0
	default:
		return 0, fmt.Errorf("%v: %w", lc, ErrUnknownLoadCase)
	}
	switch lc {
	case BLeft, MLeft, TLeft:
		c = 0
	case BMiddle, MMiddle, TMiddle:
		c = m.Nelx / 2
	default:
		c = m.Nelx
	}

	return m.Node(c, r), nil
}
