// SPDX-License-Identifier: MIT

package fem

import (
	"errors"
	"fmt"
	"math"

	"github.com/adrian0850/sbeso/boundary"
	"github.com/adrian0850/sbeso/grid"
	"github.com/adrian0850/sbeso/matrix"
	"github.com/adrian0850/sbeso/mesh"
)

var (
	// ErrBadStiffness indicates KE is nil or not 8×8.
	ErrBadStiffness = errors.New("fem: element stiffness must be 8x8")

	// ErrConditionsMismatch indicates the conditions were resolved for another mesh.
	ErrConditionsMismatch = errors.New("fem: conditions do not match mesh")

	// ErrDesignShape indicates the design field is not nely×nelx.
	ErrDesignShape = errors.New("fem: design field shape mismatch")

	// ErrUnknownBackend indicates an unsupported Backend value.
	ErrUnknownBackend = errors.New("fem: unknown backend")
)

// Solver is a reusable FE solver for one mesh and one set of conditions.
// It holds no per-solve state; concurrent Solve calls are safe.
type Solver struct {
	mesh    mesh.Mesh
	ke      [mesh.DOFsPerElement][mesh.DOFsPerElement]float64
	cond    *boundary.Conditions
	backend Backend
}

// NewSolver validates its inputs and binds them into a Solver.
//
// Errors: mesh.ErrBadMesh, ErrBadStiffness, ErrConditionsMismatch, ErrUnknownBackend.
func NewSolver(m mesh.Mesh, ke *matrix.Dense, c *boundary.Conditions, opts ...Option) (*Solver, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if ke == nil || ke.Rows() != mesh.DOFsPerElement || ke.Cols() != mesh.DOFsPerElement {
		return nil, ErrBadStiffness
	}
	if c == nil || c.NDOF != m.NDOF() || len(c.Force) != m.NDOF() {
		return nil, fmt.Errorf("mesh %s: %w", m, ErrConditionsMismatch)
	}

	s := &Solver{mesh: m, cond: c, backend: BackendLU}
	for _, opt := range opts {
		opt(s)
	}
	if s.backend != BackendLU && s.backend != BackendDoolittle {
		return nil, fmt.Errorf("%v: %w", s.backend, ErrUnknownBackend)
	}
	for i := range s.ke {
		row, err := ke.RawRow(i)
		if err != nil {
			return nil, err
		}
		copy(s.ke[i][:], row)
	}

	return s, nil
}

// Backend reports the configured factorization backend.
func (s *Solver) Backend() Backend { return s.backend }

// Assemble builds the global stiffness K = Σ_e x_e^penal · KE.
//
// Elements are visited column-major (elx outer, ely inner); x.At(ely, elx)
// is the density of element (elx, ely).
// Complexity: O(NDOF²) memory, O(nelx·nely·64) scatter.
func (s *Solver) Assemble(x *grid.Field, penal float64) (*matrix.Dense, error) {
	if x == nil || x.Rows() != s.mesh.Nely || x.Cols() != s.mesh.Nelx {
		return nil, fmt.Errorf("want %dx%d: %w", s.mesh.Nely, s.mesh.Nelx, ErrDesignShape)
	}
	ndof := s.mesh.NDOF()
	k, err := matrix.NewDense(ndof, ndof)
	if err != nil {
		return nil, err
	}

	err = s.mesh.ForEachElement(func(elx, ely int) error {
		xe, _ := x.At(ely, elx)
		scale := math.Pow(xe, penal)
		edof := s.mesh.ElementDOFs(elx, ely)
		for a, i := range edof {
			for b, j := range edof {
				if err := k.AddAt(i, j, scale*s.ke[a][b]); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return k, nil
}

// Solve returns the full displacement vector U (length NDOF) for design x.
//
// Stage 1: assemble K.
// Stage 2: restrict to the free DOFs: K_ff = K[free, free], F_f = F[free].
// Stage 3: factor and solve with the configured backend.
// Stage 4: scatter U_f into a zero vector; fixed DOFs stay exactly 0.
//
// Errors: ErrDesignShape; anything matching matrix.ErrSingular when K_ff
// cannot be inverted.
func (s *Solver) Solve(x *grid.Field, penal float64) ([]float64, error) {
	u := make([]float64, s.mesh.NDOF())
	free := s.cond.Free
	if len(free) == 0 {
		return u, nil
	}

	k, err := s.Assemble(x, penal)
	if err != nil {
		return nil, err
	}
	kff, err := matrix.Submatrix(k, free)
	if err != nil {
		return nil, err
	}
	ff, err := matrix.Gather(s.cond.Force, free)
	if err != nil {
		return nil, err
	}

	var uf []float64
	switch s.backend {
	case BackendDoolittle:
		uf, err = matrix.SolveLU(kff, ff)
	default:
		uf, err = matrix.Solve(kff, ff)
	}
	if err != nil {
		return nil, fmt.Errorf("fem: %s solve of %d free DOFs: %w", s.backend, len(free), err)
	}
	for a, d := range free {
		u[d] = uf[a]
	}

	return u, nil
}
