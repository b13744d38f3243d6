package fem_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adrian0850/sbeso/boundary"
	"github.com/adrian0850/sbeso/element"
	"github.com/adrian0850/sbeso/fem"
	"github.com/adrian0850/sbeso/grid"
	"github.com/adrian0850/sbeso/matrix"
	"github.com/adrian0850/sbeso/mesh"
)

func defaultKE(t testing.TB) *matrix.Dense {
	t.Helper()
	ke, err := element.Stiffness(element.DefaultMaterial())
	require.NoError(t, err)
	return ke
}

func cantilever(t testing.TB, nelx, nely int, opts ...fem.Option) (*fem.Solver, *boundary.Conditions) {
	t.Helper()
	m, err := mesh.New(nelx, nely)
	require.NoError(t, err)
	c, err := boundary.Resolve(m, boundary.AllLeft, boundary.BRight)
	require.NoError(t, err)
	s, err := fem.NewSolver(m, defaultKE(t), c, opts...)
	require.NoError(t, err)
	return s, c
}

// TestSolve_SingleFreeDOF: on one element with every DOF but the last fixed,
// K_ff is the scalar KE[7][7] = 0.45/0.91, so u7 = -10·0.91/0.45.
func TestSolve_SingleFreeDOF(t *testing.T) {
	m, _ := mesh.New(1, 1)
	c, err := boundary.NewConditions(m, []int{0, 1, 2, 3, 4, 5, 6}, 7, -10)
	require.NoError(t, err)

	for _, b := range []fem.Backend{fem.BackendLU, fem.BackendDoolittle} {
		t.Run(b.String(), func(t *testing.T) {
			s, err := fem.NewSolver(m, defaultKE(t), c, fem.WithBackend(b))
			require.NoError(t, err)
			x, _ := grid.Filled(1, 1, 1)

			u, err := s.Solve(x, 3)
			require.NoError(t, err)
			require.Len(t, u, 8)
			assert.InDelta(t, -10*0.91/0.45, u[7], 1e-9)
			for d := 0; d < 7; d++ {
				assert.Zero(t, u[d])
			}
		})
	}
}

// TestSolve_Residual checks K_ff·U_f = F_f on a 2x2 cantilever.
func TestSolve_Residual(t *testing.T) {
	s, c := cantilever(t, 2, 2)
	x, _ := grid.Filled(2, 2, 1)
	_ = x.Set(1, 0, 0.001) // one void element

	u, err := s.Solve(x, 3)
	require.NoError(t, err)
	for _, d := range c.Fixed {
		require.Zero(t, u[d])
	}

	k, err := s.Assemble(x, 3)
	require.NoError(t, err)
	kff, err := matrix.Submatrix(k, c.Free)
	require.NoError(t, err)
	uf, _ := matrix.Gather(u, c.Free)
	ff, _ := matrix.Gather(c.Force, c.Free)
	got, err := matrix.MatVec(kff, uf)
	require.NoError(t, err)
	assert.InDeltaSlice(t, ff, got, 1e-9)

	// The loaded corner deflects in the load direction.
	assert.Less(t, u[c.LoadDOF], 0.0)
}

// TestSolve_ReferenceDisplacements: 2x2 all-solid plate, left column of
// nodes clamped (DOFs 0-5), -10 on the y DOF of the bottom-right node (17).
// The reference U was computed in exact rational arithmetic from the same
// KE closed form with an independent assembly.
func TestSolve_ReferenceDisplacements(t *testing.T) {
	want := []float64{
		0, 0, 0, 0, 0, 0,
		-17.6924266492, -24.3273081966,
		-1.74565886551, -21.8549731447,
		20.5458622432, -22.2010344065,
		-22.4365209361, -49.7664957363,
		-1.62098204125, -55.0209505075,
		32.0059751637, -75.1106771335,
	}
	m, _ := mesh.New(2, 2)
	c, err := boundary.NewConditions(m, []int{0, 1, 2, 3, 4, 5}, 17, -10)
	require.NoError(t, err)
	x, _ := grid.Filled(2, 2, 1)

	for _, b := range []fem.Backend{fem.BackendLU, fem.BackendDoolittle} {
		t.Run(b.String(), func(t *testing.T) {
			s, err := fem.NewSolver(m, defaultKE(t), c, fem.WithBackend(b))
			require.NoError(t, err)
			u, err := s.Solve(x, 3)
			require.NoError(t, err)
			assert.InDeltaSlice(t, want, u, 1e-8)
			// ½·FᵀU
			assert.InDelta(t, 375.553385668, -5*u[17], 1e-8)
		})
	}
}

func TestSolve_BackendsAgree(t *testing.T) {
	lu, _ := cantilever(t, 4, 3)
	dl, _ := cantilever(t, 4, 3, fem.WithBackend(fem.BackendDoolittle))
	require.Equal(t, fem.BackendDoolittle, dl.Backend())

	x, _ := grid.FromRows([][]float64{
		{1, 1, 0.001, 1},
		{1, 0.001, 1, 1},
		{1, 1, 1, 0.001},
	})
	u1, err := lu.Solve(x, 3)
	require.NoError(t, err)
	u2, err := dl.Solve(x, 3)
	require.NoError(t, err)
	assert.InDeltaSlice(t, u1, u2, 1e-8)
}

// TestAssemble_RigidBody: every row of K sums to zero, and a uniform density
// scales K by x^p.
func TestAssemble_RigidBody(t *testing.T) {
	s, _ := cantilever(t, 3, 2)
	ones, _ := grid.Filled(2, 3, 1)
	half, _ := grid.Filled(2, 3, 0.5)

	k1, err := s.Assemble(ones, 3)
	require.NoError(t, err)
	kh, err := s.Assemble(half, 3)
	require.NoError(t, err)

	for i := 0; i < k1.Rows(); i++ {
		r1, _ := k1.RawRow(i)
		rh, _ := kh.RawRow(i)
		sum := 0.0
		for j := range r1 {
			sum += r1[j]
			assert.InDelta(t, 0.125*r1[j], rh[j], 1e-12)
		}
		assert.InDelta(t, 0, sum, 1e-12, "row %d", i)
	}
	require.NoError(t, matrix.ValidateSymmetric(k1, 1e-12))
}

func TestSolve_Singular(t *testing.T) {
	for _, b := range []fem.Backend{fem.BackendLU, fem.BackendDoolittle} {
		t.Run(b.String(), func(t *testing.T) {
			s, _ := cantilever(t, 2, 2, fem.WithBackend(b))
			void, _ := grid.Filled(2, 2, 0) // K ≡ 0
			_, err := s.Solve(void, 3)
			require.ErrorIs(t, err, matrix.ErrSingular)
		})
	}
}

func TestNewSolver_Errors(t *testing.T) {
	m, _ := mesh.New(2, 2)
	c, err := boundary.Resolve(m, boundary.AllLeft, boundary.BRight)
	require.NoError(t, err)
	ke := defaultKE(t)

	_, err = fem.NewSolver(mesh.Mesh{}, ke, c)
	require.ErrorIs(t, err, mesh.ErrBadMesh)

	small, _ := matrix.NewDense(4, 4)
	_, err = fem.NewSolver(m, small, c)
	require.ErrorIs(t, err, fem.ErrBadStiffness)
	_, err = fem.NewSolver(m, nil, c)
	require.ErrorIs(t, err, fem.ErrBadStiffness)

	other, _ := mesh.New(3, 2)
	_, err = fem.NewSolver(other, ke, c)
	require.ErrorIs(t, err, fem.ErrConditionsMismatch)

	_, err = fem.NewSolver(m, ke, c, fem.WithBackend(fem.Backend(7)))
	require.ErrorIs(t, err, fem.ErrUnknownBackend)

	s, err := fem.NewSolver(m, ke, c)
	require.NoError(t, err)
	wrong, _ := grid.Filled(3, 2, 1)
	_, err = s.Solve(wrong, 3)
	require.ErrorIs(t, err, fem.ErrDesignShape)
}

func TestParseBackend(t *testing.T) {
	b, err := fem.ParseBackend("doolittle")
	require.NoError(t, err)
	assert.Equal(t, fem.BackendDoolittle, b)
	b, err = fem.ParseBackend("lu")
	require.NoError(t, err)
	assert.Equal(t, fem.BackendLU, b)
	_, err = fem.ParseBackend("cholesky")
	require.ErrorIs(t, err, fem.ErrUnknownBackend)
	assert.Equal(t, "Backend(7)", fem.Backend(7).String())
}
