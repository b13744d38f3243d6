package boundary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adrian0850/sbeso/boundary"
	"github.com/adrian0850/sbeso/mesh"
)

func mustMesh(t *testing.T, nelx, nely int) mesh.Mesh {
	t.Helper()
	m, err := mesh.New(nelx, nely)
	require.NoError(t, err)
	return m
}

func seq(from, to int) []int {
	out := make([]int, 0, to-from)
	for i := from; i < to; i++ {
		out = append(out, i)
	}
	return out
}

// TestResolve_Cantilever pins the classic ALL_LEFT / B_RIGHT setup on 5x5.
func TestResolve_Cantilever(t *testing.T) {
	m := mustMesh(t, 5, 5)
	c, err := boundary.Resolve(m, boundary.AllLeft, boundary.BRight)
	require.NoError(t, err)

	require.Equal(t, 72, c.NDOF)
	require.Equal(t, seq(0, 12), c.Fixed)
	require.Equal(t, seq(12, 72), c.Free)
	require.Len(t, c.Force, 72)
	require.Equal(t, 71, c.LoadDOF)
	assert.Equal(t, boundary.DefaultForce, c.Force[71])

	nonZero := 0
	for _, f := range c.Force {
		if f != 0 {
			nonZero++
		}
	}
	assert.Equal(t, 1, nonZero)
}

func TestResolve_SupportGeometry(t *testing.T) {
	m := mustMesh(t, 5, 5)
	cases := []struct {
		name  string
		bc    boundary.BoundaryCase
		lc    boundary.LoadCase
		fixed []int
	}{
		{"all top", boundary.AllTop, boundary.BMiddle,
			[]int{0, 1, 12, 13, 24, 25, 36, 37, 48, 49, 60, 61}},
		{"all right", boundary.AllRight, boundary.BLeft, seq(60, 72)},
		{"all bottom", boundary.AllBottom, boundary.TRight,
			[]int{10, 11, 22, 23, 34, 35, 46, 47, 58, 59, 70, 71}},
		// span = round(0.2*6) = 1 node per corner.
		{"left corners", boundary.LTLB, boundary.BRight, []int{0, 1, 10, 11}},
		{"right corners", boundary.RTRB, boundary.MLeft, []int{60, 61, 70, 71}},
		{"top corners", boundary.LTRT, boundary.BMiddle, []int{0, 1, 60, 61}},
		{"bottom corners", boundary.LBRB, boundary.TMiddle, []int{10, 11, 70, 71}},
		{"diagonal", boundary.LTRB, boundary.MMiddle, []int{0, 1, 70, 71}},
		{"anti-diagonal", boundary.LBRT, boundary.MMiddle, []int{10, 11, 60, 61}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := boundary.Resolve(m, tc.bc, tc.lc)
			require.NoError(t, err)
			assert.Equal(t, tc.fixed, c.Fixed)
			assert.Len(t, c.Free, c.NDOF-len(tc.fixed))
		})
	}
}

func TestResolve_EdgePairsDeduplicateCorners(t *testing.T) {
	m := mustMesh(t, 3, 2)
	c, err := boundary.Resolve(m, boundary.AllTopBottom, boundary.MMiddle)
	require.NoError(t, err)
	// 4 columns × 2 edges × 2 DOFs, no duplicates.
	assert.Len(t, c.Fixed, 16)
	assert.IsIncreasing(t, c.Fixed)
}

func TestResolve_CornerSpanScalesWithWidth(t *testing.T) {
	m := mustMesh(t, 10, 10)
	c, err := boundary.Resolve(m, boundary.LTRB, boundary.TMiddle)
	require.NoError(t, err)
	// span = round(0.2*11) = 2: nodes 0, 11 on top, 109, 120 on the bottom.
	assert.Equal(t, []int{0, 1, 22, 23, 218, 219, 240, 241}, c.Fixed)
	assert.Equal(t, 111, c.LoadDOF)

	c, err = boundary.Resolve(m, boundary.LTRB, boundary.TMiddle, boundary.WithCornerSpan(1))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 240, 241}, c.Fixed)

	c, err = boundary.Resolve(m, boundary.LTLB, boundary.MRight, boundary.WithCornerSpan(100))
	require.NoError(t, err)
	assert.Len(t, c.Fixed, 2*2*11) // clipped to the full edge
}

func TestResolve_FreeIsSortedComplement(t *testing.T) {
	m := mustMesh(t, 6, 4)
	for _, bc := range boundary.BoundaryCases() {
		c, err := boundary.Resolve(m, bc, boundary.MMiddle)
		require.NoError(t, err, bc.String())

		seen := make([]bool, c.NDOF)
		for _, d := range c.Fixed {
			seen[d] = true
		}
		for _, d := range c.Free {
			require.False(t, seen[d], "%s: dof %d both fixed and free", bc, d)
			seen[d] = true
		}
		for d, ok := range seen {
			require.True(t, ok, "%s: dof %d missing", bc, d)
		}
		assert.IsIncreasing(t, c.Free)
	}
}

func TestResolve_WithForce(t *testing.T) {
	m := mustMesh(t, 2, 2)
	c, err := boundary.Resolve(m, boundary.AllLeft, boundary.BRight, boundary.WithForce(2.5))
	require.NoError(t, err)
	assert.Equal(t, 2.5, c.Force[c.LoadDOF])

	_, err = boundary.Resolve(m, boundary.AllLeft, boundary.BRight, boundary.WithForce(0))
	require.ErrorIs(t, err, boundary.ErrBadForce)
}

func TestResolve_Errors(t *testing.T) {
	m := mustMesh(t, 5, 5)

	_, err := boundary.Resolve(m, boundary.BoundaryCase(99), boundary.BRight)
	require.ErrorIs(t, err, boundary.ErrUnknownBoundaryCase)

	_, err = boundary.Resolve(m, boundary.AllLeft, boundary.LoadCase(-1))
	require.ErrorIs(t, err, boundary.ErrUnknownLoadCase)

	_, err = boundary.Resolve(mesh.Mesh{}, boundary.AllLeft, boundary.BRight)
	require.ErrorIs(t, err, mesh.ErrBadMesh)

	// Right edge clamped, load on the bottom-right node.
	_, err = boundary.Resolve(m, boundary.AllLeftRight, boundary.BRight)
	require.ErrorIs(t, err, boundary.ErrLoadOnSupport)
}

func TestNewConditions(t *testing.T) {
	m := mustMesh(t, 1, 1)

	c, err := boundary.NewConditions(m, []int{5, 0, 1, 2, 3, 4, 6, 0}, 7, -10)
	require.NoError(t, err)
	assert.Equal(t, seq(0, 7), c.Fixed)
	assert.Equal(t, []int{7}, c.Free)
	assert.Equal(t, -10.0, c.Force[7])

	_, err = boundary.NewConditions(m, nil, 7, -10)
	require.ErrorIs(t, err, boundary.ErrNoSupports)
	_, err = boundary.NewConditions(m, []int{0, 8}, 7, -10)
	require.ErrorIs(t, err, boundary.ErrDOFOutOfRange)
	_, err = boundary.NewConditions(m, []int{0}, 8, -10)
	require.ErrorIs(t, err, boundary.ErrDOFOutOfRange)
	_, err = boundary.NewConditions(m, []int{0, 7}, 7, -10)
	require.ErrorIs(t, err, boundary.ErrLoadOnSupport)
}

func TestCaseNames(t *testing.T) {
	assert.Equal(t, "ALL_LEFT", boundary.AllLeft.String())
	assert.Equal(t, "LB_RT", boundary.LBRT.String())
	assert.Equal(t, "B_RIGHT", boundary.BRight.String())
	assert.Equal(t, "T_MIDDLE", boundary.TMiddle.String())
	assert.Equal(t, "BoundaryCase(12)", boundary.BoundaryCase(12).String())
	assert.Equal(t, "LoadCase(9)", boundary.LoadCase(9).String())

	assert.Len(t, boundary.BoundaryCases(), 12)
	assert.Len(t, boundary.LoadCases(), 9)
	assert.False(t, boundary.BoundaryCase(-1).Valid())
	assert.True(t, boundary.TRight.Valid())
}

func TestParseCases(t *testing.T) {
	for _, b := range boundary.BoundaryCases() {
		got, err := boundary.ParseBoundaryCase(b.String())
		require.NoError(t, err)
		assert.Equal(t, b, got)
	}
	for _, l := range boundary.LoadCases() {
		got, err := boundary.ParseLoadCase(l.String())
		require.NoError(t, err)
		assert.Equal(t, l, got)
	}

	b, err := boundary.ParseBoundaryCase(" lt-lb ")
	require.NoError(t, err)
	assert.Equal(t, boundary.LTLB, b)

	_, err = boundary.ParseBoundaryCase("LEFT")
	assert.ErrorIs(t, err, boundary.ErrUnknownBoundaryCase)
	_, err = boundary.ParseLoadCase("X_RIGHT")
	assert.ErrorIs(t, err, boundary.ErrUnknownLoadCase)
}
