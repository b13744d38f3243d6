package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adrian0850/sbeso/mesh"
)

func TestNew_Rejects(t *testing.T) {
	_, err := mesh.New(0, 3)
	require.ErrorIs(t, err, mesh.ErrBadMesh)
	require.ErrorIs(t, mesh.Mesh{}.Validate(), mesh.ErrBadMesh)
}

func TestCounts(t *testing.T) {
	m, err := mesh.New(5, 5)
	require.NoError(t, err)
	require.Equal(t, 25, m.Elements())
	require.Equal(t, 36, m.Nodes())
	require.Equal(t, 72, m.NDOF())
	require.Equal(t, "5x5", m.String())
}

// TestElementDOFs pins the translation of the 1-based edof formula.
func TestElementDOFs(t *testing.T) {
	m, _ := mesh.New(2, 2)

	// Element (0,0): n1 = 0, n2 = 3.
	require.Equal(t, [8]int{0, 1, 6, 7, 8, 9, 2, 3}, m.ElementDOFs(0, 0))
	// Element (1,1): n1 = 3*1+1 = 4, n2 = 3*2+1 = 7.
	require.Equal(t, [8]int{8, 9, 14, 15, 16, 17, 10, 11}, m.ElementDOFs(1, 1))

	// Every DOF index stays inside the global vector.
	require.NoError(t, m.ForEachElement(func(elx, ely int) error {
		for _, d := range m.ElementDOFs(elx, ely) {
			require.GreaterOrEqual(t, d, 0)
			require.Less(t, d, m.NDOF())
		}
		return nil
	}))
}

func TestNodeNumbering(t *testing.T) {
	m, _ := mesh.New(3, 2)
	require.Equal(t, 0, m.Node(0, 0))
	require.Equal(t, 2, m.Node(0, 2))  // bottom-left
	require.Equal(t, 9, m.Node(3, 0))  // top-right
	require.Equal(t, 11, m.Node(3, 2)) // bottom-right
	x, y := m.NodeDOFs(11)
	require.Equal(t, [2]int{22, 23}, [2]int{x, y})
	require.Equal(t, m.NDOF()-1, y)
}

func TestForEachElement_Order(t *testing.T) {
	m, _ := mesh.New(2, 2)
	var seen [][2]int
	_ = m.ForEachElement(func(elx, ely int) error {
		seen = append(seen, [2]int{elx, ely})
		return nil
	})
	require.Equal(t, [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, seen)
}
