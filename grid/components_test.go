package grid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adrian0850/sbeso/grid"
)

func TestConnectedComponents_Conn4VsConn8(t *testing.T) {
	// Two solid cells touching only at a corner.
	f, err := grid.FromRows([][]float64{
		{1, 0.001},
		{0.001, 1},
	})
	require.NoError(t, err)

	require.Equal(t, 2, f.CountComponents(1, grid.Conn4))
	require.Equal(t, 1, f.CountComponents(1, grid.Conn8))
}

func TestConnectedComponents_Order(t *testing.T) {
	f, _ := grid.FromRows([][]float64{
		{0, 1, 1, 0, 1},
		{1, 1, 0, 1, 1},
		{1, 0, 1, 1, 0},
	})
	comps := f.ConnectedComponents(1, grid.Conn4)
	require.Len(t, comps, 2)
	require.Equal(t, []int{1, 2, 6, 5, 10}, comps[0])
	require.Equal(t, []int{4, 9, 8, 13, 12}, comps[1])
}

func TestConnectedComponents_AllVoid(t *testing.T) {
	f, _ := grid.Filled(3, 3, 0.001)
	require.Empty(t, f.ConnectedComponents(1, grid.Conn8))
}
