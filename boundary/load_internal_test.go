package boundary

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adrian0850/sbeso/mesh"
)

// TestLoadNode_Positions checks rows {0, nely/2, nely} × columns {0, nelx/2, nelx}.
func TestLoadNode_Positions(t *testing.T) {
	m, err := mesh.New(4, 6) // 5 columns of 7 nodes
	require.NoError(t, err)

	want := map[LoadCase]int{
		BLeft:   6,
		BMiddle: 2*7 + 6,
		BRight:  4*7 + 6,
		MLeft:   3,
		MMiddle: 2*7 + 3,
		MRight:  4*7 + 3,
		TLeft:   0,
		TMiddle: 2 * 7,
		TRight:  4 * 7,
	}
	for lc, node := range want {
		got, err := loadNode(m, lc)
		require.NoError(t, err)
		require.Equal(t, node, got, lc.String())
	}
}

func TestSpan_Default(t *testing.T) {
	o := defaultOptions()
	for nelx, want := range map[int]int{1: 1, 2: 1, 5: 1, 7: 2, 10: 2, 11: 2, 12: 3, 60: 12} {
		m, _ := mesh.New(nelx, 3)
		require.Equal(t, want, o.span(m), "nelx=%d", nelx)
	}
}
