package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adrian0850/sbeso/matrix"
)

func TestSolve_KnownSystem(t *testing.T) {
	a, _ := matrix.NewDenseFrom(3, 3, []float64{
		2, 1, 1,
		4, -6, 0,
		-2, 7, 2,
	})
	b := []float64{5, -2, 9}
	want := []float64{1, 1, 2}

	x, err := matrix.Solve(a, b)
	require.NoError(t, err)
	assert.InDeltaSlice(t, want, x, 1e-12)

	y, err := matrix.SolveLU(a, b)
	require.NoError(t, err)
	assert.InDeltaSlice(t, want, y, 1e-12)

	// inputs untouched
	require.Equal(t, []float64{5, -2, 9}, b)
	v, _ := a.At(0, 0)
	require.Equal(t, 2.0, v)
}

func TestSolveLU_NeedsPivoting(t *testing.T) {
	a, _ := matrix.NewDenseFrom(2, 2, []float64{0, 1, 1, 0})
	x, err := matrix.SolveLU(a, []float64{2, 3})
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{3, 2}, x, 1e-15)
}

func TestSolve_Singular(t *testing.T) {
	a, _ := matrix.NewDenseFrom(2, 2, []float64{1, 2, 2, 4})

	_, err := matrix.Solve(a, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = matrix.SolveLU(a, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrSingular)

	zero, _ := matrix.NewDense(2, 2)
	_, err = matrix.SolveLU(zero, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestSolve_BackendsAgreeOnSPD(t *testing.T) {
	const n = 12
	rng := rand.New(rand.NewSource(7))

	// A = BᵀB + n·I is symmetric positive definite.
	bm := make([]float64, n*n)
	for i := range bm {
		bm[i] = rng.Float64()*2 - 1
	}
	a, _ := matrix.NewDense(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			sum := 0.0
			for k := 0; k < n; k++ {
				sum += bm[k*n+i] * bm[k*n+j]
			}
			if i == j {
				sum += n
			}
			require.NoError(t, a.Set(i, j, sum))
		}
	}
	rhs := make([]float64, n)
	for i := range rhs {
		rhs[i] = rng.Float64()
	}

	x1, err := matrix.Solve(a, rhs)
	require.NoError(t, err)
	x2, err := matrix.SolveLU(a, rhs)
	require.NoError(t, err)
	require.InDeltaSlice(t, x1, x2, 1e-10)

	// residual check
	r, err := matrix.MatVec(a, x1)
	require.NoError(t, err)
	require.InDeltaSlice(t, rhs, r, 1e-10)

	c, err := matrix.Cond(a)
	require.NoError(t, err)
	require.Greater(t, c, 1.0)
}

func TestSolve_DimensionErrors(t *testing.T) {
	rect, _ := matrix.NewDense(2, 3)
	_, err := matrix.Solve(rect, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	sq, _ := matrix.NewDense(2, 2)
	_, err = matrix.Solve(sq, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
