package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adrian0850/sbeso/matrix"
)

func TestValidateNotNil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(typedNil), matrix.ErrNilMatrix)
}

func TestValidateSymmetric(t *testing.T) {
	sym, _ := matrix.NewDenseFrom(2, 2, []float64{2, -1, -1, 2})
	require.NoError(t, matrix.ValidateSymmetric(sym, 0))

	asym, _ := matrix.NewDenseFrom(2, 2, []float64{2, -1, -1.1, 2})
	require.ErrorIs(t, matrix.ValidateSymmetric(asym, 1e-3), matrix.ErrAsymmetry)
	require.NoError(t, matrix.ValidateSymmetric(asym, 0.2))
	require.ErrorIs(t, matrix.ValidateSymmetric(sym, math.NaN()), matrix.ErrNaNInf)

	rect, _ := matrix.NewDense(2, 3)
	require.ErrorIs(t, matrix.ValidateSymmetric(rect, 0), matrix.ErrDimensionMismatch)
}

func TestValidateVecLenAndFinite(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateVecLen(nil, 2), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))

	require.NoError(t, matrix.ValidateFiniteVec([]float64{0, -1, 1e300}))
	require.ErrorIs(t, matrix.ValidateFiniteVec([]float64{0, math.Inf(-1)}), matrix.ErrNaNInf)
}

func TestValidateIndexSet(t *testing.T) {
	require.NoError(t, matrix.ValidateIndexSet([]int{0, 3}, 4))
	require.ErrorIs(t, matrix.ValidateIndexSet([]int{0, 4}, 4), matrix.ErrOutOfRange)
}
