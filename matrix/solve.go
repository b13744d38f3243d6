// SPDX-License-Identifier: MIT

package matrix

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Solve returns x with a·x = b using gonum's partial-pivoting LU (LAPACK getrf/getrs).
//
// Implementation:
//   - Stage 1: validate a square/non-nil and len(b) == order.
//   - Stage 2: factorize a view of a's backing storage (a is not mutated;
//     mat.LU copies before factoring) and solve into a fresh vector.
//   - Stage 3: classify failures. An exactly singular factor or an infinite
//     condition estimate is ErrSingular; a finite but large condition number
//     is accepted as long as the solution is finite.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrSingular.
// Complexity: O(n³) time, O(n²) space.
func Solve(a *Dense, b []float64) ([]float64, error) {
	if err := ValidateSquareNonNil(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	n := a.r
	if err := ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	var lu mat.LU
	lu.Factorize(mat.NewDense(n, n, a.data))

	rhs := make([]float64, n)
	copy(rhs, b)
	x := mat.NewVecDense(n, nil)
	if err := lu.SolveVecTo(x, false, mat.NewVecDense(n, rhs)); err != nil {
		var cond mat.Condition
		switch {
		case errors.Is(err, mat.ErrSingular):
			return nil, matrixErrorf(opSolve, ErrSingular)
		case errors.As(err, &cond) && math.IsInf(float64(cond), 1):
			return nil, matrixErrorf(opSolve, fmt.Errorf("condition number +Inf: %w", ErrSingular))
		case errors.As(err, &cond):
			// ill-conditioned but solvable; the finiteness check below decides.
		default:
			return nil, matrixErrorf(opSolve, err)
		}
	}

	out := make([]float64, n)
	copy(out, x.RawVector().Data)
	if err := ValidateFiniteVec(out); err != nil {
		return nil, matrixErrorf(opSolve, fmt.Errorf("%w: %v", ErrSingular, err))
	}

	return out, nil
}

// Cond returns gonum's 1-norm condition estimate of a square matrix.
// Useful for diagnostics; +Inf for a singular matrix.
func Cond(a *Dense) (float64, error) {
	if err := ValidateSquareNonNil(a); err != nil {
		return 0, matrixErrorf("Cond", err)
	}
	var lu mat.LU
	lu.Factorize(mat.NewDense(a.r, a.c, a.data))

	return lu.Cond(), nil
}
