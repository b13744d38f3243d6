// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// pivotTol is the relative magnitude below which a pivot counts as zero.
// It is scaled by the largest absolute entry of the input.
const pivotTol = 1e-13

// LUFactors is a Doolittle factorization P·A = L·U with partial pivoting,
// packed into a single n×n buffer: strict lower part holds L (unit diagonal
// implied), upper part holds U.
type LUFactors struct {
	n    int
	lu   []float64 // packed factors, row-major
	perm []int     // perm[i] = original row placed at row i
}

// LU performs Doolittle LU decomposition with row pivoting on a square matrix.
//
// Stage 1 (Validate): square, non-nil, finite entries.
// Stage 2 (Prepare): copy A into a packed buffer and the identity permutation.
// Stage 3 (Execute): for each column k pick the largest |a_ik| for i ≥ k, swap
// it into place, then eliminate below the pivot.
//
// Returns ErrSingular when a pivot falls below pivotTol·max|A|.
// Time Complexity: O(n³); Memory: O(n²).
func LU(m Matrix) (*LUFactors, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	n := m.Rows()

	// Stage 2: packed copy (fast path for *Dense).
	buf := make([]float64, n*n)
	if d, ok := m.(*Dense); ok {
		copy(buf, d.data)
	} else {
		var v float64
		var err error
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if v, err = m.At(i, j); err != nil {
					return nil, matrixErrorf(opLU, err)
				}
				buf[i*n+j] = v
			}
		}
	}
	if err := ValidateFiniteVec(buf); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	scale := 0.0
	for _, v := range buf {
		scale = math.Max(scale, math.Abs(v))
	}
	if scale == 0 {
		return nil, matrixErrorf(opLU, ErrSingular) // the zero matrix has no factorization
	}
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	// Stage 3: elimination with partial pivoting.
	var (
		i, j, k, p int
		pivot, f   float64
	)
	for k = 0; k < n; k++ {
		p = k
		for i = k + 1; i < n; i++ {
			if math.Abs(buf[i*n+k]) > math.Abs(buf[p*n+k]) {
				p = i
			}
		}
		pivot = buf[p*n+k]
		if math.Abs(pivot) <= pivotTol*scale {
			return nil, matrixErrorf(opLU, fmt.Errorf("pivot %d: %w", k, ErrSingular))
		}
		if p != k {
			for j = 0; j < n; j++ {
				buf[k*n+j], buf[p*n+j] = buf[p*n+j], buf[k*n+j]
			}
			perm[k], perm[p] = perm[p], perm[k]
		}
		for i = k + 1; i < n; i++ {
			f = buf[i*n+k] / pivot
			buf[i*n+k] = f // store L multiplier in place
			if f == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				buf[i*n+j] -= f * buf[k*n+j]
			}
		}
	}

	return &LUFactors{n: n, lu: buf, perm: perm}, nil
}

// SolveVec solves A·x = b with the stored factors via forward then backward
// substitution. b is not modified.
// Complexity: O(n²).
func (f *LUFactors) SolveVec(b []float64) ([]float64, error) {
	if err := ValidateVecLen(b, f.n); err != nil {
		return nil, matrixErrorf(opSolveLU, err)
	}
	n := f.n
	x := make([]float64, n)

	// Forward: L·y = P·b (unit diagonal).
	var sum float64
	for i := 0; i < n; i++ {
		sum = b[f.perm[i]]
		for k := 0; k < i; k++ {
			sum -= f.lu[i*n+k] * x[k]
		}
		x[i] = sum
	}
	// Backward: U·x = y.
	for i := n - 1; i >= 0; i-- {
		sum = x[i]
		for k := i + 1; k < n; k++ {
			sum -= f.lu[i*n+k] * x[k]
		}
		x[i] = sum / f.lu[i*n+i]
	}
	if err := ValidateFiniteVec(x); err != nil {
		return nil, matrixErrorf(opSolveLU, fmt.Errorf("%w: %v", ErrSingular, err))
	}

	return x, nil
}

// SolveLU factors a and solves a·x = b in one call.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf, ErrSingular.
func SolveLU(a Matrix, b []float64) ([]float64, error) {
	f, err := LU(a)
	if err != nil {
		return nil, matrixErrorf(opSolveLU, err)
	}

	return f.SolveVec(b)
}
