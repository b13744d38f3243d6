// SPDX-License-Identifier: MIT
// Package matrix: kernels used by FE assembly and sensitivity analysis.
//
// All kernels validate their inputs through validators.go, never mutate their
// operands, and take the flat-slice fast path when handed a *Dense.

package matrix

import "fmt"

// ZeroSum is the initial value for dot products and substitutions.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opMatVec    = "MatVec"
	opQuadForm  = "QuadForm"
	opSubmatrix = "Submatrix"
	opGather    = "Gather"
	opLU        = "LU"
	opSolve     = "Solve"
	opSolveLU   = "SolveLU"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = m·x.
// Stage 1: validate m non-nil and len(x) == Cols(m).
// Stage 2: flat row loop for *Dense, At-based loop otherwise.
// Complexity: O(r*c).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if err := ValidateVecLen(x, cols); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, rows)
	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var sum float64
		for i = 0; i < rows; i++ {
			base = i * cols
			sum = ZeroSum
			for j = 0; j < cols; j++ {
				sum += d.data[base+j] * x[j]
			}
			y[i] = sum
		}
		return y, nil
	}

	var v float64
	var err error
	for i := 0; i < rows; i++ {
		sum := ZeroSum
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			sum += v * x[j]
		}
		y[i] = sum
	}

	return y, nil
}

// QuadForm returns the scalar xᵀ·m·x for a square m.
// Element energies in sensitivity analysis are QuadForm(KE, Ue).
// Complexity: O(n²) without allocating an intermediate vector on *Dense.
func QuadForm(m Matrix, x []float64) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opQuadForm, err)
	}
	n := m.Rows()
	if err := ValidateVecLen(x, n); err != nil {
		return 0, matrixErrorf(opQuadForm, err)
	}

	if d, ok := m.(*Dense); ok {
		total := ZeroSum
		for i := 0; i < n; i++ {
			if x[i] == 0 {
				continue // whole row contributes nothing
			}
			row := d.data[i*n : (i+1)*n]
			sum := ZeroSum
			for j, a := range row {
				sum += a * x[j]
			}
			total += x[i] * sum
		}
		return total, nil
	}

	y, err := MatVec(m, x)
	if err != nil {
		return 0, matrixErrorf(opQuadForm, err)
	}
	total := ZeroSum
	for i := range y {
		total += x[i] * y[i]
	}

	return total, nil
}

// Submatrix extracts the principal submatrix m[idx, idx].
// idx must be non-empty and every entry must address a row/column of m.
// FE solves use it to form K_ff from the free-DOF set.
// Complexity: O(k²) for k = len(idx).
func Submatrix(m *Dense, idx []int) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}
	if err := ValidateIndexSet(idx, m.r); err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}
	k := len(idx)
	sub, err := NewDense(k, k)
	if err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}

	var base int
	for a, i := range idx {
		base = i * m.c
		for b, j := range idx {
			sub.data[a*k+b] = m.data[base+j]
		}
	}

	return sub, nil
}

// Gather returns x[idx] as a fresh slice.
// Complexity: O(len(idx)).
func Gather(x []float64, idx []int) ([]float64, error) {
	if err := ValidateIndexSet(idx, len(x)); err != nil {
		return nil, matrixErrorf(opGather, err)
	}
	out := make([]float64, len(idx))
	for a, i := range idx {
		out[a] = x[i]
	}

	return out, nil
}
