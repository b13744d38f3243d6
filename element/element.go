// SPDX-License-Identifier: MIT

// Package element provides the closed-form stiffness matrix of a unit-square,
// unit-thickness, 4-node bilinear plane-stress element.
package element

import (
	"errors"
	"fmt"
	"math"

	"github.com/adrian0850/sbeso/matrix"
	"github.com/adrian0850/sbeso/mesh"
)

// ErrBadMaterial indicates a non-physical material (E ≤ 0, ν ∉ (-1, 0.5), non-finite).
var ErrBadMaterial = errors.New("element: invalid material")

// symmetryTol bounds |KE[i,j] - KE[j,i]| for the generated matrix.
const symmetryTol = 1e-12

// Material holds isotropic linear-elastic constants.
type Material struct {
	E  float64 // Young's modulus
	Nu float64 // Poisson's ratio
}

// DefaultMaterial returns E = 1.0, ν = 0.3.
func DefaultMaterial() Material {
	return Material{E: 1.0, Nu: 0.3}
}

// Validate reports ErrBadMaterial for non-physical constants.
func (m Material) Validate() error {
	if math.IsNaN(m.E) || math.IsInf(m.E, 0) || m.E <= 0 {
		return fmt.Errorf("E=%g: %w", m.E, ErrBadMaterial)
	}
	if math.IsNaN(m.Nu) || m.Nu <= -1 || m.Nu >= 0.5 {
		return fmt.Errorf("nu=%g: %w", m.Nu, ErrBadMaterial)
	}

	return nil
}

// stencil maps KE[i][j] to an index into the 8 stiffness coefficients k.
var stencil = [mesh.DOFsPerElement][mesh.DOFsPerElement]int{
	{0, 1, 2, 3, 4, 5, 6, 7},
	{1, 0, 7, 6, 5, 4, 3, 2},
	{2, 7, 0, 5, 6, 3, 4, 1},
	{3, 6, 5, 0, 7, 2, 1, 4},
	{4, 5, 6, 7, 0, 1, 2, 3},
	{5, 4, 3, 2, 1, 0, 7, 6},
	{6, 3, 4, 1, 2, 7, 0, 5},
	{7, 2, 1, 4, 3, 6, 5, 0},
}

// Coefficients returns the 8 distinct entries k[0..7] of KE before the
// E/(1-ν²) factor.
func Coefficients(nu float64) [8]float64 {
	return [8]float64{
		1.0/2 - nu/6,
		1.0/8 + nu/8,
		-1.0/4 - nu/12,
		-1.0/8 + 3*nu/8,
		-1.0/4 + nu/12,
		-1.0/8 - nu/8,
		nu / 6,
		1.0/8 - 3*nu/8,
	}
}

// Stiffness returns the 8×8 element stiffness matrix KE for m.
// Stage 1 (Validate): material constants.
// Stage 2 (Execute): KE[i,j] = E/(1-ν²) · k[stencil[i][j]].
// Stage 3 (Finalize): verify symmetry.
// The result is a pure function of (E, ν); callers compute it once per run
// and share it read-only.
func Stiffness(m Material) (*matrix.Dense, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	k := Coefficients(m.Nu)
	factor := m.E / (1 - m.Nu*m.Nu)

	values := make([]float64, 0, mesh.DOFsPerElement*mesh.DOFsPerElement)
	for _, row := range stencil {
		for _, idx := range row {
			values = append(values, factor*k[idx])
		}
	}
	ke, err := matrix.NewDenseFrom(mesh.DOFsPerElement, mesh.DOFsPerElement, values)
	if err != nil {
		return nil, fmt.Errorf("element: %w", err)
	}
	if err = matrix.ValidateSymmetric(ke, symmetryTol); err != nil {
		return nil, fmt.Errorf("element: %w", err)
	}

	return ke, nil
}
