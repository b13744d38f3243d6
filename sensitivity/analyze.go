// SPDX-License-Identifier: MIT

package sensitivity

import (
	"fmt"
	"math"

	"github.com/adrian0850/sbeso/grid"
	"github.com/adrian0850/sbeso/matrix"
	"github.com/adrian0850/sbeso/mesh"
)

// Analysis is the outcome of one sensitivity pass.
type Analysis struct {
	Compliance  float64
	Sensitivity *grid.Field
}

// Analyze computes compliance and raw element sensitivities for design x
// under displacements u.
//
// Errors: mesh.ErrBadMesh, ErrBadInput (x not nely×nelx, len(u) ≠ NDOF,
// KE not 8×8).
// Complexity: O(nelx·nely·64).
func Analyze(m mesh.Mesh, ke *matrix.Dense, x *grid.Field, u []float64, penal float64) (Analysis, error) {
	if err := m.Validate(); err != nil {
		return Analysis{}, err
	}
	if ke == nil || ke.Rows() != mesh.DOFsPerElement || ke.Cols() != mesh.DOFsPerElement {
		return Analysis{}, fmt.Errorf("KE: %w", ErrBadInput)
	}
	if x == nil || x.Rows() != m.Nely || x.Cols() != m.Nelx {
		return Analysis{}, fmt.Errorf("design: %w", ErrBadInput)
	}
	if len(u) != m.NDOF() {
		return Analysis{}, fmt.Errorf("displacements: %d of %d: %w", len(u), m.NDOF(), ErrBadInput)
	}

	dc, _ := grid.New(m.Nely, m.Nelx)
	var total float64
	ue := make([]float64, mesh.DOFsPerElement)

	err := m.ForEachElement(func(elx, ely int) error {
		for a, d := range m.ElementDOFs(elx, ely) {
			ue[a] = u[d]
		}
		energy, err := matrix.QuadForm(ke, ue)
		if err != nil {
			return err
		}
		xe, _ := x.At(ely, elx)
		total += 0.5 * math.Pow(xe, penal) * energy
		return dc.Set(ely, elx, 0.5*math.Pow(xe, penal-1)*energy)
	})
	if err != nil {
		return Analysis{}, err
	}

	return Analysis{Compliance: total, Sensitivity: dc}, nil
}
