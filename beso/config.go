// SPDX-License-Identifier: MIT

package beso

import (
	"math"

	"github.com/adrian0850/sbeso/boundary"
	"github.com/adrian0850/sbeso/element"
	"github.com/adrian0850/sbeso/mesh"
)

// Config holds the problem definition of one run.
type Config struct {
	Width  int // elements along x (nelx)
	Height int // elements along y (nely)

	VolFrac        float64 // final volume fraction, (0, 1]
	EvolutionRatio float64 // per-iteration volume shrink, (0, 1)
	FilterRadius   float64 // sensitivity filter radius in element widths
	Penalty        float64 // density penalization exponent p

	Boundary boundary.BoundaryCase
	Load     boundary.LoadCase
	Material element.Material
}

// DefaultConfig returns the 5×5 cantilever: VolFrac 0.67, ER 0.02, rmin 1.5,
// p = 3, ALL_LEFT supports, B_RIGHT load, E = 1, ν = 0.3.
func DefaultConfig() Config {
	return Config{
		Width:          5,
		Height:         5,
		VolFrac:        0.67,
		EvolutionRatio: 0.02,
		FilterRadius:   1.5,
		Penalty:        3,
		Boundary:       boundary.AllLeft,
		Load:           boundary.BRight,
		Material:       element.DefaultMaterial(),
	}
}

// Validate checks every field and returns the first violation as *ConfigError.
func (c Config) Validate() error {
	if _, err := mesh.New(c.Width, c.Height); err != nil {
		return &ConfigError{Field: "mesh", Value: mesh.Mesh{Nelx: c.Width, Nely: c.Height}, Err: mesh.ErrBadMesh}
	}
	if !(c.VolFrac > 0 && c.VolFrac <= 1) {
		return &ConfigError{Field: "VolFrac", Value: c.VolFrac, Err: ErrBadVolumeFraction}
	}
	if !(c.EvolutionRatio > 0 && c.EvolutionRatio < 1) {
		return &ConfigError{Field: "EvolutionRatio", Value: c.EvolutionRatio, Err: ErrBadEvolutionRatio}
	}
	if !(c.FilterRadius > 0) || math.IsInf(c.FilterRadius, 0) {
		return &ConfigError{Field: "FilterRadius", Value: c.FilterRadius, Err: ErrBadFilterRadius}
	}
	if !(c.Penalty >= 1) || math.IsInf(c.Penalty, 0) {
		return &ConfigError{Field: "Penalty", Value: c.Penalty, Err: ErrBadPenalty}
	}
	if !c.Boundary.Valid() {
		return &ConfigError{Field: "Boundary", Value: c.Boundary, Err: boundary.ErrUnknownBoundaryCase}
	}
	if !c.Load.Valid() {
		return &ConfigError{Field: "Load", Value: c.Load, Err: boundary.ErrUnknownLoadCase}
	}
	if err := c.Material.Validate(); err != nil {
		return &ConfigError{Field: "Material", Value: c.Material, Err: err}
	}

	return nil
}
