// SPDX-License-Identifier: MIT

// Package sensitivity turns a displacement field into per-element update
// criteria.
//
// Three stages, each pure and returning a fresh grid.Field:
//
//   - Analyze: element compliance c_e = ½·x_e^p·U_eᵀ·KE·U_e and sensitivity
//     α_e = ½·x_e^(p-1)·U_eᵀ·KE·U_e; total compliance Σ c_e.
//   - Filter: distance-weighted average over a square neighborhood of radius
//     floor(rmin), weight max(0, rmin - dist), dist measured in element indices.
//     A neighborhood of zero total weight keeps the raw value.
//   - Stabilize: element-wise mean with the previous iteration's filtered field.
//
// Fields are indexed (row, col) = (ely, elx).
package sensitivity

import "errors"

var (
	// ErrBadRadius indicates a non-positive or non-finite filter radius.
	ErrBadRadius = errors.New("sensitivity: filter radius must be > 0")

	// ErrBadInput indicates a nil or mis-shaped argument.
	ErrBadInput = errors.New("sensitivity: input does not match mesh")
)
