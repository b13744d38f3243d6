// SPDX-License-Identifier: MIT

package boundary

import "errors"

var (
	// ErrUnknownBoundaryCase is returned for a BoundaryCase outside the enum.
	ErrUnknownBoundaryCase = errors.New("boundary: unknown boundary case")

	// ErrUnknownLoadCase is returned for a LoadCase outside the enum.
	ErrUnknownLoadCase = errors.New("boundary: unknown load case")

	// ErrNoSupports indicates an empty fixed-DOF set.
	ErrNoSupports = errors.New("boundary: no fixed DOFs")

	// ErrDOFOutOfRange indicates a DOF index outside [0, NDOF).
	ErrDOFOutOfRange = errors.New("boundary: DOF out of range")

	// ErrLoadOnSupport indicates the load DOF is itself fixed.
	ErrLoadOnSupport = errors.New("boundary: load applied to a fixed DOF")

	// ErrBadForce indicates a zero or non-finite load magnitude.
	ErrBadForce = errors.New("boundary: force must be finite and non-zero")
)
