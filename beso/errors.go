// SPDX-License-Identifier: MIT

package beso

import (
	"errors"
	"fmt"
)

var (
	// ErrBadVolumeFraction indicates VolFrac outside (0, 1].
	ErrBadVolumeFraction = errors.New("beso: volume fraction must be in (0, 1]")

	// ErrBadEvolutionRatio indicates EvolutionRatio outside (0, 1).
	ErrBadEvolutionRatio = errors.New("beso: evolution ratio must be in (0, 1)")

	// ErrBadFilterRadius indicates a non-positive or non-finite FilterRadius.
	ErrBadFilterRadius = errors.New("beso: filter radius must be > 0")

	// ErrBadPenalty indicates a penalization exponent below 1.
	ErrBadPenalty = errors.New("beso: penalty must be >= 1")

	// ErrBadMaxIterations indicates a non-positive iteration cap.
	ErrBadMaxIterations = errors.New("beso: max iterations must be > 0")

	// ErrMaxIterations is returned when the cap is hit before convergence.
	ErrMaxIterations = errors.New("beso: iteration limit reached before convergence")
)

// ConfigError reports an invalid configuration field.
type ConfigError struct {
	Field string
	Value any
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("beso: invalid %s %v: %v", e.Field, e.Value, e.Err)
}

// Unwrap exposes the underlying sentinel.
func (e *ConfigError) Unwrap() error { return e.Err }

// SingularSystemError reports an unsolvable free-DOF system.
type SingularSystemError struct {
	Iteration int
	Err       error
}

func (e *SingularSystemError) Error() string {
	return fmt.Sprintf("beso: singular system at iteration %d: %v", e.Iteration, e.Err)
}

// Unwrap exposes the solver error (matches matrix.ErrSingular).
func (e *SingularSystemError) Unwrap() error { return e.Err }
