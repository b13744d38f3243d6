// SPDX-License-Identifier: MIT

package beso

import "github.com/adrian0850/sbeso/grid"

// Iteration is the per-iteration report handed to an Observer.
type Iteration struct {
	Index      int         // 1-based iteration number
	Design     *grid.Field // snapshot; the observer may keep or modify it
	Compliance float64
	Volume     float64 // achieved volume fraction, mean(Design)
	Target     float64 // scheduled volume fraction for this iteration
	Change     float64 // convergence measure; 1 until evaluated
}

// Observer receives one Iteration per step. A non-nil error aborts the run.
type Observer interface {
	Observe(it Iteration) error
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(it Iteration) error

// Observe calls f(it).
func (f ObserverFunc) Observe(it Iteration) error { return f(it) }
