// SPDX-License-Identifier: MIT

package beso

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	// ConvergenceTol is the relative change below which a run has converged.
	ConvergenceTol = 0.001
	// minHistory is the number of iterations that must elapse first.
	minHistory = 10
	// window is the width of each compared block of compliances.
	window = 4
)

// Change evaluates the convergence measure on a compliance history.
// With n = len(history) > 10 it compares history[n-9:n-5] against
// history[n-4:n]; otherwise it returns (1, false).
func Change(history []float64) (float64, bool) {
	n := len(history)
	if n <= minHistory {
		return 1, false
	}
	older := floats.Sum(history[n-9 : n-9+window])
	recent := floats.Sum(history[n-window : n])
	diff := math.Abs(older - recent)

	var change float64
	switch {
	case diff == 0:
		change = 0
	case recent == 0:
		change = math.Inf(1)
	default:
		change = diff / math.Abs(recent)
	}

	return change, change < ConvergenceTol
}
