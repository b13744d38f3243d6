// SPDX-License-Identifier: MIT

// Package update performs the BESO hard-kill density update: given filtered
// sensitivities and a target volume fraction, it bisects for the threshold
// that splits elements into solid (1) and void (xmin).
//
// The search bracket starts at [min(dc), max(dc)] and halves until its
// relative width (l2-l1)/l2 drops to the tolerance (default 1e-5) or
// MaxBisectionSteps is reached. At each midpoint th:
//
//	x_e = 1 if dc_e > th, else xmin
//	Σx > target·N  →  l1 = th (too much material, raise threshold)
//	otherwise      →  l2 = th
//
// A degenerate bracket (max ≤ 0, or max == min) carries no ranking
// information; Update then returns an all-solid design with Degenerate set.
package update

import (
	"errors"
	"fmt"
	"math"

	"github.com/adrian0850/sbeso/grid"
)

const (
	// DefaultXMin is the density of a void element.
	DefaultXMin = 0.001
	// DefaultTolerance is the relative bracket width that ends the bisection.
	DefaultTolerance = 1e-5
	// MaxBisectionSteps bounds the bisection loop.
	MaxBisectionSteps = 200
)

var (
	// ErrBadTarget indicates a target volume fraction outside (0, 1].
	ErrBadTarget = errors.New("update: target volume must be in (0, 1]")

	// ErrBadXMin indicates a void density outside (0, 1).
	ErrBadXMin = errors.New("update: xmin must be in (0, 1)")

	// ErrBadTolerance indicates a non-positive or non-finite tolerance.
	ErrBadTolerance = errors.New("update: tolerance must be > 0")

	// ErrNilField indicates a nil sensitivity field.
	ErrNilField = errors.New("update: nil sensitivity field")
)

// Result is the outcome of one update.
type Result struct {
	Design     *grid.Field
	Threshold  float64
	Steps      int
	Degenerate bool
}

type options struct {
	xmin float64
	tol  float64
}

// Option customizes Update.
type Option func(*options)

// WithXMin sets the void density (default DefaultXMin).
func WithXMin(v float64) Option { return func(o *options) { o.xmin = v } }

// WithTolerance sets the relative bracket width that stops the bisection
// (default DefaultTolerance).
func WithTolerance(v float64) Option { return func(o *options) { o.tol = v } }

// Update returns a new design field whose volume approximates target.
// dc is not modified.
//
// Errors: ErrNilField, ErrBadTarget, ErrBadXMin, ErrBadTolerance.
// Complexity: O(N·steps); steps ≈ log2(range/(tol·threshold)).
func Update(dc *grid.Field, target float64, opts ...Option) (Result, error) {
	o := options{xmin: DefaultXMin, tol: DefaultTolerance}
	for _, opt := range opts {
		opt(&o)
	}
	switch {
	case dc == nil:
		return Result{}, ErrNilField
	case !(target > 0 && target <= 1):
		return Result{}, fmt.Errorf("target=%g: %w", target, ErrBadTarget)
	case !(o.xmin > 0 && o.xmin < 1):
		return Result{}, fmt.Errorf("xmin=%g: %w", o.xmin, ErrBadXMin)
	case !(o.tol > 0) || math.IsInf(o.tol, 0):
		return Result{}, fmt.Errorf("tol=%g: %w", o.tol, ErrBadTolerance)
	}

	l1, l2 := dc.Min(), dc.Max()
	if l2 <= 0 || l2 == l1 {
		return Result{Design: dc.Map(solid), Threshold: l1, Degenerate: true}, nil
	}

	goal := target * float64(dc.Len())
	var (
		th    float64
		x     *grid.Field
		steps int
	)
	for (l2-l1)/l2 > o.tol && steps < MaxBisectionSteps {
		th = (l1 + l2) / 2
		x = hardKill(dc, th, o.xmin)
		if x.Sum()-goal > 0 {
			l1 = th
		} else {
			l2 = th
		}
		steps++
	}
	if x == nil { // bracket already narrower than tol
		th = (l1 + l2) / 2
		x = hardKill(dc, th, o.xmin)
	}

	return Result{Design: x, Threshold: th, Steps: steps}, nil
}

func solid(int, float64) float64 { return 1 }

// hardKill maps dc to {xmin, 1} around th: max(xmin, sign(dc - th)).
func hardKill(dc *grid.Field, th, xmin float64) *grid.Field {
	return dc.Map(func(_ int, v float64) float64 {
		if v > th {
			return 1
		}
		return xmin
	})
}
