// SPDX-License-Identifier: MIT

package beso

import (
	"log/slog"

	"github.com/adrian0850/sbeso/fem"
	"github.com/adrian0850/sbeso/update"
)

// DefaultMaxIterations caps a run that never settles.
const DefaultMaxIterations = 500

// Option customizes Run.
type Option func(*runOptions)

type runOptions struct {
	maxIter  int
	logger   *slog.Logger
	backend  fem.Backend
	xmin     float64
	tol      float64
	force    float64
	hasForce bool
}

func defaultRunOptions() runOptions {
	return runOptions{
		maxIter: DefaultMaxIterations,
		logger:  slog.New(slog.DiscardHandler),
		backend: fem.BackendLU,
		xmin:    update.DefaultXMin,
		tol:     update.DefaultTolerance,
	}
}

// WithMaxIterations sets the iteration cap (default DefaultMaxIterations).
func WithMaxIterations(n int) Option { return func(o *runOptions) { o.maxIter = n } }

// WithLogger routes progress lines to l. A nil logger keeps the default,
// which discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *runOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithSolverBackend selects the K_ff factorization (default fem.BackendLU).
func WithSolverBackend(b fem.Backend) Option { return func(o *runOptions) { o.backend = b } }

// WithXMin sets the void density (default update.DefaultXMin).
func WithXMin(v float64) Option { return func(o *runOptions) { o.xmin = v } }

// WithTolerance sets the bisection tolerance (default update.DefaultTolerance).
func WithTolerance(v float64) Option { return func(o *runOptions) { o.tol = v } }

// WithForce overrides the load magnitude (default boundary.DefaultForce).
// Zero or non-finite values are rejected by Run.
func WithForce(f float64) Option {
	return func(o *runOptions) { o.force, o.hasForce = f, true }
}
