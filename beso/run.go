// SPDX-License-Identifier: MIT

package beso

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/adrian0850/sbeso/boundary"
	"github.com/adrian0850/sbeso/element"
	"github.com/adrian0850/sbeso/fem"
	"github.com/adrian0850/sbeso/grid"
	"github.com/adrian0850/sbeso/matrix"
	"github.com/adrian0850/sbeso/mesh"
	"github.com/adrian0850/sbeso/sensitivity"
	"github.com/adrian0850/sbeso/update"
)

// Result summarizes a run.
type Result struct {
	Design     *grid.Field // final density grid (nely × nelx)
	History    []float64   // compliance per iteration
	Volumes    []float64   // achieved volume fraction per iteration
	Iterations int
	Change     float64
	Converged  bool
	Volume     float64 // mean(Design)
	Islands    int     // 4-connected solid regions of Design
}

// Run optimizes the layout described by cfg.
//
// Stage 1 (Validate): cfg and options; any violation is a *ConfigError and no
// FE work happens.
// Stage 2 (Prepare): mesh, KE, boundary conditions and solver are built once.
// Stage 3 (Iterate): until Change reports convergence:
//
//	a. check ctx and the iteration cap;
//	b. vol = max(vol·(1-ER), VolFrac);
//	c. solve, analyze, filter, stabilize with the previous iteration's filtered field;
//	d. bisect for the new design;
//	e. log, then notify obs (nil obs is allowed).
//
// Stage 4 (Finalize): count solid islands of the final design.
func Run(ctx context.Context, cfg Config, obs Observer, opts ...Option) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := defaultRunOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.maxIter <= 0 {
		return nil, &ConfigError{Field: "MaxIterations", Value: o.maxIter, Err: ErrBadMaxIterations}
	}
	if !(o.xmin > 0 && o.xmin < 1) {
		return nil, &ConfigError{Field: "XMin", Value: o.xmin, Err: update.ErrBadXMin}
	}
	if !(o.tol > 0) || math.IsInf(o.tol, 0) {
		return nil, &ConfigError{Field: "Tolerance", Value: o.tol, Err: update.ErrBadTolerance}
	}

	// Stage 2: per-run inputs.
	m, _ := mesh.New(cfg.Width, cfg.Height)
	ke, err := element.Stiffness(cfg.Material)
	if err != nil {
		return nil, &ConfigError{Field: "Material", Value: cfg.Material, Err: err}
	}
	var bopts []boundary.Option
	if o.hasForce {
		if o.force == 0 || math.IsNaN(o.force) || math.IsInf(o.force, 0) {
			return nil, &ConfigError{Field: "Force", Value: o.force, Err: boundary.ErrBadForce}
		}
		bopts = append(bopts, boundary.WithForce(o.force))
	}
	cond, err := boundary.Resolve(m, cfg.Boundary, cfg.Load, bopts...)
	if err != nil {
		return nil, &ConfigError{Field: "Boundary/Load", Value: cfg.Boundary.String() + "/" + cfg.Load.String(), Err: err}
	}
	solver, err := fem.NewSolver(m, ke, cond, fem.WithBackend(o.backend))
	if err != nil {
		return nil, &ConfigError{Field: "Backend", Value: o.backend, Err: err}
	}
	log := o.logger.With(slog.String("mesh", m.String()))
	log.Debug("beso start",
		slog.String("boundary", cfg.Boundary.String()),
		slog.String("load", cfg.Load.String()),
		slog.Int("free_dofs", len(cond.Free)),
		slog.String("backend", o.backend.String()),
	)

	// Stage 3: iterate.
	x, _ := grid.Filled(m.Nely, m.Nelx, 1)
	res := &Result{Design: x, Change: 1, Volume: 1}
	vol := 1.0
	var prevFiltered *grid.Field // filter output of the previous iteration

	for i := 1; ; i++ {
		if err = ctx.Err(); err != nil {
			return res.finish(), err
		}
		if i > o.maxIter {
			return res.finish(), fmt.Errorf("%w: %d iterations, change %.4g", ErrMaxIterations, o.maxIter, res.Change)
		}
		vol = math.Max(vol*(1-cfg.EvolutionRatio), cfg.VolFrac)

		u, err := solver.Solve(x, cfg.Penalty)
		if err != nil {
			if errors.Is(err, matrix.ErrSingular) {
				return res.finish(), &SingularSystemError{Iteration: i, Err: err}
			}
			return res.finish(), fmt.Errorf("beso: iteration %d: %w", i, err)
		}
		a, err := sensitivity.Analyze(m, ke, x, u, cfg.Penalty)
		if err != nil {
			return res.finish(), fmt.Errorf("beso: iteration %d: %w", i, err)
		}
		filtered, err := sensitivity.Filter(a.Sensitivity, cfg.FilterRadius)
		if err != nil {
			return res.finish(), fmt.Errorf("beso: iteration %d: %w", i, err)
		}
		dc, err := sensitivity.Stabilize(filtered, prevFiltered)
		if err != nil {
			return res.finish(), fmt.Errorf("beso: iteration %d: %w", i, err)
		}
		prevFiltered = filtered

		up, err := update.Update(dc, vol, update.WithXMin(o.xmin), update.WithTolerance(o.tol))
		if err != nil {
			return res.finish(), fmt.Errorf("beso: iteration %d: %w", i, err)
		}
		if up.Degenerate {
			log.Debug("degenerate sensitivity range, design reset to solid", slog.Int("it", i))
		}
		x = up.Design

		res.Design = x
		res.Iterations = i
		res.History = append(res.History, a.Compliance)
		res.Volume = x.Mean()
		res.Volumes = append(res.Volumes, res.Volume)
		res.Change, res.Converged = Change(res.History)

		log.Info("beso iteration",
			slog.Int("it", i),
			slog.Float64("obj", a.Compliance),
			slog.Float64("vol", res.Volume),
			slog.Float64("ch", res.Change),
		)
		log.Debug("bisection", slog.Int("it", i), slog.Int("steps", up.Steps), slog.Float64("threshold", up.Threshold))

		if obs != nil {
			it := Iteration{
				Index:      i,
				Design:     x.Clone(),
				Compliance: a.Compliance,
				Volume:     res.Volume,
				Target:     vol,
				Change:     res.Change,
			}
			if err = obs.Observe(it); err != nil {
				return res.finish(), fmt.Errorf("beso: observer at iteration %d: %w", i, err)
			}
		}
		if res.Converged {
			break
		}
	}

	return res.finish(), nil
}

// finish fills the derived fields of res.
func (r *Result) finish() *Result {
	r.Islands = r.Design.CountComponents(1, grid.Conn4)

	return r
}

// Optimize runs cfg built from positional arguments with the remaining
// fields at their defaults, returning the final design and compliance history.
func Optimize(width, height int, volfrac, er, rmin float64, bc boundary.BoundaryCase, lc boundary.LoadCase, obs Observer) (*grid.Field, []float64, error) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = width, height
	cfg.VolFrac, cfg.EvolutionRatio, cfg.FilterRadius = volfrac, er, rmin
	cfg.Boundary, cfg.Load = bc, lc

	res, err := Run(context.Background(), cfg, obs)
	if err != nil {
		if res != nil {
			return res.Design, res.History, err
		}
		return nil, nil, err
	}

	return res.Design, res.History, nil
}
