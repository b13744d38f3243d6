// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/adrian0850/sbeso/beso"
	"github.com/adrian0850/sbeso/boundary"
	"github.com/adrian0850/sbeso/fem"
	"github.com/adrian0850/sbeso/render"
)

// runFlags mirrors the flags of the run command.
type runFlags struct {
	width, height int
	volfrac       float64
	er            float64
	rmin          float64
	penal         float64
	boundary      string
	load          string
	young         float64
	poisson       float64
	force         float64
	maxIter       int
	backend       string

	frames string
	video  string
	fps    int
	cell   int
	report string
	final  string

	logFormat string
	verbose   bool
}

func newRunCmd() *cobra.Command {
	def := beso.DefaultConfig()
	f := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Optimize one boundary/load combination",
		Example: `  sbeso run
  sbeso run --width 60 --height 30 --volfrac 0.5 --boundary LT_LB --load M_RIGHT --video beso.avi
  sbeso run --report history.html --final final.png --log-format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runOptimization(cmd, f)
		},
	}

	fs := cmd.Flags()
	fs.IntVar(&f.width, "width", def.Width, "elements along x")
	fs.IntVar(&f.height, "height", def.Height, "elements along y")
	fs.Float64Var(&f.volfrac, "volfrac", def.VolFrac, "target volume fraction (0, 1]")
	fs.Float64Var(&f.er, "er", def.EvolutionRatio, "evolution ratio per iteration (0, 1)")
	fs.Float64Var(&f.rmin, "rmin", def.FilterRadius, "sensitivity filter radius in elements")
	fs.Float64Var(&f.penal, "penal", def.Penalty, "density penalization exponent")
	fs.StringVar(&f.boundary, "boundary", def.Boundary.String(), "support case (see 'sbeso cases')")
	fs.StringVar(&f.load, "load", def.Load.String(), "load case (see 'sbeso cases')")
	fs.Float64Var(&f.young, "young", def.Material.E, "Young's modulus")
	fs.Float64Var(&f.poisson, "poisson", def.Material.Nu, "Poisson's ratio")
	fs.Float64Var(&f.force, "force", boundary.DefaultForce, "load on the y DOF of the load node")
	fs.IntVar(&f.maxIter, "max-iter", beso.DefaultMaxIterations, "iteration cap")
	fs.StringVar(&f.backend, "backend", fem.BackendLU.String(), "linear solver: lu or doolittle")

	fs.StringVar(&f.frames, "frames", "", "directory for per-iteration PNG frames")
	fs.StringVar(&f.video, "video", "", "MJPEG AVI file of the design history")
	fs.IntVar(&f.fps, "fps", render.DefaultFPS, "animation frame rate")
	fs.IntVar(&f.cell, "cell", render.DefaultCellSize, "pixels per element")
	fs.StringVar(&f.report, "report", "", "HTML compliance/volume report")
	fs.StringVar(&f.final, "final", "", "PNG of the final design")

	fs.StringVar(&f.logFormat, "log-format", "text", "log format: text or json")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "debug logging")

	return cmd
}

// config turns the flags into a beso.Config.
func (f *runFlags) config() (beso.Config, error) {
	cfg := beso.DefaultConfig()
	cfg.Width, cfg.Height = f.width, f.height
	cfg.VolFrac, cfg.EvolutionRatio = f.volfrac, f.er
	cfg.FilterRadius, cfg.Penalty = f.rmin, f.penal
	cfg.Material.E, cfg.Material.Nu = f.young, f.poisson

	var err error
	if cfg.Boundary, err = boundary.ParseBoundaryCase(f.boundary); err != nil {
		return cfg, err
	}
	if cfg.Load, err = boundary.ParseLoadCase(f.load); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

// recorder builds the render sink, or nil when no artifact was requested.
func (f *runFlags) recorder(log *slog.Logger) *render.Recorder {
	if f.frames == "" && f.video == "" && f.report == "" && f.final == "" {
		return nil
	}
	opts := []render.RecorderOption{render.WithCellSize(f.cell), render.WithLogger(log)}
	if f.frames != "" {
		opts = append(opts, render.WithFrames(f.frames))
	}
	if f.video != "" {
		opts = append(opts, render.WithAnimation(f.video, f.fps))
	}

	return render.NewRecorder(opts...)
}

func runOptimization(cmd *cobra.Command, f *runFlags) (err error) {
	log, err := newLogger(cmd.ErrOrStderr(), f.logFormat, f.verbose)
	if err != nil {
		return err
	}
	cfg, err := f.config()
	if err != nil {
		return err
	}
	backend, err := fem.ParseBackend(f.backend)
	if err != nil {
		return err
	}

	rec := f.recorder(log)
	var obs beso.Observer
	if rec != nil {
		obs = rec
		defer func() { err = errors.Join(err, rec.Close()) }()
	}

	res, runErr := beso.Run(cmd.Context(), cfg, obs,
		beso.WithMaxIterations(f.maxIter),
		beso.WithLogger(log),
		beso.WithSolverBackend(backend),
		beso.WithForce(f.force),
	)
	if res == nil {
		return runErr
	}
	// Artifacts describe whatever was reached, even on a failed run.
	if rec != nil {
		if f.report != "" && len(res.History) > 0 {
			err = errors.Join(err, rec.WriteReport(f.report))
		}
		if f.final != "" && rec.Last() != nil {
			err = errors.Join(err, rec.WriteFinal(f.final))
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s/%s: iterations=%d converged=%t volume=%.4f islands=%d",
		fmt.Sprintf("%dx%d", cfg.Width, cfg.Height), cfg.Boundary, cfg.Load,
		res.Iterations, res.Converged, res.Volume, res.Islands)
	if n := len(res.History); n > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), " compliance=%.4f", res.History[n-1])
	}
	fmt.Fprintln(cmd.OutOrStdout())

	return errors.Join(runErr, err)
}
