// SPDX-License-Identifier: MIT

package render

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adrian0850/sbeso/beso"
	"github.com/adrian0850/sbeso/grid"
)

var _ beso.Observer = (*Recorder)(nil)

// Recorder is a beso.Observer that keeps the compliance and volume histories
// and, when configured, writes one PNG per iteration and an MJPEG animation.
// It is not safe for concurrent use; beso.Run calls it from one goroutine.
type Recorder struct {
	framesDir string
	cell      int
	anim      *Animation
	logger    *slog.Logger

	history []float64
	volumes []float64
	last    *grid.Field
}

// RecorderOption configures a Recorder.
type RecorderOption func(*Recorder)

// WithFrames writes beso_<i>.png into dir for every iteration.
func WithFrames(dir string) RecorderOption {
	return func(r *Recorder) { r.framesDir = dir }
}

// WithAnimation appends every iteration to an MJPEG AVI at path.
func WithAnimation(path string, fps int) RecorderOption {
	return func(r *Recorder) { r.anim = NewAnimation(path, fps, 0) }
}

// WithCellSize sets the pixel size of one element (default DefaultCellSize).
func WithCellSize(px int) RecorderOption {
	return func(r *Recorder) { r.cell = px }
}

// WithLogger logs each written artifact at Debug.
func WithLogger(l *slog.Logger) RecorderOption {
	return func(r *Recorder) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRecorder returns a Recorder; with no options it only keeps histories.
func NewRecorder(opts ...RecorderOption) *Recorder {
	r := &Recorder{cell: DefaultCellSize, logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(r)
	}
	if r.anim != nil {
		r.anim.cell = r.cell
	}

	return r
}

// Observe implements beso.Observer.
func (r *Recorder) Observe(it beso.Iteration) error {
	r.history = append(r.history, it.Compliance)
	r.volumes = append(r.volumes, it.Volume)
	r.last = it.Design

	if r.framesDir != "" {
		path := filepath.Join(r.framesDir, fmt.Sprintf("beso_%d.png", it.Index))
		if err := DensityPNG(path, it.Design, r.cell); err != nil {
			return err
		}
		r.logger.Debug("frame written", slog.String("path", path))
	}
	if r.anim != nil {
		if err := r.anim.AddFrame(it.Design); err != nil {
			return err
		}
	}

	return nil
}

// History returns a copy of the recorded compliances.
func (r *Recorder) History() []float64 { return append([]float64(nil), r.history...) }

// Volumes returns a copy of the recorded volume fractions.
func (r *Recorder) Volumes() []float64 { return append([]float64(nil), r.volumes...) }

// Last returns the most recent design, or nil before the first iteration.
func (r *Recorder) Last() *grid.Field { return r.last }

// WriteReport writes the HTML history chart to path.
func (r *Recorder) WriteReport(path string) (err error) {
	if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	bw := bufio.NewWriter(f)
	if err = HistoryHTML(bw, r.history, r.volumes); err != nil {
		return err
	}
	if err = bw.Flush(); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	r.logger.Debug("report written", slog.String("path", path))

	return nil
}

// WriteFinal writes the last observed design as a PNG at path.
func (r *Recorder) WriteFinal(path string) error {
	if r.last == nil {
		return ErrNilField
	}

	return DensityPNG(path, r.last, r.cell)
}

// Close finalizes the animation, if any.
func (r *Recorder) Close() error {
	if r.anim == nil {
		return nil
	}

	return r.anim.Close()
}
