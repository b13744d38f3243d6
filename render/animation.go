// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/icza/mjpeg"

	"github.com/adrian0850/sbeso/grid"
)

// DefaultFPS is the playback rate of an Animation.
const DefaultFPS = 5

// ErrFrameSize is returned when a frame's grid differs in shape from the first.
var ErrFrameSize = errors.New("render: frame size differs from first frame")

// Animation writes density frames into an MJPEG AVI file. The file is
// created on the first frame, sized to that frame.
type Animation struct {
	path   string
	fps    int
	cell   int
	size   image.Point
	writer mjpeg.AviWriter
	frames int
}

// NewAnimation prepares an animation at path. Non-positive fps or cell fall
// back to DefaultFPS and DefaultCellSize.
func NewAnimation(path string, fps, cell int) *Animation {
	if fps <= 0 {
		fps = DefaultFPS
	}
	if cell <= 0 {
		cell = DefaultCellSize
	}

	return &Animation{path: path, fps: fps, cell: cell}
}

// AddFrame renders f and appends it.
func (a *Animation) AddFrame(f *grid.Field) error {
	jpg, size, err := encodeJPEG(f, a.cell)
	if err != nil {
		return err
	}
	if a.writer == nil {
		if err = os.MkdirAll(filepath.Dir(a.path), 0o755); err != nil {
			return fmt.Errorf("render: %w", err)
		}
		a.writer, err = mjpeg.New(a.path, int32(size.X), int32(size.Y), int32(a.fps))
		if err != nil {
			return fmt.Errorf("render: mjpeg: %w", err)
		}
		a.size = size
	}
	if size != a.size {
		return fmt.Errorf("%v vs %v: %w", size, a.size, ErrFrameSize)
	}
	if err = a.writer.AddFrame(jpg); err != nil {
		return fmt.Errorf("render: mjpeg frame %d: %w", a.frames+1, err)
	}
	a.frames++

	return nil
}

// Frames reports how many frames were written.
func (a *Animation) Frames() int { return a.frames }

// Close finalizes the AVI index. Closing an animation without frames is a no-op.
func (a *Animation) Close() error {
	if a.writer == nil {
		return nil
	}
	w := a.writer
	a.writer = nil
	if err := w.Close(); err != nil {
		return fmt.Errorf("render: mjpeg close: %w", err)
	}

	return nil
}
