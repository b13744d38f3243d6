// SPDX-License-Identifier: MIT

package render

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/adrian0850/sbeso/grid"
)

// DefaultCellSize is the edge length of one element in pixels.
const DefaultCellSize = 24

// ErrNilField is returned when asked to draw a nil field.
var ErrNilField = errors.New("render: nil field")

// densityGrid adapts a grid.Field to plotter.GridXYZ. Plot rows grow upward,
// so plot row r shows field row rows-1-r.
type densityGrid struct{ f *grid.Field }

func (g densityGrid) Dims() (c, r int) { return g.f.Cols(), g.f.Rows() }

func (g densityGrid) Z(c, r int) float64 {
	v, _ := g.f.At(g.f.Rows()-1-r, c)
	return v
}

func (g densityGrid) X(c int) float64 { return float64(c) }
func (g densityGrid) Y(r int) float64 { return float64(r) }

// cellMap is a heat map that reserves no glyph padding, so cells stay
// pixel-aligned whatever the cell size.
type cellMap struct{ *plotter.HeatMap }

func (cellMap) GlyphBoxes(*plot.Plot) []plot.GlyphBox { return nil }

// densityPalette is the sequential yellow→brown map; looked up once.
var densityPalette = func() palette.Palette {
	p, err := brewer.GetPalette(brewer.TypeAny, "YlOrBr", 9)
	if err != nil {
		return palette.Heat(9, 1)
	}
	return p
}()

// DensityPlot builds an axis-free heat map of f on the fixed scale [0, 1].
func DensityPlot(f *grid.Field) (*plot.Plot, error) {
	if f == nil {
		return nil, ErrNilField
	}
	h := plotter.NewHeatMap(densityGrid{f}, densityPalette)
	h.Min, h.Max = 0, 1 // fixed scale: an all-solid frame must not collapse the range

	p := plot.New()
	p.HideAxes()
	p.X.Padding, p.Y.Padding = 0, 0
	p.Add(cellMap{h})

	return p, nil
}

// rasterize draws f onto a canvas of cols·cell × rows·cell pixels.
func rasterize(f *grid.Field, cell int) (*vgimg.Canvas, error) {
	p, err := DensityPlot(f)
	if err != nil {
		return nil, err
	}
	if cell <= 0 {
		cell = DefaultCellSize
	}
	img := image.NewRGBA(image.Rect(0, 0, f.Cols()*cell, f.Rows()*cell))
	c := vgimg.NewWith(vgimg.UseImage(img))
	p.Draw(draw.New(c))

	return c, nil
}

// WritePNG encodes f as PNG to w.
func WritePNG(w io.Writer, f *grid.Field, cell int) error {
	c, err := rasterize(f, cell)
	if err != nil {
		return err
	}
	if _, err = (vgimg.PngCanvas{Canvas: c}).WriteTo(w); err != nil {
		return fmt.Errorf("render: png: %w", err)
	}

	return nil
}

// DensityPNG writes f as a PNG file at path, creating parent directories.
func DensityPNG(path string, f *grid.Field, cell int) (err error) {
	if f == nil {
		return ErrNilField
	}
	if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	defer func() { err = errors.Join(err, file.Close()) }()

	bw := bufio.NewWriter(file)
	if err = WritePNG(bw, f, cell); err != nil {
		return err
	}
	if err = bw.Flush(); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	return nil
}

// encodeJPEG renders f to an in-memory JPEG and reports its pixel size.
func encodeJPEG(f *grid.Field, cell int) ([]byte, image.Point, error) {
	c, err := rasterize(f, cell)
	if err != nil {
		return nil, image.Point{}, err
	}
	var buf bytes.Buffer
	if _, err = (vgimg.JpegCanvas{Canvas: c}).WriteTo(&buf); err != nil {
		return nil, image.Point{}, fmt.Errorf("render: jpeg: %w", err)
	}

	return buf.Bytes(), c.Image().Bounds().Size(), nil
}
