package grid

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Field is a rows×cols grid of float64 values stored row-major.
// Row r, column c maps to data[r*cols+c]. A Field returned by any function in
// this package never aliases its inputs.
type Field struct {
	rows, cols int
	data       []float64
}

// New returns a rows×cols Field filled with zeros.
// Complexity: O(rows×cols).
func New(rows, cols int) (*Field, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}

	return &Field{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// Filled returns a rows×cols Field with every element set to v.
func Filled(rows, cols int, v float64) (*Field, error) {
	f, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range f.data {
		f.data[i] = v
	}

	return f, nil
}

// FromRows constructs a Field from a non-empty, rectangular 2D slice.
// It deep-copies the input.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
func FromRows(values [][]float64) (*Field, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	f := &Field{rows: h, cols: w, data: make([]float64, 0, h*w)}
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		f.data = append(f.data, row...)
	}

	return f, nil
}

// FromValues builds a rows×cols Field from a row-major slice, copying it.
// Returns ErrEmptyGrid for non-positive dimensions and ErrShapeMismatch
// when len(values) != rows*cols.
func FromValues(rows, cols int, values []float64) (*Field, error) {
	f, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(values) != rows*cols {
		return nil, fmt.Errorf("FromValues: %d values for %dx%d: %w", len(values), rows, cols, ErrShapeMismatch)
	}
	copy(f.data, values)

	return f, nil
}

// Rows returns the number of rows (elements along y).
func (f *Field) Rows() int { return f.rows }

// Cols returns the number of columns (elements along x).
func (f *Field) Cols() int { return f.cols }

// Len returns rows×cols.
func (f *Field) Len() int { return len(f.data) }

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (f *Field) InBounds(row, col int) bool {
	return row >= 0 && row < f.rows && col >= 0 && col < f.cols
}

// index maps (row, col) to a row-major index.
func (f *Field) index(row, col int) int {
	return row*f.cols + col
}

// Coordinate converts a row-major index back to (row, col).
func (f *Field) Coordinate(idx int) (row, col int) {
	return idx / f.cols, idx % f.cols
}

// At returns the value at (row, col).
func (f *Field) At(row, col int) (float64, error) {
	if !f.InBounds(row, col) {
		return 0, fmt.Errorf("At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return f.data[f.index(row, col)], nil
}

// Set writes v at (row, col).
func (f *Field) Set(row, col int, v float64) error {
	if !f.InBounds(row, col) {
		return fmt.Errorf("Set(%d,%d): %w", row, col, ErrOutOfRange)
	}
	f.data[f.index(row, col)] = v

	return nil
}

// Values returns a row-major copy of the field.
func (f *Field) Values() []float64 {
	out := make([]float64, len(f.data))
	copy(out, f.data)

	return out
}

// Rows2D returns a deep [][]float64 copy, row by row.
func (f *Field) Rows2D() [][]float64 {
	out := make([][]float64, f.rows)
	for r := range out {
		out[r] = make([]float64, f.cols)
		copy(out[r], f.data[r*f.cols:(r+1)*f.cols])
	}

	return out
}

// Clone returns a deep copy.
func (f *Field) Clone() *Field {
	return &Field{rows: f.rows, cols: f.cols, data: f.Values()}
}

// SameShape reports whether f and g have equal dimensions.
func (f *Field) SameShape(g *Field) bool {
	return g != nil && f.rows == g.rows && f.cols == g.cols
}

// Sum returns the sum of all elements.
func (f *Field) Sum() float64 { return floats.Sum(f.data) }

// Mean returns Sum()/Len(). For a design grid this is the volume fraction.
func (f *Field) Mean() float64 { return floats.Sum(f.data) / float64(len(f.data)) }

// Min returns the smallest element.
func (f *Field) Min() float64 { return floats.Min(f.data) }

// Max returns the largest element.
func (f *Field) Max() float64 { return floats.Max(f.data) }

// Count returns how many elements satisfy pred.
func (f *Field) Count(pred func(v float64) bool) int {
	n := 0
	for _, v := range f.data {
		if pred(v) {
			n++
		}
	}

	return n
}

// Map returns a new Field with fn applied to every element.
// fn receives the row-major index alongside the value.
func (f *Field) Map(fn func(idx int, v float64) float64) *Field {
	out := &Field{rows: f.rows, cols: f.cols, data: make([]float64, len(f.data))}
	for i, v := range f.data {
		out.data[i] = fn(i, v)
	}

	return out
}

// Average returns (f + g) / 2 element-wise.
// Returns ErrShapeMismatch when the shapes differ.
// Complexity: O(W×H).
func Average(f, g *Field) (*Field, error) {
	if f == nil || !f.SameShape(g) {
		return nil, ErrShapeMismatch
	}
	out := f.Clone()
	floats.Add(out.data, g.data)
	floats.Scale(0.5, out.data)

	return out, nil
}

// EqualApprox reports whether f and g have the same shape and all elements
// agree within tol.
func EqualApprox(f, g *Field, tol float64) bool {
	return f != nil && f.SameShape(g) && floats.EqualApprox(f.data, g.data, tol)
}
