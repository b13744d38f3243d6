// SPDX-License-Identifier: MIT

package sensitivity

import (
	"fmt"
	"math"

	"github.com/adrian0850/sbeso/grid"
)

// Filter smooths dc with a linearly decaying cone of radius rmin.
//
//	filtered(j,i) = Σ w(k,l)·dc(l,k) / Σ w(k,l),  w = max(0, rmin - ‖(i,j)-(k,l)‖)
//
// over |k-i| ≤ floor(rmin), |l-j| ≤ floor(rmin), clipped to the grid.
// A zero weight sum keeps dc(j,i). A constant field is returned unchanged.
//
// Errors: ErrBadRadius, ErrBadInput (nil dc).
// Complexity: O(rows·cols·floor(rmin)²).
func Filter(dc *grid.Field, rmin float64) (*grid.Field, error) {
	if dc == nil {
		return nil, ErrBadInput
	}
	if !(rmin > 0) || math.IsInf(rmin, 0) {
		return nil, fmt.Errorf("rmin=%g: %w", rmin, ErrBadRadius)
	}

	rows, cols := dc.Rows(), dc.Cols()
	reach := int(math.Floor(rmin))
	raw := dc.Values()
	out := make([]float64, len(raw))

	var (
		i, j, k, l int
		w, num, den float64
	)
	for i = 0; i < cols; i++ {
		for j = 0; j < rows; j++ {
			num, den = 0, 0
			for k = max(i-reach, 0); k <= min(i+reach, cols-1); k++ {
				for l = max(j-reach, 0); l <= min(j+reach, rows-1); l++ {
					w = rmin - math.Hypot(float64(i-k), float64(j-l))
					if w <= 0 {
						continue
					}
					num += w * raw[l*cols+k]
					den += w
				}
			}
			if den == 0 {
				out[j*cols+i] = raw[j*cols+i]
				continue
			}
			out[j*cols+i] = num / den
		}
	}

	return grid.FromValues(rows, cols, out)
}

// Stabilize averages the current filtered field with the previous one.
// A nil previous (first iteration) yields a copy of current.
//
// Errors: ErrBadInput (nil current), grid.ErrShapeMismatch.
func Stabilize(current, previous *grid.Field) (*grid.Field, error) {
	if current == nil {
		return nil, ErrBadInput
	}
	if previous == nil {
		return current.Clone(), nil
	}

	return grid.Average(current, previous)
}
