package grid

// ConnectedComponents finds all contiguous regions of cells whose value is
// ≥ threshold, according to conn connectivity. In a design grid these are the
// solid "islands" of material.
// Returns a slice of components; each component is a slice of cell indices
// (row-major) in BFS discovery order, components ordered by their first cell.
//
// To convert an index back to (row, col), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (f *Field) ConnectedComponents(threshold float64, conn Connectivity) [][]int {
	seen := make([]bool, len(f.data))
	offsets := conn.offsets()
	var comps [][]int

	for r := 0; r < f.rows; r++ {
		for c := 0; c < f.cols; c++ {
			i0 := f.index(r, c)
			if f.data[i0] < threshold || seen[i0] {
				continue // void, or already collected
			}
			// BFS to collect component
			queue := []int{i0}
			seen[i0] = true

			for qi := 0; qi < len(queue); qi++ {
				ur, uc := f.Coordinate(queue[qi])
				for _, d := range offsets {
					vr, vc := ur+d[1], uc+d[0]
					if !f.InBounds(vr, vc) {
						continue
					}
					vi := f.index(vr, vc)
					if seen[vi] || f.data[vi] < threshold {
						continue
					}
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
			comps = append(comps, queue)
		}
	}

	return comps
}

// CountComponents is a shorthand for len(ConnectedComponents(threshold, conn)).
func (f *Field) CountComponents(threshold float64, conn Connectivity) int {
	return len(f.ConnectedComponents(threshold, conn))
}
