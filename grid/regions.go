// SPDX-License-Identifier: MIT

package grid

// Regions finds all 4-connected regions of Free cells.
// Each region lists its coordinates in BFS discovery order; regions are
// ordered by the row-major position of their first cell.
//
// Time:   O(rows·cols·4).
// Memory: O(rows·cols) for visited flags and output.
func (g *Grid) Regions() [][]Coord {
	seen := make([][]bool, g.rows)
	for r := range seen {
		seen[r] = make([]bool, g.cols)
	}

	var regions [][]Coord
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r][c] != Free || seen[r][c] {
				continue
			}
			seen[r][c] = true
			queue := []Coord{{Row: r, Col: c}}
			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				for _, d := range Offsets4 {
					v := u.Add(d)
					if !g.IsFree(v) || seen[v.Row][v.Col] {
						continue
					}
					seen[v.Row][v.Col] = true
					queue = append(queue, v)
				}
			}
			regions = append(regions, queue)
		}
	}

	return regions
}

// RegionIndex labels every Free cell with the index of its region in
// Regions(). Non-free cells are labelled -1.
func (g *Grid) RegionIndex() [][]int {
	labels := make([][]int, g.rows)
	for r := range labels {
		labels[r] = make([]int, g.cols)
		for c := range labels[r] {
			labels[r][c] = -1
		}
	}
	for i, region := range g.Regions() {
		for _, p := range region {
			labels[p.Row][p.Col] = i
		}
	}

	return labels
}

// SameRegion reports whether a and b are both Free and 4-connected through
// Free cells.
func (g *Grid) SameRegion(a, b Coord) bool {
	if !g.IsFree(a) || !g.IsFree(b) {
		return false
	}
	labels := g.RegionIndex()

	return labels[a.Row][a.Col] == labels[b.Row][b.Col]
}
