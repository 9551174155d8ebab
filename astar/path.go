// SPDX-License-Identifier: MIT

package astar

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
)

// Path is an ordered sequence of coordinates from start to goal inclusive.
type Path []grid.Coord

// Steps returns the number of moves, len(p)-1 (0 for an empty path).
func (p Path) Steps() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Start returns the first coordinate. It panics on an empty path.
func (p Path) Start() grid.Coord { return p[0] }

// Goal returns the last coordinate. It panics on an empty path.
func (p Path) Goal() grid.Coord { return p[len(p)-1] }

// Contiguous reports whether every consecutive pair is 4-directionally adjacent.
func (p Path) Contiguous() bool {
	for i := 1; i < len(p); i++ {
		if Manhattan(p[i-1], p[i]) != 1 {
			return false
		}
	}
	return true
}

// Cost sums step(p[i-1], p[i]) over the path.
func (p Path) Cost(step StepCost) float64 {
	total := 0.0
	for i := 1; i < len(p); i++ {
		total += step(p[i-1], p[i])
	}
	return total
}

// Mark sets every coordinate of p to grid.Path in g. This is the explicit,
// opt-in mutation step; FindPath itself leaves the grid unchanged.
func (p Path) Mark(g *grid.Grid) error {
	if g == nil {
		return ErrNilGrid
	}
	if err := g.MarkPath(p); err != nil {
		return fmt.Errorf("astar: mark path: %w", err)
	}
	return nil
}

// String formats the path as "(r,c) -> (r,c) -> ...".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = c.String()
	}
	return strings.Join(parts, " -> ")
}
