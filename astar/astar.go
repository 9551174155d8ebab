// SPDX-License-Identifier: MIT

package astar

import (
	"container/heap"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/grid"
)

// FindPath searches g for a minimum-cost 4-directional path from start to goal.
//
// Returns:
//
//   - Result.Found == true: Path runs start..goal inclusive, Cost is its total
//     step cost, Expanded counts expansions (goal included).
//   - Result.Found == false, err == nil: the goal is unreachable.
//   - err != nil: invalid input (nil grid, endpoint out of bounds, bad option)
//     or the MaxExpansions cap was hit.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. g must be non-nil (ErrNilGrid).
//  3. start and goal must be in bounds (grid.ErrOutOfBounds).
//
// Movement rules:
//
//   - Intermediate cells must be Free.
//   - start is expanded whatever its state; goal may be entered unless it is
//     an Obstacle. Neither needs to be pre-marked Free.
//
// Tie-break: among open entries with equal f-score the most recently inserted
// one is expanded first.
//
// Reopening: a closed coordinate reached again at a strictly lower cost is
// reopened and expanded again, so the returned path stays minimal for any
// admissible heuristic, consistent or not. With a consistent heuristic no
// coordinate is ever reopened.
//
// FindPath never mutates g. Call Result.Path.Mark to record the path.
//
// Complexity:
//
//   - Time:  O(N log N) with N = rows·cols (each relaxation pushes once).
//   - Space: O(N) for score maps, predecessors and the heap.
func FindPath(g *grid.Grid, start, goal grid.Coord, opts ...Option) (Result, error) {
	// 1) Build and validate options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}

	// 2) Validate inputs before any search state is allocated.
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if !g.InBounds(start) {
		return Result{}, fmt.Errorf("astar: start %v: %w", start, grid.ErrOutOfBounds)
	}
	if !g.InBounds(goal) {
		return Result{}, fmt.Errorf("astar: goal %v: %w", goal, grid.ErrOutOfBounds)
	}

	rows, cols := g.Dimensions()
	r := &runner{
		g:        g,
		goal:     goal,
		options:  cfg,
		gScore:   make(map[grid.Coord]float64, rows*cols/4+1),
		cameFrom: make(map[grid.Coord]grid.Coord, rows*cols/4+1),
		closed:   mapset.New[grid.Coord](),
		pq:       make(openPQ, 0, rows+cols),
	}
	r.init(start)

	return r.process(start)
}

// runner holds the mutable state for a single FindPath execution.
type runner struct {
	g        *grid.Grid                // searched grid; read-only here
	goal     grid.Coord                // target coordinate
	options  Options                   // heuristic, step cost, hooks
	gScore   map[grid.Coord]float64    // best known cost from start
	cameFrom map[grid.Coord]grid.Coord // predecessor on the best known path
	closed   mapset.Set[grid.Coord]    // expanded at their current gScore
	pq       openPQ                    // open set
	seq      uint64                    // next insertion sequence number
	expanded int
}

// init seeds the open set with start at g = 0.
func (r *runner) init(start grid.Coord) {
	heap.Init(&r.pq)
	r.gScore[start] = 0
	r.push(start, 0)
}

// push inserts c with the given g-score; f = g + h(c, goal).
func (r *runner) push(c grid.Coord, g float64) {
	heap.Push(&r.pq, &openItem{
		coord: c,
		g:     g,
		f:     g + r.options.Heuristic(c, r.goal),
		seq:   r.seq,
	})
	r.seq++
}

// process pops the lowest-f entry until the goal is popped or the open set
// is exhausted.
func (r *runner) process(start grid.Coord) (Result, error) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*openItem)
		u := item.coord

		// Superseded by a cheaper push of the same coordinate.
		if item.g > r.gScore[u] {
			continue
		}
		if r.closed.Has(u) {
			continue
		}
		r.closed.Put(u)
		r.expanded++
		r.options.OnExpand(u, item.g, item.f)

		if u == r.goal {
			return Result{
				Path:     r.reconstruct(start),
				Cost:     r.gScore[u],
				Expanded: r.expanded,
				Found:    true,
			}, nil
		}

		if r.options.MaxExpansions > 0 && r.expanded >= r.options.MaxExpansions {
			return Result{Expanded: r.expanded}, fmt.Errorf("%w after %d expansions", ErrExpansionLimit, r.expanded)
		}

		r.relax(u)
	}

	return Result{Expanded: r.expanded}, nil
}

// relax examines the orthogonal neighbors of u (up, down, left, right) and
// records any strictly shorter path to them, reopening closed ones.
func (r *runner) relax(u grid.Coord) {
	gu := r.gScore[u]
	for _, d := range grid.Offsets4 {
		v := u.Add(d)
		if !r.enterable(v) {
			continue
		}
		tentative := gu + r.options.StepCost(u, v)
		if old, seen := r.gScore[v]; seen && tentative >= old {
			continue
		}
		r.gScore[v] = tentative
		r.cameFrom[v] = u
		if r.closed.Has(v) {
			r.closed.Remove(v)
		}
		r.push(v, tentative)
	}
}

// enterable reports whether the search may step onto c.
func (r *runner) enterable(c grid.Coord) bool {
	s, err := r.g.StateAt(c)
	if err != nil {
		return false
	}
	if c == r.goal {
		return s != grid.Obstacle
	}

	return s == grid.Free
}

// reconstruct follows predecessor links from the goal back to start and
// returns the path in start..goal order.
func (r *runner) reconstruct(start grid.Coord) Path {
	path := Path{r.goal}
	for cur := r.goal; cur != start; {
		prev, ok := r.cameFrom[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
