// Package astar finds minimum-cost paths on a grid.Grid with A* search.
//
// Overview:
//
//   - FindPath runs a heuristic best-first search from start to goal over
//     4-directionally adjacent Free cells.
//   - The open set is a binary heap keyed by (f-score, insertion order); an
//     entry superseded by a cheaper push is skipped when popped ("lazy
//     decrease-key"). A closed coordinate reached more cheaply is reopened.
//   - The default heuristic and step cost are both Euclidean distance. On a
//     unit 4-connected grid the heuristic is admissible, so returned paths are
//     shortest. Manhattan is available as a tighter alternative.
//
// Outcomes:
//
//   - Found:      Result.Found == true, Result.Path is start..goal.
//   - No path:    Result.Found == false and err == nil. This is a normal outcome.
//   - Failure:    err != nil (ErrNilGrid, grid.ErrOutOfBounds for endpoints,
//     ErrOptionViolation, ErrExpansionLimit).
//
// Tie-break:
//
//	When several open entries share the lowest f-score, the most recently
//	inserted one is expanded first. The order is deterministic, so repeated
//	calls on the same grid return the same path.
//
// Side effects:
//
//	FindPath only reads the grid and owns its score maps for the duration of
//	the call, so concurrent searches on one grid are safe. Marking the result
//	is an explicit, separate step:
//
//	res, err := astar.FindPath(g, grid.C(19, 0), grid.C(0, 19))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if res.Found {
//	    _ = res.Path.Mark(g)
//	}
//
// Options:
//
//   - WithHeuristic(h)      replace the remaining-cost estimate.
//   - WithStepCost(fn)      replace the adjacent-move cost.
//   - WithMaxExpansions(n)  stop with ErrExpansionLimit after n expansions.
//   - WithOnExpand(fn)      observe every expansion (tracing, animation).
//
// Complexity:
//
//   - Time:  O(N log N), N = rows·cols.
//   - Space: O(N).
package astar
