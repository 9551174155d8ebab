// SPDX-License-Identifier: MIT

package astar

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors returned by FindPath.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to FindPath.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrOptionViolation indicates an invalid Option value (e.g. a nil heuristic
	// or a negative expansion limit).
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrExpansionLimit indicates the search stopped after MaxExpansions
	// coordinates without reaching the goal. It is distinct from "no path":
	// a path may still exist.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")
)

// Heuristic estimates the remaining cost from a to b. It must never
// overestimate the true cost for FindPath to return shortest paths.
type Heuristic func(a, b grid.Coord) float64

// StepCost returns the cost of moving between two adjacent cells.
type StepCost func(from, to grid.Coord) float64

// Euclidean is the straight-line distance sqrt(Δrow² + Δcol²). It is the
// default heuristic and the default step cost. With unit 4-directional moves
// it is admissible but not tight.
func Euclidean(a, b grid.Coord) float64 {
	dr := float64(a.Row - b.Row)
	dc := float64(a.Col - b.Col)

	return math.Sqrt(dr*dr + dc*dc)
}

// Manhattan is |Δrow| + |Δcol|, the exact cost on an open 4-connected grid.
func Manhattan(a, b grid.Coord) float64 {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}

	return float64(dr + dc)
}

// HeuristicByName resolves "euclidean" or "manhattan".
func HeuristicByName(name string) (Heuristic, error) {
	switch name {
	case "", "euclidean":
		return Euclidean, nil
	case "manhattan":
		return Manhattan, nil
	}

	return nil, fmt.Errorf("%w: unknown heuristic %q", ErrOptionViolation, name)
}

// Options configures a single FindPath call.
//
// Heuristic     – remaining-cost estimate; default Euclidean.
// StepCost      – cost between adjacent cells; default Euclidean.
// MaxExpansions – stop with ErrExpansionLimit after this many expansions;
//
//	0 means no limit.
//
// OnExpand      – called each time a coordinate is removed from the open set
//
//	and expanded, with its g and f scores.
type Options struct {
	Heuristic     Heuristic
	StepCost      StepCost
	MaxExpansions int
	OnExpand      func(c grid.Coord, g, f float64)

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring FindPath.
type Option func(*Options)

// DefaultOptions returns Options with Euclidean heuristic and step cost,
// no expansion limit and a no-op OnExpand hook.
func DefaultOptions() Options {
	return Options{
		Heuristic:     Euclidean,
		StepCost:      Euclidean,
		MaxExpansions: 0,
		OnExpand:      func(grid.Coord, float64, float64) {},
	}
}

// WithHeuristic replaces the heuristic. A nil h is recorded as ErrOptionViolation.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: nil heuristic", ErrOptionViolation)
			return
		}
		o.Heuristic = h
	}
}

// WithStepCost replaces the step cost. A nil fn is recorded as ErrOptionViolation.
func WithStepCost(fn StepCost) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("%w: nil step cost", ErrOptionViolation)
			return
		}
		o.StepCost = fn
	}
}

// WithMaxExpansions caps the number of expanded coordinates. Negative n is
// recorded as ErrOptionViolation; 0 disables the cap.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions must be >= 0, got %d", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnExpand installs an expansion hook. A nil fn keeps the no-op hook.
func WithOnExpand(fn func(c grid.Coord, g, f float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Result is the outcome of a search. Found == false with a nil error means
// the goal is unreachable; it is not a failure.
type Result struct {
	Path     Path    // start..goal inclusive; nil when not found
	Cost     float64 // g-score of the goal; 0 when not found
	Expanded int     // coordinates removed from the open set and expanded
	Found    bool
}
