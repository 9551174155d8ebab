// SPDX-License-Identifier: MIT

package astar

import "github.com/katalvlaran/gridpath/grid"

// openItem is one open-set entry. A coordinate may appear several times
// (lazy decrease-key); entries for already expanded coordinates are skipped
// when popped.
type openItem struct {
	coord grid.Coord
	g     float64 // g-score at push time
	f     float64 // priority
	seq   uint64  // insertion order, used for tie-breaking
}

// openPQ is a min-heap of *openItem ordered by f ascending. Among equal f the
// most recently pushed item (largest seq) comes first.
type openPQ []*openItem

// Len returns the number of items in the heap.
func (pq openPQ) Len() int { return len(pq) }

// Less orders by f, then by newest insertion.
func (pq openPQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq > pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq openPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap. Called by heap.Push; x must be *openItem.
func (pq *openPQ) Push(x interface{}) { *pq = append(*pq, x.(*openItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *openPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
