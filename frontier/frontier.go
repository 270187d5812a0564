// Package frontier provides the node orderings that distinguish the
// uninformed search strategies: FIFO (breadth-first), LIFO (depth-first)
// and ascending path cost with a stable tie-break (uniform-cost).
//
// All three satisfy Frontier, so the traversal loop in package qsearch is
// written once. Membership is tracked by state value, which is what the
// graph-search variants test before enqueuing a child.
package frontier

import (
	"github.com/katalvlaran/lvsearch/core"
)

// Entry is a queued node: its arena ID plus the fields orderings need.
type Entry[S comparable] struct {
	ID    core.NodeID
	State S
	Cost  float64
}

// Frontier is the capability every ordering exposes.
// Pop on an empty Frontier panics.
type Frontier[S comparable] interface {
	Push(e Entry[S])
	Pop() Entry[S]
	Len() int
	Contains(s S) bool
}

// Improver is implemented by orderings that support decrease-key.
// Improve replaces the queued entry for e.State with e when e is strictly
// cheaper and reports whether it did.
type Improver[S comparable] interface {
	Improve(e Entry[S]) bool
}

// membership counts queued entries per state.
type membership[S comparable] map[S]int

func (m membership[S]) add(s S) { m[s]++ }

func (m membership[S]) remove(s S) {
	if m[s] <= 1 {
		delete(m, s)
		return
	}
	m[s]--
}

func (m membership[S]) has(s S) bool { return m[s] > 0 }
