package core

import (
	"fmt"
	"iter"
	"math"
)

// Expander generates child nodes for a Problem and counts how many times a
// node was expanded. One Expander serves one search invocation.
type Expander[S comparable, A any] struct {
	problem    Problem[S, A]
	coster     StepCoster[S, A] // nil: every step costs 1
	tree       *Tree[S, A]
	expansions int
	err        error
}

// NewExpander binds an Expander to p and the arena t.
func NewExpander[S comparable, A any](p Problem[S, A], t *Tree[S, A]) *Expander[S, A] {
	x := &Expander[S, A]{problem: p, tree: t}
	if c, ok := p.(StepCoster[S, A]); ok {
		x.coster = c
	}

	return x
}

// Expand lazily yields the children of id, one per action in the order the
// Problem lists them. Each child is appended to the arena when yielded.
// Every call counts as exactly one expansion, whether or not the sequence
// is consumed.
//
// On an invalid step cost the sequence stops early and Err reports
// ErrNegativeStepCost.
func (x *Expander[S, A]) Expand(id NodeID) iter.Seq[NodeID] {
	x.expansions++
	parent := x.tree.Node(id)
	actions := x.problem.Actions(parent.State)

	return func(yield func(NodeID) bool) {
		for _, a := range actions {
			next := x.problem.Result(parent.State, a)
			cost := x.stepCost(parent.State, a, next)
			if cost < 0 || math.IsNaN(cost) {
				if x.err == nil {
					x.err = fmt.Errorf("%w: %v at depth %d", ErrNegativeStepCost, cost, parent.Depth+1)
				}
				return
			}
			child := x.tree.add(Node[S, A]{
				State:    next,
				Parent:   id,
				Action:   a,
				PathCost: parent.PathCost + cost,
				Depth:    parent.Depth + 1,
			})
			if !yield(child) {
				return
			}
		}
	}
}

// Expansions returns the number of Expand calls so far.
func (x *Expander[S, A]) Expansions() int { return x.expansions }

// Err returns the first step-cost violation seen, if any.
func (x *Expander[S, A]) Err() error { return x.err }

func (x *Expander[S, A]) stepCost(from S, a A, to S) float64 {
	if x.coster == nil {
		return DefaultStepCost
	}

	return x.coster.StepCost(from, a, to)
}
