package core

import (
	"errors"
)

// Sentinel errors shared by all search strategies.
var (
	// ErrNilProblem is returned when a nil Problem is passed to a search.
	ErrNilProblem = errors.New("core: problem is nil")

	// ErrNegativeStepCost is returned when a Problem reports a negative
	// or NaN step cost.
	ErrNegativeStepCost = errors.New("core: negative step cost")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("core: invalid option supplied")
)

// Problem is the state-space capability consumed by the searches.
//
// Actions must return a finite slice; its order fixes traversal order and
// tie-breaking among equal-cost nodes.
type Problem[S comparable, A any] interface {
	// InitialState returns the root state of the search.
	InitialState() S

	// Actions lists the actions applicable in s.
	Actions(s S) []A

	// Result applies a to s and returns the successor state.
	Result(s S, a A) S

	// IsGoal reports whether s satisfies the goal.
	IsGoal(s S) bool
}

// StepCoster is implemented by Problems whose actions do not all cost 1.
// Costs must be non-negative.
type StepCoster[S comparable, A any] interface {
	StepCost(from S, a A, to S) float64
}

// NodeID addresses a Node inside its Tree.
type NodeID int

// NoParent is the parent index of the root node.
const NoParent NodeID = -1

// Node is an immutable traversal record.
type Node[S comparable, A any] struct {
	State    S
	Parent   NodeID  // NoParent for the root
	Action   A       // action applied to the parent's state; zero for the root
	PathCost float64 // sum of step costs from the root
	Depth    int     // root = 0
}

// IsRoot reports whether n is the root of its tree.
func (n Node[S, A]) IsRoot() bool { return n.Parent == NoParent }

// Outcome tags the result of a search.
type Outcome int

const (
	// Failure: no solution exists in the searched space.
	Failure Outcome = iota
	// Solved: a goal was reached; see Result.Actions.
	Solved
	// Cutoff: a depth limit truncated the search before it was exhausted.
	Cutoff
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case Failure:
		return "failure"
	case Solved:
		return "solved"
	case Cutoff:
		return "cutoff"
	default:
		return "unknown"
	}
}

// Result is what a search returns to its caller.
type Result[A any] struct {
	Outcome  Outcome
	Actions  []A     // root→goal order; empty unless Outcome == Solved
	PathCost float64 // cost of the solution path
	Depth    int     // number of actions in the solution path
}

// Solved reports whether the search reached a goal.
func (r Result[A]) Solved() bool { return r.Outcome == Solved }
