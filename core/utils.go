package core

// DefaultStepCost is the cost of an action when the Problem does not
// implement StepCoster.
const DefaultStepCost = 1.0

// IsGoal reports whether the state stored at id satisfies p's goal test.
func IsGoal[S comparable, A any](p Problem[S, A], t *Tree[S, A], id NodeID) bool {
	return p.IsGoal(t.Node(id).State)
}

// FailureResult returns the canonical "no solution" Result.
func FailureResult[A any]() Result[A] {
	return Result[A]{Outcome: Failure, Actions: []A{}}
}

// Solution builds a Solved Result for the goal node id.
// For the root it yields zero actions, still tagged Solved.
func Solution[S comparable, A any](t *Tree[S, A], id NodeID) Result[A] {
	n := t.Node(id)

	return Result[A]{
		Outcome:  Solved,
		Actions:  t.Actions(id),
		PathCost: n.PathCost,
		Depth:    n.Depth,
	}
}

// Replay applies actions in order to p's initial state and returns the
// state reached. Replaying a solution reproduces the goal state.
func Replay[S comparable, A any](p Problem[S, A], actions []A) S {
	s := p.InitialState()
	for _, a := range actions {
		s = p.Result(s, a)
	}

	return s
}
