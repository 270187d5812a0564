// Package core defines the problem abstraction and the traversal primitives
// shared by every uninformed search strategy in lvsearch.
//
// What
//
//   - Problem[S, A]: the capability a caller supplies (initial state,
//     successor actions, transition model, goal test). Step costs come from
//     the optional StepCoster interface and default to 1.
//   - Node[S, A] and Tree[S, A]: an arena of traversal records addressed by
//     NodeID. Parent links are indices, so a node never owns its parent and
//     the whole search tree is released with the arena.
//   - Expander: generates a node's children lazily and counts expansions.
//   - Outcome / Result: the explicit Solved, Cutoff and Failure tags.
//   - Options: functional options common to all strategies (context,
//     logger, metrics recorder).
//
// Outcomes
//
//	Solved  – Result.Actions holds the path from the initial state. An empty
//	          slice means the initial state already satisfies the goal.
//	Failure – the reachable space holds no goal.
//	Cutoff  – a depth bound truncated the search (package dls only).
//
// Callers must switch on Result.Outcome, never on len(Result.Actions).
//
// State equality
//
//	S is constrained to comparable: explored sets and frontier membership
//	compare state values, never node identity.
//
// Step costs
//
//	Step costs must be non-negative for uniform-cost optimality. The
//	Expander validates each cost eagerly and aborts the search with
//	ErrNegativeStepCost on a negative or NaN value.
package core
