// Package ucs provides uniform-cost search, the single-goal form of
// Dijkstra's algorithm, over any core.Problem.
//
// Overview:
//
//   - The frontier is ordered by ascending path cost g(n); equal costs leave
//     in insertion order, so the order of Problem.Actions breaks ties.
//   - Goals are tested when a node is popped. A popped node carries the
//     cheapest known path to its state, as in Dijkstra's correctness
//     argument; testing children on generation, as bfs does, could accept a
//     path that is not yet proven optimal.
//   - When a queued state is reached again by a strictly cheaper path, the
//     queued entry is replaced (decrease-key) before it is expanded.
//
// Preconditions:
//
//   - Step costs must be non-negative. Negative or NaN costs abort the
//     search with core.ErrNegativeStepCost.
//
// Complexity (C* = optimal cost, ε = smallest step cost, b = branching factor):
//
//   - Time:  O(b^(1+⌊C*/ε⌋) · log n) heap operations in the worst case.
//   - Space: O(b^(1+⌊C*/ε⌋)).
//
// Example usage:
//
//	res, m, err := ucs.Search(problem)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Actions, res.PathCost, m.Int(metrics.NodesExpanded))
package ucs
