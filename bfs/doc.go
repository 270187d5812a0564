// Package bfs provides breadth-first search over any core.Problem.
//
// What
//
//   - Expands nodes in non-decreasing depth using a FIFO frontier.
//   - Tests children for the goal as soon as they are generated (early goal
//     check). Under uniform step cost the first goal generated is a
//     shallowest one, so checking on removal would only expand one more
//     layer for nothing.
//   - Search is graph search: an explored set keeps it terminating on
//     cyclic state spaces. TreeSearch drops the explored set and is meant
//     for trees and DAGs only.
//
// Optimality
//
//	Returns a solution with the fewest actions. It minimises path cost only
//	when every step costs the same; use package ucs otherwise.
//
// Complexity (b = branching factor, d = depth of the shallowest goal)
//
//   - Time:   O(b^d)
//   - Memory: O(b^d) (the whole last layer sits in the frontier)
//
// Usage
//
//	res, m, err := bfs.Search(problem, core.WithContext(ctx))
//	if err != nil {
//	    // core.ErrNilProblem, core.ErrNegativeStepCost, ctx.Err(), ...
//	}
//	switch res.Outcome {
//	case core.Solved:
//	    fmt.Println(res.Actions, m.Int(metrics.NodesExpanded))
//	case core.Failure:
//	    fmt.Println("unreachable")
//	}
package bfs
