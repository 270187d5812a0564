// Package ids provides iterative deepening search: depth-limited search run
// with limits 0, 1, 2, … until a goal is found.
//
// Why
//
//   - Finds a shallowest goal, like breadth-first search, in O(b·d) memory
//     instead of O(b^d).
//   - Pays for it with repeated work: shallow layers are re-expanded on
//     every round. The nodesExpanded metric is the true cumulative total
//     across rounds, never the count of the last round alone.
//
// Termination
//
//	Deepening stops at the first Solved round, at the first round that
//	returns Failure (the whole tree is exhausted, deeper limits cannot
//	help), or after the last limit below MaxDepth. On cyclic state spaces
//	depth-limited search never returns Failure, so an unsolvable problem
//	runs until MaxDepth or until the context is cancelled.
//
// Metrics
//
//	nodesExpanded – summed over rounds
//	maxDepth      – last limit attempted
//	pathCost      – cost of the solution, 0 on failure
package ids
