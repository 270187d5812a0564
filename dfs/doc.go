// Package dfs provides depth-first search over any core.Problem.
//
// Depth-first search always expands the deepest node in the frontier, using
// a LIFO stack. Goals are tested when a node is popped (late goal check).
//
// The explored set is always on: plain depth-first tree search never
// terminates on a cycle, and state spaces supplied by callers are assumed
// to be cyclic graphs. Use package dls for a bounded tree search.
//
// Guarantees:
//
//   - Terminates on every finite state space.
//   - Returns some valid path when a goal is reachable; it is neither the
//     shortest nor the cheapest in general.
//
// Complexity (N = reachable states):
//
//   - Time:   O(N)
//   - Memory: O(N) for the explored set and node arena.
package dfs
