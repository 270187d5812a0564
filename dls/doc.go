// Package dls provides depth-limited search: depth-first tree search that
// never generates nodes deeper than a fixed limit.
//
// Outcomes
//
//	Solved  – a goal was found at depth ≤ limit.
//	Cutoff  – no goal within the limit, but at least one branch was
//	          truncated by it; a larger limit might succeed.
//	Failure – every branch ended without a goal before reaching the limit;
//	          no limit will ever succeed.
//
// Keeping Cutoff and Failure apart is what lets package ids stop deepening
// once the tree is exhausted.
//
// No explored set is used: repeated states at different depths are
// distinct nodes. The traversal keeps an explicit stack of frames instead
// of recursing, and releases each finished subtree from the node arena, so
// memory stays O(b·limit) for any limit.
//
// Errors:
//
//   - core.ErrNilProblem     if p is nil.
//   - ErrNegativeLimit       if limit < 0.
//   - core.ErrNegativeStepCost on an invalid step cost.
//   - ctx.Err()              if the context is cancelled.
package dls
