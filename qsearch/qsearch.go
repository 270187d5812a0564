// Package qsearch implements the generic frontier-driven traversal that the
// breadth-first, depth-first and uniform-cost strategies are built on.
//
// The loop is parametrized by a frontier.Frontier (the only real variation
// between the strategies) and by two independent switches:
//
//   - EarlyGoalCheck: test children when they are generated instead of
//     when they are removed from the frontier.
//   - ExploredSet: graph search. Children whose state was already expanded
//     or is already queued are discarded, unless the frontier supports
//     decrease-key and the child is strictly cheaper.
//
// Complexity (b = branching factor, d = solution depth, N = reachable states):
//
//   - Graph search: O(N) expansions, O(N) memory for arena and explored set.
//   - Tree search:  O(b^d) expansions; terminates only on acyclic spaces.
package qsearch

import (
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/frontier"
	"github.com/katalvlaran/lvsearch/metrics"
)

// Config selects the traversal policy.
type Config struct {
	// Strategy labels the search in logs and recorded metrics.
	Strategy string

	// EarlyGoalCheck tests children at generation time.
	EarlyGoalCheck bool

	// ExploredSet enables graph search.
	ExploredSet bool
}

// runner holds the mutable state of one invocation.
type runner[S comparable, A any] struct {
	problem  core.Problem[S, A]
	frontier frontier.Frontier[S]
	cfg      Config
	opts     core.Options
	tree     *core.Tree[S, A]
	expander *core.Expander[S, A]
	explored map[S]struct{}
	metrics  *metrics.Metrics
}

// Search runs the traversal on p using f, which must be empty.
// A search that finds no goal returns a Failure Result and a nil error;
// errors are reserved for invalid input, step-cost violations and
// cancellation.
func Search[S comparable, A any](
	p core.Problem[S, A],
	f frontier.Frontier[S],
	cfg Config,
	opts ...core.Option,
) (core.Result[A], *metrics.Metrics, error) {
	m := metrics.New()
	if p == nil {
		return core.FailureResult[A](), m, core.ErrNilProblem
	}
	if f == nil {
		return core.FailureResult[A](), m, ErrNilFrontier
	}
	o, err := core.Apply(opts...)
	if err != nil {
		return core.FailureResult[A](), m, err
	}

	tree := core.NewTree[S, A](p.InitialState())
	r := &runner[S, A]{
		problem:  p,
		frontier: f,
		cfg:      cfg,
		opts:     o,
		tree:     tree,
		expander: core.NewExpander(p, tree),
		metrics:  m,
	}
	if cfg.ExploredSet {
		r.explored = make(map[S]struct{})
	}

	o.Logger.Debug("search started",
		"strategy", o.Label(cfg.Strategy),
		"early_goal_check", cfg.EarlyGoalCheck,
		"explored_set", cfg.ExploredSet,
	)
	res, err := r.loop()
	r.finish(res)
	o.Report(cfg.Strategy, res.Outcome, m, err)

	return res, m, err
}

// loop processes the frontier until a goal is found, it empties, or the
// context is cancelled.
func (r *runner[S, A]) loop() (core.Result[A], error) {
	root := r.tree.Root()
	// an early check never sees the root as a child
	if r.cfg.EarlyGoalCheck && core.IsGoal(r.problem, r.tree, root) {
		return core.Solution(r.tree, root), nil
	}
	r.push(root)

	for r.frontier.Len() > 0 {
		select {
		case <-r.opts.Ctx.Done():
			return core.FailureResult[A](), r.opts.Ctx.Err()
		default:
		}

		e := r.frontier.Pop()
		if !r.cfg.EarlyGoalCheck && core.IsGoal(r.problem, r.tree, e.ID) {
			return core.Solution(r.tree, e.ID), nil
		}
		if r.explored != nil {
			r.explored[e.State] = struct{}{}
		}

		for child := range r.expander.Expand(e.ID) {
			if r.discard(child) {
				continue
			}
			if r.cfg.EarlyGoalCheck && core.IsGoal(r.problem, r.tree, child) {
				return core.Solution(r.tree, child), nil
			}
			r.push(child)
		}
		if err := r.expander.Err(); err != nil {
			return core.FailureResult[A](), err
		}
	}

	return core.FailureResult[A](), nil
}

// discard applies the graph-search filter to a freshly generated child.
// A child already queued may still replace its entry through decrease-key.
func (r *runner[S, A]) discard(child core.NodeID) bool {
	if r.explored == nil {
		return false
	}
	n := r.tree.Node(child)
	if _, seen := r.explored[n.State]; seen {
		r.tree.Truncate(int(child))
		return true
	}
	if r.frontier.Contains(n.State) {
		if imp, ok := r.frontier.(frontier.Improver[S]); ok && imp.Improve(entryOf(child, n)) {
			return true
		}
		r.tree.Truncate(int(child))
		return true
	}

	return false
}

func (r *runner[S, A]) push(id core.NodeID) {
	r.frontier.Push(entryOf(id, r.tree.Node(id)))
	r.metrics.Max(metrics.MaxQueueSize, float64(r.frontier.Len()))
}

// finish fills the final counters.
func (r *runner[S, A]) finish(res core.Result[A]) {
	r.metrics.Set(metrics.NodesExpanded, float64(r.expander.Expansions()))
	r.metrics.Set(metrics.PathCost, res.PathCost)
	r.metrics.Set(metrics.QueueSize, float64(r.frontier.Len()))
	r.metrics.Max(metrics.MaxQueueSize, 0)
}

func entryOf[S comparable, A any](id core.NodeID, n core.Node[S, A]) frontier.Entry[S] {
	return frontier.Entry[S]{ID: id, State: n.State, Cost: n.PathCost}
}
