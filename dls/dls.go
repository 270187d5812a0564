package dls

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/metrics"
)

// frame is one node on the explicit depth-first stack.
type frame struct {
	children []core.NodeID
	next     int  // index of the next child to visit
	limit    int  // remaining depth budget at this node
	cutoff   bool // some child subtree was truncated
	mark     int  // arena length before the children were generated
}

// walker encapsulates the mutable state of one depth-limited run.
type walker[S comparable, A any] struct {
	ctx      context.Context
	problem  core.Problem[S, A]
	tree     *core.Tree[S, A]
	expander *core.Expander[S, A]
	stack    []frame
}

// Search runs depth-limited search on p and returns Solved, Cutoff or
// Failure. Logging and metric recording follow opts.
func Search[S comparable, A any](p core.Problem[S, A], limit int, opts ...core.Option) (core.Result[A], *metrics.Metrics, error) {
	o, err := core.Apply(opts...)
	if err != nil {
		return core.FailureResult[A](), metrics.New(), err
	}
	o.Logger.Debug("search started", "strategy", o.Label(Strategy), "limit", limit)
	res, m, err := Run(o.Ctx, p, limit)
	o.Report(Strategy, res.Outcome, m, err)

	return res, m, err
}

// Run is Search without logging or recording, for drivers such as package
// ids that call it repeatedly.
func Run[S comparable, A any](ctx context.Context, p core.Problem[S, A], limit int) (core.Result[A], *metrics.Metrics, error) {
	m := metrics.New()
	if p == nil {
		return core.FailureResult[A](), m, core.ErrNilProblem
	}
	if limit < 0 {
		return core.FailureResult[A](), m, fmt.Errorf("%w: %d", ErrNegativeLimit, limit)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	tree := core.NewTree[S, A](p.InitialState())
	w := &walker[S, A]{
		ctx:      ctx,
		problem:  p,
		tree:     tree,
		expander: core.NewExpander(p, tree),
	}
	res, err := w.run(limit)
	m.Set(metrics.NodesExpanded, float64(w.expander.Expansions()))
	m.Set(metrics.PathCost, res.PathCost)

	return res, m, err
}

// run drives the frame stack from the root.
func (w *walker[S, A]) run(limit int) (core.Result[A], error) {
	root := w.tree.Root()
	out, pushed, err := w.visit(root, limit)
	if err != nil {
		return core.FailureResult[A](), err
	}
	if !pushed {
		return w.result(out, root), nil
	}

	for len(w.stack) > 0 {
		select {
		case <-w.ctx.Done():
			return core.FailureResult[A](), w.ctx.Err()
		default:
		}

		top := &w.stack[len(w.stack)-1]
		if top.next == len(top.children) {
			// every child answered: Cutoff if any was truncated
			out = core.Failure
			if top.cutoff {
				out = core.Cutoff
			}
			w.tree.Truncate(top.mark)
			w.stack = w.stack[:len(w.stack)-1]
			if len(w.stack) == 0 {
				return w.result(out, root), nil
			}
			if out == core.Cutoff {
				w.stack[len(w.stack)-1].cutoff = true
			}
			continue
		}

		child := top.children[top.next]
		top.next++
		out, pushed, err = w.visit(child, top.limit-1)
		if err != nil {
			return core.FailureResult[A](), err
		}
		if pushed {
			continue
		}
		switch out {
		case core.Solved:
			return core.Solution(w.tree, child), nil
		case core.Cutoff:
			top.cutoff = true
		}
	}

	return core.FailureResult[A](), nil
}

// visit tests id and either settles its outcome or expands it onto the
// stack, in which case pushed is true.
func (w *walker[S, A]) visit(id core.NodeID, limit int) (out core.Outcome, pushed bool, err error) {
	if core.IsGoal(w.problem, w.tree, id) {
		return core.Solved, false, nil
	}
	if limit == 0 {
		return core.Cutoff, false, nil
	}
	mark := w.tree.Len()
	children := slices.Collect(w.expander.Expand(id))
	if err = w.expander.Err(); err != nil {
		return core.Failure, false, err
	}
	w.stack = append(w.stack, frame{
		children: children,
		limit:    limit,
		mark:     mark,
	})

	return core.Failure, true, nil
}

// result converts the outcome of the root into a Result.
func (w *walker[S, A]) result(out core.Outcome, root core.NodeID) core.Result[A] {
	switch out {
	case core.Solved:
		return core.Solution(w.tree, root)
	case core.Cutoff:
		return core.Result[A]{Outcome: core.Cutoff, Actions: []A{}}
	default:
		return core.FailureResult[A]()
	}
}
