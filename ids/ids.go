package ids

import (
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/dls"
	"github.com/katalvlaran/lvsearch/metrics"
)

// Search runs iterative deepening on p. It returns Solved or Failure, never
// Cutoff.
func Search[S comparable, A any](p core.Problem[S, A], opts ...Option) (core.Result[A], *metrics.Metrics, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	m := metrics.New()
	if cfg.err != nil {
		return core.FailureResult[A](), m, cfg.err
	}
	o, err := core.Apply(cfg.Common...)
	if err != nil {
		return core.FailureResult[A](), m, err
	}
	if p == nil {
		return core.FailureResult[A](), m, core.ErrNilProblem
	}

	o.Logger.Debug("search started", "strategy", o.Label(Strategy), "max_depth", cfg.MaxDepth)
	res, err := deepen(o, p, cfg.MaxDepth, m)
	o.Report(Strategy, res.Outcome, m, err)

	return res, m, err
}

// deepen runs the rounds, accumulating into m.
func deepen[S comparable, A any](o core.Options, p core.Problem[S, A], maxDepth int, m *metrics.Metrics) (core.Result[A], error) {
	m.Set(metrics.NodesExpanded, 0)
	m.Set(metrics.PathCost, 0)
	m.Set(metrics.MaxDepth, 0)

	for depth := 0; depth < maxDepth; depth++ {
		res, round, err := dls.Run(o.Ctx, p, depth)
		// unsolved rounds carry pathCost 0, so only nodesExpanded grows
		m.Merge(round)
		m.Set(metrics.MaxDepth, float64(depth))
		if err != nil {
			return core.FailureResult[A](), err
		}
		o.Logger.Debug("deepening round",
			"strategy", o.Label(Strategy),
			"depth", depth,
			"outcome", res.Outcome.String(),
			"nodes_expanded", round.Int(metrics.NodesExpanded),
		)

		switch res.Outcome {
		case core.Solved:
			m.Set(metrics.PathCost, round.Get(metrics.PathCost))
			return res, nil
		case core.Failure:
			return core.FailureResult[A](), nil
		}
	}

	return core.FailureResult[A](), nil
}
