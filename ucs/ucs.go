package ucs

import (
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/frontier"
	"github.com/katalvlaran/lvsearch/metrics"
	"github.com/katalvlaran/lvsearch/qsearch"
)

// Strategy is the label used in logs and recorded metrics.
const Strategy = "ucs"

// Search runs uniform-cost graph search on p and returns a cheapest path.
func Search[S comparable, A any](p core.Problem[S, A], opts ...core.Option) (core.Result[A], *metrics.Metrics, error) {
	return qsearch.Search(p, frontier.NewPriority[S](), qsearch.Config{
		Strategy:    Strategy,
		ExploredSet: true,
	}, opts...)
}
