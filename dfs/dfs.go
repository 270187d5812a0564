package dfs

import (
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/frontier"
	"github.com/katalvlaran/lvsearch/metrics"
	"github.com/katalvlaran/lvsearch/qsearch"
)

// Strategy is the label used in logs and recorded metrics.
const Strategy = "dfs"

// Search runs depth-first graph search on p.
func Search[S comparable, A any](p core.Problem[S, A], opts ...core.Option) (core.Result[A], *metrics.Metrics, error) {
	return qsearch.Search(p, frontier.NewLIFO[S](), qsearch.Config{
		Strategy:    Strategy,
		ExploredSet: true,
	}, opts...)
}
