package bfs

import (
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/frontier"
	"github.com/katalvlaran/lvsearch/metrics"
	"github.com/katalvlaran/lvsearch/qsearch"
)

// Strategy is the label used in logs and recorded metrics.
const Strategy = "bfs"

// Search runs breadth-first graph search on p.
func Search[S comparable, A any](p core.Problem[S, A], opts ...core.Option) (core.Result[A], *metrics.Metrics, error) {
	return qsearch.Search(p, frontier.NewFIFO[S](), qsearch.Config{
		Strategy:       Strategy,
		EarlyGoalCheck: true,
		ExploredSet:    true,
	}, opts...)
}

// TreeSearch runs breadth-first search without an explored set.
// Repeated states are expanded again, so p must be acyclic.
func TreeSearch[S comparable, A any](p core.Problem[S, A], opts ...core.Option) (core.Result[A], *metrics.Metrics, error) {
	return qsearch.Search(p, frontier.NewFIFO[S](), qsearch.Config{
		Strategy:       Strategy + "-tree",
		EarlyGoalCheck: true,
	}, opts...)
}
