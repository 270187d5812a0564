// Package lvsearch is a generic engine for uninformed state-space search:
// breadth-first, depth-first, uniform-cost, depth-limited and iterative
// deepening, all driven by one Problem interface.
//
// 🚀 What is lvsearch?
//
//	A small, dependency-light library that brings together:
//		• Core primitives: Problem, Node arena, lazy NodeExpander, Outcome
//		• Frontiers: FIFO, LIFO, cost-ordered priority with decrease-key
//		• One parametrized queue search behind bfs, dfs and ucs
//		• Depth-limited search with a three-way outcome (solved/cutoff/failure)
//		• Iterative deepening composed from depth-limited rounds
//		• Metrics per search, optionally exported to Prometheus
//
// Layout:
//
//	core/       Problem, Node, Tree, Expander, Result, shared Options
//	frontier/   Frontier implementations
//	qsearch/    the generic frontier-driven traversal
//	bfs/ dfs/ ucs/	strategies over qsearch
//	dls/ ids/   depth-bounded searches
//	metrics/    named counters and the Prometheus Recorder
//	statespace/ ready-made Problems: weighted graphs (YAML) and grid mazes
//
// Quick example:
//
//	g, _ := statespace.Romania("Arad", "Bucharest")
//	res, m, err := ucs.Search(g)
//	// res.Actions  == [Sibiu Rimnicu Vilcea Pitesti Bucharest]
//	// res.PathCost == 418
//	// m.Int(metrics.NodesExpanded) reports the work done
//
// A search that finds nothing returns a Failure Result and a nil error;
// errors are reserved for bad input, invalid step costs and cancellation.
package lvsearch
