package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/bfs"
	"github.com/katalvlaran/lvsearch/metrics"
	"github.com/katalvlaran/lvsearch/statespace"
)

// ExampleSearch finds the route from Arad to Bucharest with the fewest
// roads, ignoring distances.
func ExampleSearch() {
	g, err := statespace.Romania("Arad", "Bucharest")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, m, err := bfs.Search(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Outcome, res.Actions, res.PathCost)
	fmt.Println("expanded:", m.Int(metrics.NodesExpanded))

	// Output:
	// solved [Sibiu Fagaras Bucharest] 450
	// expanded: 6
}
