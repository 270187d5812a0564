package dls_test

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/dls"
	"github.com/katalvlaran/lvsearch/statespace"
)

// ExampleSearch shows the three outcomes on a four-city chain.
func ExampleSearch() {
	g, _ := statespace.NewGraph("Arad", "Bucharest", "Neamt")
	_ = g.AddEdge("Arad", "Sibiu", 140)
	_ = g.AddEdge("Sibiu", "Fagaras", 99)
	_ = g.AddEdge("Fagaras", "Bucharest", 211)

	for _, limit := range []int{2, 3} {
		res, _, _ := dls.Search(g, limit)
		fmt.Println(limit, res.Outcome, res.Actions)
	}

	g, _ = g.Reroute("Arad", "Neamt")
	res, _, _ := dls.Search(g, 10)
	fmt.Println(10, res.Outcome, res.Actions)

	// Output:
	// 2 cutoff []
	// 3 solved [Sibiu Fagaras Bucharest]
	// 10 failure []
}
