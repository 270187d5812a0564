package statespace

import (
	"bytes"
	_ "embed"
)

//go:embed romania.yaml
var romaniaYAML []byte

// Romania returns the road map of Romania as an undirected graph searched
// from initial to goal. Romania("Arad", "Bucharest") is the textbook
// route-finding problem: three hops via Fagaras, or 418 km via Pitesti.
func Romania(initial, goal string) (*Graph, error) {
	g, err := LoadGraph(bytes.NewReader(romaniaYAML))
	if err != nil {
		return nil, err
	}

	return g.Reroute(initial, goal)
}
