// Package statespace provides ready-made core.Problem implementations:
//
//   - Graph: an explicit weighted graph whose actions are "move to
//     neighbour". Directed by default; AddUndirectedEdge mirrors an edge.
//     Graphs can be described in YAML and loaded with LoadGraph.
//   - Grid: a 2D terrain maze. Cells with value ≥ PassThreshold are
//     walkable; entering a cell costs its value (or 1 with UnitCost).
//     Four- or eight-connectivity.
//
// Both list actions deterministically (edge insertion order for Graph,
// clockwise from north for Grid), so search results are reproducible.
//
// YAML format for LoadGraph:
//
//	initial: A
//	goals: [D]
//	undirected: false
//	edges:
//	  - {from: A, to: B, cost: 1}
//	  - {from: B, to: D}        # cost defaults to 1
package statespace
