package statespace

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvsearch/core"
)

// Edge is a weighted arc From→To.
type Edge struct {
	From, To string
	Cost     float64
}

// Graph is an explicit state space: states are vertex IDs and the action
// "To" moves along the arc to vertex To.
type Graph struct {
	initial  string
	goals    map[string]struct{}
	adj      map[string][]Edge // outgoing arcs in insertion order
	vertices map[string]struct{}
}

var (
	_ core.Problem[string, string]    = (*Graph)(nil)
	_ core.StepCoster[string, string] = (*Graph)(nil)
)

// NewGraph creates an empty graph searched from initial towards any of goals.
func NewGraph(initial string, goals ...string) (*Graph, error) {
	if initial == "" {
		return nil, fmt.Errorf("%w: initial", ErrEmptyVertexID)
	}
	g := &Graph{
		initial:  initial,
		goals:    make(map[string]struct{}, len(goals)),
		adj:      make(map[string][]Edge),
		vertices: map[string]struct{}{initial: {}},
	}
	for _, id := range goals {
		if id == "" {
			return nil, fmt.Errorf("%w: goal", ErrEmptyVertexID)
		}
		g.goals[id] = struct{}{}
		g.vertices[id] = struct{}{}
	}

	return g, nil
}

// AddEdge adds the arc from→to. Adding an existing arc updates its cost
// but keeps its position in the action order.
// Negative costs are accepted here; the searches reject them.
func (g *Graph) AddEdge(from, to string, cost float64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if math.IsNaN(cost) || math.IsInf(cost, 0) {
		return fmt.Errorf("%w: %s→%s cost=%v", ErrBadCost, from, to, cost)
	}
	g.vertices[from] = struct{}{}
	g.vertices[to] = struct{}{}
	for i, e := range g.adj[from] {
		if e.To == to {
			g.adj[from][i].Cost = cost
			return nil
		}
	}
	g.adj[from] = append(g.adj[from], Edge{From: from, To: to, Cost: cost})

	return nil
}

// AddUndirectedEdge adds a→b and b→a with the same cost.
func (g *Graph) AddUndirectedEdge(a, b string, cost float64) error {
	if err := g.AddEdge(a, b, cost); err != nil {
		return err
	}

	return g.AddEdge(b, a, cost)
}

// Vertices returns every known vertex ID, sorted.
func (g *Graph) Vertices() []string {
	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Edges returns the outgoing arcs of id in insertion order.
func (g *Graph) Edges(id string) []Edge {
	return append([]Edge(nil), g.adj[id]...)
}

// InitialState implements core.Problem.
func (g *Graph) InitialState() string { return g.initial }

// Actions implements core.Problem: one action per outgoing arc, named by
// its destination.
func (g *Graph) Actions(s string) []string {
	out := make([]string, len(g.adj[s]))
	for i, e := range g.adj[s] {
		out[i] = e.To
	}

	return out
}

// Result implements core.Problem.
func (g *Graph) Result(_ string, a string) string { return a }

// IsGoal implements core.Problem.
func (g *Graph) IsGoal(s string) bool {
	_, ok := g.goals[s]

	return ok
}

// StepCost implements core.StepCoster. An unknown arc costs +Inf.
func (g *Graph) StepCost(from string, a string, _ string) float64 {
	for _, e := range g.adj[from] {
		if e.To == a {
			return e.Cost
		}
	}

	return math.Inf(1)
}

// Reroute returns a copy of g with the same arcs but a new initial vertex
// and goal set.
func (g *Graph) Reroute(initial string, goals ...string) (*Graph, error) {
	out, err := NewGraph(initial, goals...)
	if err != nil {
		return nil, err
	}
	for id := range g.vertices {
		out.vertices[id] = struct{}{}
	}
	for from, edges := range g.adj {
		out.adj[from] = append([]Edge(nil), edges...)
	}

	return out, nil
}
