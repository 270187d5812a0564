package ucs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/bfs"
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/metrics"
	"github.com/katalvlaran/lvsearch/statespace"
	"github.com/katalvlaran/lvsearch/ucs"
)

type arc struct {
	from, to string
	cost     float64
}

func buildGraph(t *testing.T, initial, goal string, arcs []arc) *statespace.Graph {
	g, err := statespace.NewGraph(initial, goal)
	require.NoError(t, err)
	for _, a := range arcs {
		require.NoError(t, g.AddEdge(a.from, a.to, a.cost))
	}

	return g
}

func TestUCS_NilProblem(t *testing.T) {
	_, _, err := ucs.Search[string, string](nil)
	assert.ErrorIs(t, err, core.ErrNilProblem)
}

func TestUCS_CheaperLongerPathWins(t *testing.T) {
	// the direct cost-5 arc is listed, and therefore queued, first
	g := buildGraph(t, "S", "G", []arc{
		{"S", "G", 5},
		{"S", "A", 1},
		{"A", "B", 1},
		{"B", "G", 1},
	})

	res, m, err := ucs.Search(g)
	require.NoError(t, err)
	require.Equal(t, core.Solved, res.Outcome)
	assert.Equal(t, []string{"A", "B", "G"}, res.Actions)
	assert.Equal(t, 3.0, res.PathCost)
	assert.Equal(t, 3.0, m.Get(metrics.PathCost))
	assert.Equal(t, 3, m.Int(metrics.NodesExpanded))

	// breadth-first takes the single arc
	bres, _, err := bfs.Search(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"G"}, bres.Actions)
}

func TestUCS_Romania_Cheapest(t *testing.T) {
	g, err := statespace.Romania("Arad", "Bucharest")
	require.NoError(t, err)

	res, _, err := ucs.Search(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"Sibiu", "Rimnicu Vilcea", "Pitesti", "Bucharest"}, res.Actions)
	assert.Equal(t, 418.0, res.PathCost)
	assert.Equal(t, "Bucharest", core.Replay[string, string](g, res.Actions))
}

func TestUCS_StableTieBreak(t *testing.T) {
	g := buildGraph(t, "S", "G", []arc{
		{"S", "A", 1},
		{"S", "B", 1},
		{"A", "G", 1},
		{"B", "G", 1},
	})

	res, _, err := ucs.Search(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "G"}, res.Actions, "equal costs follow action order")
}

func TestUCS_ZeroCostArcs(t *testing.T) {
	g := buildGraph(t, "S", "G", []arc{
		{"S", "G", 1},
		{"S", "A", 0},
		{"A", "G", 0},
	})

	res, _, err := ucs.Search(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "G"}, res.Actions)
	assert.Equal(t, 0.0, res.PathCost)
}

func TestUCS_InitialStateIsGoal(t *testing.T) {
	g := buildGraph(t, "S", "S", []arc{{"S", "A", 1}})

	res, m, err := ucs.Search(g)
	require.NoError(t, err)
	assert.Equal(t, core.Solved, res.Outcome)
	assert.Empty(t, res.Actions)
	assert.Equal(t, 0.0, m.Get(metrics.PathCost))
}

func TestUCS_Unreachable(t *testing.T) {
	g := buildGraph(t, "S", "G", []arc{{"S", "A", 1}, {"A", "S", 1}})

	res, _, err := ucs.Search(g)
	require.NoError(t, err)
	assert.Equal(t, core.Failure, res.Outcome)
}

func TestUCS_NegativeStepCost(t *testing.T) {
	g := buildGraph(t, "S", "G", []arc{{"S", "A", 2}, {"A", "G", -3}})

	_, _, err := ucs.Search(g)
	assert.ErrorIs(t, err, core.ErrNegativeStepCost)
}

func TestUCS_GridTerrain(t *testing.T) {
	// entering a 9 is expensive; the cheapest route skirts the swamp
	values := [][]int{
		{1, 9, 1},
		{1, 9, 1},
		{1, 1, 1},
	}
	g, err := statespace.NewGrid(values,
		statespace.Cell{X: 0, Y: 0}, statespace.Cell{X: 2, Y: 0},
		statespace.DefaultGridOptions())
	require.NoError(t, err)

	res, _, err := ucs.Search(g)
	require.NoError(t, err)
	assert.Equal(t, 6.0, res.PathCost)
	assert.Len(t, res.Actions, 6)

	// unit cost: straight through the swamp is shortest
	g, err = statespace.NewGrid(values,
		statespace.Cell{X: 0, Y: 0}, statespace.Cell{X: 2, Y: 0},
		statespace.GridOptions{PassThreshold: 1, UnitCost: true})
	require.NoError(t, err)
	res, _, err = ucs.Search(g)
	require.NoError(t, err)
	assert.Equal(t, 2.0, res.PathCost)
}

func TestUCS_OptimalAgainstBFSUnderUnitCost(t *testing.T) {
	g, err := statespace.Romania("Timisoara", "Neamt")
	require.NoError(t, err)
	unit, err := statespace.NewGraph("Timisoara", "Neamt")
	require.NoError(t, err)
	for _, v := range g.Vertices() {
		for _, e := range g.Edges(v) {
			require.NoError(t, unit.AddEdge(e.From, e.To, 1))
		}
	}

	ures, _, err := ucs.Search(unit)
	require.NoError(t, err)
	bres, _, err := bfs.Search(unit)
	require.NoError(t, err)
	assert.Equal(t, len(bres.Actions), len(ures.Actions))
	assert.Equal(t, float64(len(bres.Actions)), ures.PathCost)
}
