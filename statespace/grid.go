package statespace

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Cell is a grid coordinate; Y grows southwards.
type Cell struct {
	X, Y int
}

// String implements fmt.Stringer.
func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// Move is a unit step on the grid.
type Move struct {
	DX, DY int
}

var moveNames = map[Move]string{
	{0, -1}: "N", {1, -1}: "NE", {1, 0}: "E", {1, 1}: "SE",
	{0, 1}: "S", {-1, 1}: "SW", {-1, 0}: "W", {-1, -1}: "NW",
}

// String implements fmt.Stringer.
func (m Move) String() string {
	if s, ok := moveNames[m]; ok {
		return s
	}

	return fmt.Sprintf("(%+d,%+d)", m.DX, m.DY)
}

// GridOptions contains tunable parameters for grid mazes.
type GridOptions struct {
	// PassThreshold is the minimum cell value considered walkable.
	PassThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// UnitCost makes every move cost 1 instead of the entered cell's value.
	UnitCost bool
}

// DefaultGridOptions returns PassThreshold=1, Conn4, terrain costs.
func DefaultGridOptions() GridOptions {
	return GridOptions{PassThreshold: 1, Conn: Conn4}
}

// Grid is a maze problem on a 2D integer grid. It is immutable once built.
type Grid struct {
	Width, Height int
	values        [][]int
	start, goal   Cell
	opts          GridOptions
	moves         []Move
}

var (
	_ core.Problem[Cell, Move]    = (*Grid)(nil)
	_ core.StepCoster[Cell, Move] = (*Grid)(nil)
)

// NewGrid builds a maze from a non-empty rectangular grid, deep-copying it.
// values[y][x] is the terrain at (x,y).
// Returns ErrEmptyGrid, ErrNonRectangular, ErrOutOfBounds or ErrBlockedCell.
func NewGrid(values [][]int, start, goal Cell, opts GridOptions) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]int, h)
	for y := range values {
		cells[y] = append([]int(nil), values[y]...)
	}

	moves := []Move{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	if opts.Conn == Conn8 {
		moves = []Move{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	}
	g := &Grid{Width: w, Height: h, values: cells, start: start, goal: goal, opts: opts, moves: moves}

	for _, c := range []Cell{start, goal} {
		if !g.InBounds(c) {
			return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, c)
		}
	}
	if !g.Passable(start) {
		return nil, fmt.Errorf("%w: %v", ErrBlockedCell, start)
	}

	return g, nil
}

// InBounds reports whether c lies within the grid boundaries.
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Passable reports whether c is inside the grid and walkable.
func (g *Grid) Passable(c Cell) bool {
	return g.InBounds(c) && g.values[c.Y][c.X] >= g.opts.PassThreshold
}

// Value returns the terrain value at c.
func (g *Grid) Value(c Cell) int { return g.values[c.Y][c.X] }

// InitialState implements core.Problem.
func (g *Grid) InitialState() Cell { return g.start }

// Actions implements core.Problem: every move onto a passable cell,
// clockwise from north.
func (g *Grid) Actions(c Cell) []Move {
	out := make([]Move, 0, len(g.moves))
	for _, m := range g.moves {
		if g.Passable(Cell{c.X + m.DX, c.Y + m.DY}) {
			out = append(out, m)
		}
	}

	return out
}

// Result implements core.Problem.
func (g *Grid) Result(c Cell, m Move) Cell { return Cell{c.X + m.DX, c.Y + m.DY} }

// IsGoal implements core.Problem.
func (g *Grid) IsGoal(c Cell) bool { return c == g.goal }

// StepCost implements core.StepCoster: the terrain value of the entered
// cell, or 1 under UnitCost.
func (g *Grid) StepCost(_ Cell, _ Move, to Cell) float64 {
	if g.opts.UnitCost {
		return 1
	}

	return float64(g.values[to.Y][to.X])
}
