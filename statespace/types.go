package statespace

import (
	"errors"
)

// Sentinel errors for building state spaces.
var (
	// ErrEmptyVertexID indicates an edge or initial vertex with an empty ID.
	ErrEmptyVertexID = errors.New("statespace: vertex ID is empty")

	// ErrBadCost indicates a NaN or infinite edge cost.
	ErrBadCost = errors.New("statespace: edge cost must be finite")

	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("statespace: grid must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("statespace: all grid rows must have the same length")

	// ErrOutOfBounds indicates a start or goal cell outside the grid.
	ErrOutOfBounds = errors.New("statespace: cell out of bounds")

	// ErrBlockedCell indicates a start cell that is not passable.
	ErrBlockedCell = errors.New("statespace: start cell is not passable")
)
