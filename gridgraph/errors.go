package gridgraph

import "errors"

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a cell outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: cell out of bounds")
	// ErrBadValue indicates a NaN or infinite cell value.
	ErrBadValue = errors.New("gridgraph: cell value must be finite")
	// ErrUnknownHeuristic indicates HeuristicByName was given an unknown name.
	ErrUnknownHeuristic = errors.New("gridgraph: unknown heuristic")
)
