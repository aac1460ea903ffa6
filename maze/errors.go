package maze

import "errors"

var (
	ErrInvalidDimension  = errors.New("maze dimensions must be at least 1x1")
	ErrOutOfBounds       = errors.New("cell is out of the maze")
	ErrNoNeighbor        = errors.New("no neighbor in that direction")
	ErrNotBoundary       = errors.New("wall is not on the maze boundary")
	ErrInvalidMove       = errors.New("invalid move request")
	ErrInconsistentWalls = errors.New("wall flags disagree across a shared wall")
)
