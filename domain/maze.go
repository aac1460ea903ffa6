// Package domain holds the records the service persists and serves.
package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/ilhamhanifan/maze-solver/maze"
)

var (
	ErrNilMaze        = errors.New("maze is nil")
	ErrWallsMismatch  = errors.New("wall count does not match dimensions")
	ErrInvalidMazeDim = errors.New("invalid maze dimensions")
)

// Position is a (column, row) pair as stored and served.
type Position struct {
	Col int `json:"col" bson:"col"`
	Row int `json:"row" bson:"row"`
}

// Maze is a generated maze together with its solution.
type Maze struct {
	ID        uuid.UUID  `json:"id" bson:"_id"`
	Cols      int        `json:"cols" bson:"cols"`
	Rows      int        `json:"rows" bson:"rows"`
	Seed      *int64     `json:"seed,omitempty" bson:"seed,omitempty"`
	Walls     []uint8    `json:"walls" bson:"walls"` // row-major wall masks, see maze.Cell.WallMask
	Path      []Position `json:"path" bson:"path"`
	Solved    bool       `json:"solved" bson:"solved"`
	CreatedAt time.Time  `json:"created_at" bson:"createdAt"`
}

// MazeConfig carries what NewMaze needs to build a record.
type MazeConfig struct {
	ID     uuid.UUID
	Maze   *maze.Maze
	Solved bool
}

// NewMaze snapshots a generated maze into a record.
func NewMaze(cfg MazeConfig) (*Maze, error) {
	if cfg.Maze == nil {
		return nil, ErrNilMaze
	}

	id := cfg.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	record := &Maze{
		ID:        id,
		Cols:      cfg.Maze.Cols(),
		Rows:      cfg.Maze.Rows(),
		Walls:     cfg.Maze.WallMasks(),
		Solved:    cfg.Solved,
		CreatedAt: time.Now().UTC(),
	}
	if seed, ok := cfg.Maze.Seed(); ok {
		record.Seed = &seed
	}
	for _, p := range cfg.Maze.Path() {
		record.Path = append(record.Path, Position{Col: p.Col, Row: p.Row})
	}

	return record, nil
}

// Validate checks that the record describes a well-shaped grid.
func (m *Maze) Validate() error {
	if m.Cols < 1 || m.Rows < 1 {
		return ErrInvalidMazeDim
	}
	// checked by division so huge dimensions cannot overflow the product
	if m.Cols > len(m.Walls)/m.Rows || len(m.Walls) != m.Cols*m.Rows {
		return ErrWallsMismatch
	}
	return nil
}

// Restore rebuilds the carved maze and replays the stored solution on it.
func (m *Maze) Restore() (*maze.Maze, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	restored, err := maze.Restore(m.Cols, m.Rows, m.Walls)
	if err != nil {
		return nil, err
	}
	if m.Solved {
		restored.Solve()
	}
	return restored, nil
}
