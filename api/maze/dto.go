// Package mazeapi provides the HTTP handlers for generating and reading mazes.
package mazeapi

import (
	"time"

	dmn "github.com/ilhamhanifan/maze-solver/domain"
)

// GenerateRequest represents a request to create a new maze.
type GenerateRequest struct {
	Cols int    `json:"cols" binding:"required,min=1"`
	Rows int    `json:"rows" binding:"required,min=1"`
	Seed *int64 `json:"seed"`
}

// MazeResponse is the JSON form of a stored maze. Walls are per-cell
// bitmasks in row-major order: top=1, bottom=2, left=4, right=8.
type MazeResponse struct {
	ID        string         `json:"id"`
	Cols      int            `json:"cols"`
	Rows      int            `json:"rows"`
	Seed      *int64         `json:"seed,omitempty"`
	Walls     []int          `json:"walls"`
	Path      []dmn.Position `json:"path"`
	Solved    bool           `json:"solved"`
	CreatedAt time.Time      `json:"created_at"`
}

func newMazeResponse(m *dmn.Maze) *MazeResponse {
	walls := make([]int, len(m.Walls))
	for i, w := range m.Walls {
		walls[i] = int(w)
	}
	return &MazeResponse{
		ID:        m.ID.String(),
		Cols:      m.Cols,
		Rows:      m.Rows,
		Seed:      m.Seed,
		Walls:     walls,
		Path:      m.Path,
		Solved:    m.Solved,
		CreatedAt: m.CreatedAt,
	}
}
