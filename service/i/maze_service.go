package i

import (
	"context"

	dmn "github.com/ilhamhanifan/maze-solver/domain"
	"github.com/google/uuid"
)

// GenerateRequest describes a maze to build. A nil Seed asks for a
// non-deterministic maze.
type GenerateRequest struct {
	Cols int
	Rows int
	Seed *int64
}

// MazeGenerator builds, stores and serves solved mazes.
type MazeGenerator interface {
	Generate(ctx context.Context, req GenerateRequest) (*dmn.Maze, error)
	ByID(ctx context.Context, id uuid.UUID) (*dmn.Maze, error)
	Recent(ctx context.Context, limit int64) ([]*dmn.Maze, error)
	Render(ctx context.Context, id uuid.UUID) (string, error)
}
