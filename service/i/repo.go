package i

import (
	"context"

	dmn "github.com/ilhamhanifan/maze-solver/domain"
	"github.com/google/uuid"
)

// MazeRepo defines the interface for maze persistence operations.
type MazeRepo interface {
	// Save inserts or updates a maze in the repository.
	Save(ctx context.Context, m *dmn.Maze) error

	// ByID retrieves a maze by its unique ID.
	// Returns an error if the maze is not found or in case of an unexpected error.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.Maze, error)

	// Recent lists up to limit mazes, newest first.
	Recent(ctx context.Context, limit int64) ([]*dmn.Maze, error)
}
