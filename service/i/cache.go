package i

import "context"

// MazeCache stores encoded mazes under deterministic keys.
type MazeCache interface {
	// GetOrCreate returns the cached value for key, or runs create, stores
	// its result and returns it. Concurrent callers for the same key run
	// create at most once.
	GetOrCreate(ctx context.Context, key string, create func(context.Context) ([]byte, error)) ([]byte, error)
}
