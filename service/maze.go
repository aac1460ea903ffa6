package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	dmn "github.com/ilhamhanifan/maze-solver/domain"
	pb "github.com/ilhamhanifan/maze-solver/encoder/pb"
	"github.com/ilhamhanifan/maze-solver/maze"
	"github.com/ilhamhanifan/maze-solver/service/i"
)

const (
	defaultMaxDimension = 200
	mazeCacheKeyFmt     = "maze:%dx%d:%d"
)

var (
	ErrDimensionTooLarge = errors.New("maze dimension exceeds the limit")
	ErrMissingRepo       = errors.New("maze repository is required")
	ErrMissingLogger     = errors.New("logger is required")
)

// MazeServiceOptions configures a MazeService.
type MazeServiceOptions struct {
	Repo         i.MazeRepo
	Cache        i.MazeCache // optional; only seeded mazes are cached
	Logger       i.Logger
	MaxDimension int
}

// MazeService generates, solves and stores mazes.
type MazeService struct {
	repo         i.MazeRepo
	cache        i.MazeCache
	logger       i.Logger
	maxDimension int
}

var _ i.MazeGenerator = &MazeService{}

// NewMazeService validates opts and builds the service.
func NewMazeService(opts MazeServiceOptions) (*MazeService, error) {
	if opts.Repo == nil {
		return nil, ErrMissingRepo
	}
	if opts.Logger == nil {
		return nil, ErrMissingLogger
	}
	if opts.MaxDimension <= 0 {
		opts.MaxDimension = defaultMaxDimension
	}

	return &MazeService{
		repo:         opts.Repo,
		cache:        opts.Cache,
		logger:       opts.Logger,
		maxDimension: opts.MaxDimension,
	}, nil
}

// Generate builds and solves a maze. Seeded requests are deterministic, so
// they are served from the cache when possible.
func (s *MazeService) Generate(ctx context.Context, req i.GenerateRequest) (*dmn.Maze, error) {
	if req.Cols < 1 || req.Rows < 1 {
		return nil, maze.ErrInvalidDimension
	}
	if req.Cols > s.maxDimension || req.Rows > s.maxDimension {
		return nil, ErrDimensionTooLarge
	}

	if req.Seed == nil || s.cache == nil {
		return s.buildAndSave(ctx, req)
	}

	key := fmt.Sprintf(mazeCacheKeyFmt, req.Cols, req.Rows, *req.Seed)
	var (
		built    *dmn.Maze
		buildErr error
	)
	payload, err := s.cache.GetOrCreate(ctx, key, func(ctx context.Context) ([]byte, error) {
		built, buildErr = s.buildAndSave(ctx, req)
		if buildErr != nil {
			return nil, buildErr
		}
		return pb.MarshalMaze(built)
	})
	if buildErr != nil {
		return nil, fmt.Errorf("generating maze %s: %w", key, buildErr)
	}
	if built != nil {
		return built, nil
	}
	if err != nil {
		// Only the cache itself failed; nothing was built or saved yet.
		s.logger.Warn(fmt.Sprintf("Maze cache unavailable for %s: %v", key, err))
		return s.buildAndSave(ctx, req)
	}

	record, err := pb.UnmarshalMaze(payload)
	if err != nil {
		s.logger.Warn(fmt.Sprintf("Dropping bad cache entry %s: %v", key, err))
		return s.buildAndSave(ctx, req)
	}
	s.logger.Debug(fmt.Sprintf("Maze %s served from cache", record.ID))
	return record, nil
}

// ByID returns a stored maze.
func (s *MazeService) ByID(ctx context.Context, id uuid.UUID) (*dmn.Maze, error) {
	return s.repo.ByID(ctx, id)
}

// Recent lists stored mazes, newest first.
func (s *MazeService) Recent(ctx context.Context, limit int64) ([]*dmn.Maze, error) {
	return s.repo.Recent(ctx, limit)
}

// Render draws a stored maze as ASCII with its solution marked.
func (s *MazeService) Render(ctx context.Context, id uuid.UUID) (string, error) {
	record, err := s.repo.ByID(ctx, id)
	if err != nil {
		return "", err
	}
	m, err := record.Restore()
	if err != nil {
		return "", fmt.Errorf("restoring maze %s: %w", id, err)
	}
	return m.String(), nil
}

func (s *MazeService) buildAndSave(ctx context.Context, req i.GenerateRequest) (*dmn.Maze, error) {
	var opts []maze.Option
	if req.Seed != nil {
		opts = append(opts, maze.WithSeed(*req.Seed))
	}

	m, err := maze.New(req.Cols, req.Rows, opts...)
	if err != nil {
		return nil, err
	}

	solved := m.Solve()
	if !solved {
		// A carved maze is a spanning tree, so this means a broken generator.
		s.logger.Error(fmt.Sprintf("No path found in %dx%d maze", req.Cols, req.Rows))
	}

	record, err := dmn.NewMaze(dmn.MazeConfig{Maze: m, Solved: solved})
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, record); err != nil {
		return nil, err
	}

	s.logger.Info(fmt.Sprintf("Maze %s generated (%dx%d, path %d cells)", record.ID, record.Cols, record.Rows, len(record.Path)))
	return record, nil
}
