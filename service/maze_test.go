package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	dmn "github.com/ilhamhanifan/maze-solver/domain"
	"github.com/ilhamhanifan/maze-solver/infrastruture/repo"
	"github.com/ilhamhanifan/maze-solver/maze"
	"github.com/ilhamhanifan/maze-solver/service/i"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	sync.Mutex
	mazes   map[uuid.UUID]*dmn.Maze
	saves   int
	saveErr error
}

func newMemRepo() *memRepo {
	return &memRepo{mazes: map[uuid.UUID]*dmn.Maze{}}
}

func (r *memRepo) Save(_ context.Context, m *dmn.Maze) error {
	r.Lock()
	defer r.Unlock()
	r.saves++
	if r.saveErr != nil {
		return r.saveErr
	}
	r.mazes[m.ID] = m
	return nil
}

func (r *memRepo) ByID(_ context.Context, id uuid.UUID) (*dmn.Maze, error) {
	r.Lock()
	defer r.Unlock()
	m, ok := r.mazes[id]
	if !ok {
		return nil, repo.ErrMazeNotFound
	}
	return m, nil
}

func (r *memRepo) Recent(_ context.Context, limit int64) ([]*dmn.Maze, error) {
	r.Lock()
	defer r.Unlock()
	var out []*dmn.Maze
	for _, m := range r.mazes {
		if int64(len(out)) == limit {
			break
		}
		out = append(out, m)
	}
	return out, nil
}

type memCache struct {
	values  map[string][]byte
	creates int
}

func (c *memCache) GetOrCreate(ctx context.Context, key string, create func(context.Context) ([]byte, error)) ([]byte, error) {
	if v, ok := c.values[key]; ok {
		return v, nil
	}
	v, err := create(ctx)
	if err != nil {
		return nil, err
	}
	c.creates++
	c.values[key] = v
	return v, nil
}

type downCache struct{}

func (downCache) GetOrCreate(context.Context, string, func(context.Context) ([]byte, error)) ([]byte, error) {
	return nil, errors.New("connection refused")
}

type nopLogger struct{}

func (nopLogger) Debug(string) {}
func (nopLogger) Info(string)  {}
func (nopLogger) Warn(string)  {}
func (nopLogger) Error(string) {}

func newService(t *testing.T, r i.MazeRepo, c i.MazeCache) *MazeService {
	t.Helper()
	svc, err := NewMazeService(MazeServiceOptions{Repo: r, Cache: c, Logger: nopLogger{}, MaxDimension: 50})
	require.NoError(t, err)
	return svc
}

func seed(v int64) *int64 { return &v }

func TestNewMazeService(t *testing.T) {
	_, err := NewMazeService(MazeServiceOptions{Logger: nopLogger{}})
	assert.ErrorIs(t, err, ErrMissingRepo)

	_, err = NewMazeService(MazeServiceOptions{Repo: newMemRepo()})
	assert.ErrorIs(t, err, ErrMissingLogger)

	svc, err := NewMazeService(MazeServiceOptions{Repo: newMemRepo(), Logger: nopLogger{}})
	require.NoError(t, err)
	assert.Equal(t, defaultMaxDimension, svc.maxDimension)
}

func TestGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("unseeded maze is solved and saved", func(t *testing.T) {
		r := newMemRepo()
		svc := newService(t, r, &memCache{values: map[string][]byte{}})

		record, err := svc.Generate(ctx, i.GenerateRequest{Cols: 8, Rows: 5})
		require.NoError(t, err)
		assert.True(t, record.Solved)
		assert.Nil(t, record.Seed)
		assert.Equal(t, dmn.Position{Col: 7, Row: 4}, record.Path[len(record.Path)-1])
		assert.Equal(t, 1, r.saves)
	})

	t.Run("seeded maze is cached", func(t *testing.T) {
		r := newMemRepo()
		c := &memCache{values: map[string][]byte{}}
		svc := newService(t, r, c)

		first, err := svc.Generate(ctx, i.GenerateRequest{Cols: 6, Rows: 6, Seed: seed(4)})
		require.NoError(t, err)
		second, err := svc.Generate(ctx, i.GenerateRequest{Cols: 6, Rows: 6, Seed: seed(4)})
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, first.Walls, second.Walls)
		assert.Equal(t, first.Path, second.Path)
		assert.Equal(t, 1, c.creates)
		assert.Equal(t, 1, r.saves)
		_, ok := c.values["maze:6x6:4"]
		assert.True(t, ok)
	})

	t.Run("cache outage falls back to generating", func(t *testing.T) {
		r := newMemRepo()
		svc := newService(t, r, downCache{})

		record, err := svc.Generate(ctx, i.GenerateRequest{Cols: 3, Rows: 4, Seed: seed(9)})
		require.NoError(t, err)
		assert.True(t, record.Solved)
		assert.Equal(t, 1, r.saves)

		m, err := maze.New(3, 4, maze.WithSeed(9))
		require.NoError(t, err)
		assert.Equal(t, m.WallMasks(), record.Walls)
	})

	t.Run("seeded save failure is not retried", func(t *testing.T) {
		saveErr := errors.New("mongo down")
		r := newMemRepo()
		r.saveErr = saveErr
		c := &memCache{values: map[string][]byte{}}
		svc := newService(t, r, c)

		record, err := svc.Generate(ctx, i.GenerateRequest{Cols: 3, Rows: 3, Seed: seed(1)})
		assert.ErrorIs(t, err, saveErr)
		assert.Nil(t, record)
		assert.Equal(t, 1, r.saves)
		assert.Zero(t, c.creates)
		assert.Empty(t, c.values)
	})

	t.Run("corrupt cache entry is ignored", func(t *testing.T) {
		c := &memCache{values: map[string][]byte{"maze:2x2:1": {0xff}}}
		svc := newService(t, newMemRepo(), c)

		record, err := svc.Generate(ctx, i.GenerateRequest{Cols: 2, Rows: 2, Seed: seed(1)})
		require.NoError(t, err)
		assert.True(t, record.Solved)
	})

	t.Run("dimension checks", func(t *testing.T) {
		svc := newService(t, newMemRepo(), nil)

		_, err := svc.Generate(ctx, i.GenerateRequest{Cols: 0, Rows: 5})
		assert.ErrorIs(t, err, maze.ErrInvalidDimension)

		_, err = svc.Generate(ctx, i.GenerateRequest{Cols: 51, Rows: 5})
		assert.ErrorIs(t, err, ErrDimensionTooLarge)

		_, err = svc.Generate(ctx, i.GenerateRequest{Cols: 50, Rows: 50})
		assert.NoError(t, err)
	})
}

func TestRenderAndLookup(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, newMemRepo(), nil)

	record, err := svc.Generate(ctx, i.GenerateRequest{Cols: 4, Rows: 3, Seed: seed(12)})
	require.NoError(t, err)

	got, err := svc.ByID(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, record, got)

	art, err := svc.Render(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, len(record.Path), strings.Count(art, "*"))
	assert.True(t, strings.HasPrefix(art, "+   +---+"))

	recent, err := svc.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, recent, 1)

	_, err = svc.Render(ctx, uuid.New())
	assert.ErrorIs(t, err, repo.ErrMazeNotFound)
}
