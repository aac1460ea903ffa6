package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/ilhamhanifan/maze-solver/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMaze(t *testing.T) {
	m, err := maze.New(5, 4, maze.WithSeed(17))
	require.NoError(t, err)
	require.True(t, m.Solve())

	t.Run("snapshots walls, seed and path", func(t *testing.T) {
		id := uuid.New()
		record, err := NewMaze(MazeConfig{ID: id, Maze: m, Solved: true})
		require.NoError(t, err)

		assert.Equal(t, id, record.ID)
		assert.Equal(t, 5, record.Cols)
		assert.Equal(t, 4, record.Rows)
		require.NotNil(t, record.Seed)
		assert.Equal(t, int64(17), *record.Seed)
		assert.Equal(t, m.WallMasks(), record.Walls)
		assert.Len(t, record.Path, len(m.Path()))
		assert.Equal(t, Position{Col: 0, Row: 0}, record.Path[0])
		assert.Equal(t, Position{Col: 4, Row: 3}, record.Path[len(record.Path)-1])
		assert.NoError(t, record.Validate())
	})

	t.Run("generates an ID when none is given", func(t *testing.T) {
		record, err := NewMaze(MazeConfig{Maze: m})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, record.ID)
	})

	t.Run("nil maze", func(t *testing.T) {
		_, err := NewMaze(MazeConfig{})
		assert.ErrorIs(t, err, ErrNilMaze)
	})
}

func TestMazeRestore(t *testing.T) {
	m, err := maze.New(6, 6, maze.WithSeed(2))
	require.NoError(t, err)
	require.True(t, m.Solve())

	record, err := NewMaze(MazeConfig{Maze: m, Solved: true})
	require.NoError(t, err)

	restored, err := record.Restore()
	require.NoError(t, err)
	assert.Equal(t, m.String(), restored.String())

	record.Walls = record.Walls[1:]
	_, err = record.Restore()
	assert.ErrorIs(t, err, ErrWallsMismatch)

	record.Cols = 0
	assert.ErrorIs(t, record.Validate(), ErrInvalidMazeDim)
}

func TestMazeValidateHugeDimensions(t *testing.T) {
	// 1<<62 * 4 wraps to zero, which would match an empty wall slice
	record := &Maze{Cols: 1 << 62, Rows: 4}
	assert.ErrorIs(t, record.Validate(), ErrWallsMismatch)

	record = &Maze{Cols: 2, Rows: 2, Walls: make([]uint8, 4)}
	assert.NoError(t, record.Validate())
}
