package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ilhamhanifan/maze-solver/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunGenerate(t *testing.T) {
	seed := int64(10)

	t.Run("seeded output is reproducible", func(t *testing.T) {
		var a, b bytes.Buffer
		require.NoError(t, runGenerate(&a, generateOptions{cols: 6, rows: 4, seed: &seed}))
		require.NoError(t, runGenerate(&b, generateOptions{cols: 6, rows: 4, seed: &seed}))
		assert.Equal(t, a.String(), b.String())
		assert.Contains(t, a.String(), "solved: ")

		m, err := maze.New(6, 4, maze.WithSeed(seed))
		require.NoError(t, err)
		require.True(t, m.Solve())
		assert.True(t, strings.HasPrefix(a.String(), m.String()))
	})

	t.Run("single cell", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, runGenerate(&out, generateOptions{cols: 1, rows: 1}))
		assert.Equal(t, "+   +\n| * |\n+   +\nsolved: 1 cells, 0 moves\n", out.String())
	})

	t.Run("trace lists events", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, runGenerate(&out, generateOptions{cols: 2, rows: 1, seed: &seed, trace: true}))
		assert.Contains(t, out.String(), "cell (0,0)")
		assert.Contains(t, out.String(), "move (0,0) -> (1,0)")
	})

	t.Run("no solve", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, runGenerate(&out, generateOptions{cols: 3, rows: 3, seed: &seed, noSolve: true}))
		assert.NotContains(t, out.String(), "*")
		assert.NotContains(t, out.String(), "solved")
	})

	t.Run("invalid dimensions", func(t *testing.T) {
		err := runGenerate(&bytes.Buffer{}, generateOptions{cols: 0, rows: 3})
		assert.ErrorIs(t, err, maze.ErrInvalidDimension)
	})
}
