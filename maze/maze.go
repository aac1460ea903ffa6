/*
Package maze generates and solves perfect rectangular mazes.

A Maze owns a Grid of Cells, each carrying four wall flags. Construction
carves the grid with a randomized recursive backtracker, so the open walls
form a spanning tree: every cell is reachable and there are no cycles. The
entrance is the top of cell (0,0) and the exit the bottom of the far corner.

Solve runs a depth-first search in the fixed right, down, left, up order.
Both phases can report progress to a Visualizer; the package itself never
draws anything.
*/
package maze

import (
	"math/rand"
	"strings"
	"time"
)

// Move represents a step from one cell to an adjacent one.
type Move struct {
	From      CellPosition // Starting cell
	To        CellPosition // Destination cell
	Direction Direction    // Side of From that is crossed
}

// Option configures a Maze at construction.
type Option func(*Maze)

// WithSeed makes generation deterministic for a given size.
func WithSeed(seed int64) Option {
	return func(m *Maze) {
		m.seed = &seed
	}
}

// WithRand supplies the random source directly. It takes precedence over WithSeed.
func WithRand(rng *rand.Rand) Option {
	return func(m *Maze) {
		m.rng = rng
	}
}

// WithVisualizer reports generation and solving progress to v.
func WithVisualizer(v Visualizer) Option {
	return func(m *Maze) {
		m.vis = v
	}
}

// Maze is a carved grid plus the last solution found on it.
// It is not safe for concurrent use.
type Maze struct {
	grid *Grid
	seed *int64
	rng  *rand.Rand
	vis  Visualizer
	path []CellPosition
}

// New allocates a cols x rows grid and carves it before returning.
func New(cols, rows int, opts ...Option) (*Maze, error) {
	grid, err := NewGrid(cols, rows)
	if err != nil {
		return nil, err
	}

	m := &Maze{grid: grid}
	for _, opt := range opts {
		opt(m)
	}
	if m.vis == nil {
		m.vis = NopVisualizer{}
	}
	if m.rng == nil {
		src := time.Now().UnixNano()
		if m.seed != nil {
			src = *m.seed
		}
		m.rng = rand.New(rand.NewSource(src))
	}

	if err := NewGenerator(m.rng, m.vis).Generate(grid); err != nil {
		return nil, err
	}
	return m, nil
}

// Restore rebuilds a carved maze from wall masks in row-major order, as
// produced by WallMasks. Shared walls must agree on both sides.
func Restore(cols, rows int, masks []uint8) (*Maze, error) {
	grid, err := NewGrid(cols, rows)
	if err != nil {
		return nil, err
	}
	if len(masks) != cols*rows {
		return nil, ErrInconsistentWalls
	}

	for i, mask := range masks {
		if mask&^allWalls != 0 {
			return nil, ErrInconsistentWalls
		}
		grid.cells[i/cols][i%cols].walls = mask
	}

	var bad bool
	grid.Each(func(c *Cell) {
		for _, d := range [...]Direction{Right, Down} {
			if nbr, ok := grid.Neighbor(c.pos, d); ok && c.HasWall(d) != nbr.HasWall(d.Opposite()) {
				bad = true
			}
		}
	})
	if bad {
		return nil, ErrInconsistentWalls
	}

	return &Maze{grid: grid, vis: NopVisualizer{}}, nil
}

// Grid exposes the underlying grid.
func (m *Maze) Grid() *Grid {
	return m.grid
}

// Cols returns the number of columns.
func (m *Maze) Cols() int {
	return m.grid.cols
}

// Rows returns the number of rows.
func (m *Maze) Rows() int {
	return m.grid.rows
}

// Seed returns the generation seed, if one was given.
func (m *Maze) Seed() (int64, bool) {
	if m.seed == nil {
		return 0, false
	}
	return *m.seed, true
}

// Solve searches for a path from the entrance to the exit. Visited flags
// are reset first, so repeated calls on the same maze find the same path.
func (m *Maze) Solve() bool {
	m.grid.ResetVisited()
	path, ok := NewSolver(m.vis).Solve(m.grid)
	m.path = path
	return ok
}

// Path returns a copy of the path found by the most recent Solve. It is nil
// before the first Solve and after a Solve that found no path.
func (m *Maze) Path() []CellPosition {
	if m.path == nil {
		return nil
	}
	return append([]CellPosition(nil), m.path...)
}

// WallMasks returns every cell's wall mask in row-major order.
func (m *Maze) WallMasks() []uint8 {
	masks := make([]uint8, 0, m.grid.cols*m.grid.rows)
	m.grid.Each(func(c *Cell) {
		masks = append(masks, c.walls)
	})
	return masks
}

// NewValidMove builds the move from `from` in direction d and checks it.
func (m *Maze) NewValidMove(from CellPosition, d Direction) (Move, error) {
	move := Move{From: from, To: from.Step(d), Direction: d}
	if !m.IsValidMove(move) {
		return Move{}, ErrInvalidMove
	}
	return move, nil
}

// IsValidMove checks if a move is valid (i.e., the connecting wall is down).
func (m *Maze) IsValidMove(move Move) bool {
	from, ok := m.grid.Cell(move.From)
	if !ok {
		return false
	}
	to, ok := m.grid.Cell(move.To)
	if !ok || move.From.Step(move.Direction) != move.To {
		return false
	}
	return !from.HasWall(move.Direction) && !to.HasWall(move.Direction.Opposite())
}

// String provides a textual representation of the maze, marking the
// current path with '*'.
func (m *Maze) String() string {
	onPath := make(map[CellPosition]struct{}, len(m.path))
	for _, p := range m.path {
		onPath[p] = struct{}{}
	}

	var b strings.Builder

	// Top boundary
	b.WriteString("+")
	for col := 0; col < m.grid.cols; col++ {
		if m.grid.cells[0][col].HasTopWall() {
			b.WriteString("---+")
		} else {
			b.WriteString("   +")
		}
	}
	b.WriteString("\n")

	for row := 0; row < m.grid.rows; row++ {
		// Cell rows
		if m.grid.cells[row][0].HasLeftWall() {
			b.WriteString("|")
		} else {
			b.WriteString(" ")
		}
		for col := 0; col < m.grid.cols; col++ {
			cell := m.grid.cells[row][col]
			if _, ok := onPath[cell.pos]; ok {
				b.WriteString(" * ")
			} else {
				b.WriteString("   ")
			}
			if cell.HasRightWall() {
				b.WriteString("|")
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")

		// Wall rows
		b.WriteString("+")
		for col := 0; col < m.grid.cols; col++ {
			if m.grid.cells[row][col].HasBottomWall() {
				b.WriteString("---+")
			} else {
				b.WriteString("   +")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
