package maze

// Grid is a fixed-size rectangle of cells addressed by (column, row).
// Cells are stored [row][col]; the grid owns them exclusively.
type Grid struct {
	cols  int
	rows  int
	cells [][]*Cell
}

// NewGrid allocates a cols x rows grid with every wall present and no cell visited.
func NewGrid(cols, rows int) (*Grid, error) {
	if cols < 1 || rows < 1 {
		return nil, ErrInvalidDimension
	}

	cells := make([][]*Cell, rows)
	for row := range cells {
		cells[row] = make([]*Cell, cols)
		for col := range cells[row] {
			cells[row][col] = newCell(col, row)
		}
	}

	return &Grid{
		cols:  cols,
		rows:  rows,
		cells: cells,
	}, nil
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// InBound checks whether (col, row) lies inside the grid.
func (g *Grid) InBound(col, row int) bool {
	return col >= 0 && col < g.cols && row >= 0 && row < g.rows
}

// Cell returns the cell at pos, or false when pos is out of bounds.
func (g *Grid) Cell(pos CellPosition) (*Cell, bool) {
	if !g.InBound(pos.Col, pos.Row) {
		return nil, false
	}
	return g.cells[pos.Row][pos.Col], true
}

// Entrance returns the cell at (0, 0).
func (g *Grid) Entrance() *Cell {
	return g.cells[0][0]
}

// Exit returns the cell at (cols-1, rows-1).
func (g *Grid) Exit() *Cell {
	return g.cells[g.rows-1][g.cols-1]
}

// IsExit reports whether pos is the exit position.
func (g *Grid) IsExit(pos CellPosition) bool {
	return pos.Col == g.cols-1 && pos.Row == g.rows-1
}

// Neighbor returns the cell adjacent to pos in direction d, if it exists.
func (g *Grid) Neighbor(pos CellPosition, d Direction) (*Cell, bool) {
	return g.Cell(pos.Step(d))
}

// OpenWall carves the wall between pos and its neighbor in direction d,
// clearing both sides.
func (g *Grid) OpenWall(pos CellPosition, d Direction) error {
	cur, ok := g.Cell(pos)
	if !ok {
		return ErrOutOfBounds
	}
	nbr, ok := g.Neighbor(pos, d)
	if !ok {
		return ErrNoNeighbor
	}

	cur.clearWall(d)
	nbr.clearWall(d.Opposite())
	return nil
}

// OpenBoundary clears an exterior wall of the cell at pos. The side must face
// outside the grid.
func (g *Grid) OpenBoundary(pos CellPosition, d Direction) error {
	cur, ok := g.Cell(pos)
	if !ok {
		return ErrOutOfBounds
	}
	if _, inside := g.Neighbor(pos, d); inside {
		return ErrNotBoundary
	}

	cur.clearWall(d)
	return nil
}

// ResetVisited clears the visited flag of every cell. It is the transition
// between the carving and solving phases, and must run before any re-solve.
func (g *Grid) ResetVisited() {
	g.Each(func(c *Cell) {
		c.visited = false
	})
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(*Cell)) {
	for _, row := range g.cells {
		for _, c := range row {
			fn(c)
		}
	}
}

// OpenInternalWalls counts the carved walls between pairs of cells.
func (g *Grid) OpenInternalWalls() int {
	open := 0
	g.Each(func(c *Cell) {
		// Count each shared wall once, from its left or top side.
		for _, d := range [...]Direction{Right, Down} {
			if _, ok := g.Neighbor(c.pos, d); ok && !c.HasWall(d) {
				open++
			}
		}
	})
	return open
}
