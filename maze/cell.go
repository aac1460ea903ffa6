package maze

import "fmt"

// Direction names one side of a cell.
type Direction int

// Directions in the order the solver tries them.
const (
	Right Direction = iota
	Down
	Left
	Up
)

// Directions lists every direction in the fixed right, down, left, up order.
var Directions = [...]Direction{Right, Down, Left, Up}

// Wall bits used by Cell.WallMask and Restore.
const (
	TopWallBit uint8 = 1 << iota
	BottomWallBit
	LeftWallBit
	RightWallBit

	allWalls = TopWallBit | BottomWallBit | LeftWallBit | RightWallBit
)

// String returns the lower-case name of the direction.
func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	case Up:
		return "up"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// Opposite returns the side facing d across a shared wall.
func (d Direction) Opposite() Direction {
	switch d {
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Down
	}
}

func (d Direction) delta() (dCol, dRow int) {
	switch d {
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Up:
		return 0, -1
	}
	return 0, 0
}

func (d Direction) bit() uint8 {
	switch d {
	case Right:
		return RightWallBit
	case Down:
		return BottomWallBit
	case Left:
		return LeftWallBit
	case Up:
		return TopWallBit
	}
	return 0
}

// CellPosition represents the position of a cell in the maze grid.
type CellPosition struct {
	Col int // Column index of the cell
	Row int // Row index of the cell
}

// Step returns the position one cell away in direction d.
func (p CellPosition) Step(d Direction) CellPosition {
	dc, dr := d.delta()
	return CellPosition{Col: p.Col + dc, Row: p.Row + dr}
}

// String formats the position as "(col,row)".
func (p CellPosition) String() string {
	return fmt.Sprintf("(%d,%d)", p.Col, p.Row)
}

// Cell represents a single cell in a maze grid.
// Its position is fixed when the grid allocates it; walls start present.
type Cell struct {
	pos     CellPosition
	walls   uint8
	visited bool
}

func newCell(col, row int) *Cell {
	return &Cell{
		pos:   CellPosition{Col: col, Row: row},
		walls: allWalls,
	}
}

// Position returns the cell's column and row.
func (c *Cell) Position() CellPosition {
	return c.pos
}

// Col returns the column index of the cell.
func (c *Cell) Col() int {
	return c.pos.Col
}

// Row returns the row index of the cell.
func (c *Cell) Row() int {
	return c.pos.Row
}

// HasWall reports whether the wall on side d is present.
func (c *Cell) HasWall(d Direction) bool {
	return c.walls&d.bit() != 0
}

// HasTopWall returns true if there is a wall on the top side of the cell.
func (c *Cell) HasTopWall() bool {
	return c.HasWall(Up)
}

// HasBottomWall returns true if there is a wall on the bottom side of the cell.
func (c *Cell) HasBottomWall() bool {
	return c.HasWall(Down)
}

// HasLeftWall returns true if there is a wall on the left side of the cell.
func (c *Cell) HasLeftWall() bool {
	return c.HasWall(Left)
}

// HasRightWall returns true if there is a wall on the right side of the cell.
func (c *Cell) HasRightWall() bool {
	return c.HasWall(Right)
}

// WallMask returns the wall flags packed as TopWallBit|BottomWallBit|LeftWallBit|RightWallBit.
func (c *Cell) WallMask() uint8 {
	return c.walls
}

// Visited reports the cell's transient visitation flag.
func (c *Cell) Visited() bool {
	return c.visited
}

// clearWall is only called by Grid, which keeps the neighbor in step.
func (c *Cell) clearWall(d Direction) {
	c.walls &^= d.bit()
}
