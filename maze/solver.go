package maze

// Solver finds the entrance-to-exit path with a depth-first search that
// only crosses carved walls.
type Solver struct {
	vis Visualizer
}

// NewSolver returns a Solver reporting moves to vis. A nil vis is replaced
// by NopVisualizer.
func NewSolver(vis Visualizer) *Solver {
	if vis == nil {
		vis = NopVisualizer{}
	}
	return &Solver{vis: vis}
}

// Solve searches grid from the entrance. It requires every visited flag to
// be false; call Grid.ResetVisited before searching the same grid again.
//
// On success it returns the positions from entrance to exit and true. When
// the entrance runs out of candidates it returns nil and false.
func (s *Solver) Solve(grid *Grid) ([]CellPosition, bool) {
	start := grid.Entrance()
	start.visited = true
	stack := []*Cell{start}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		if grid.IsExit(cur.pos) {
			path := make([]CellPosition, len(stack))
			for i, c := range stack {
				path[i] = c.pos
			}
			return path, true
		}

		if next, ok := s.nextCandidate(grid, cur); ok {
			s.vis.NotifyMove(cur, next, false)
			next.visited = true
			stack = append(stack, next)
			continue
		}

		// Dead end: retract the move that led here.
		stack = stack[:len(stack)-1]
		if len(stack) > 0 {
			s.vis.NotifyMove(stack[len(stack)-1], cur, true)
		}
	}

	return nil, false
}

// nextCandidate returns the first neighbor in right, down, left, up order
// that is unvisited and reachable through an open wall of cur. Walls are
// kept consistent on both sides, so cur's own flag is enough.
func (s *Solver) nextCandidate(grid *Grid, cur *Cell) (*Cell, bool) {
	for _, d := range Directions {
		if cur.HasWall(d) {
			continue
		}
		nbr, ok := grid.Neighbor(cur.pos, d)
		if ok && !nbr.visited {
			return nbr, true
		}
	}
	return nil, false
}
