package maze

import (
	"math/rand"
)

// Generator carves a fully walled grid into a perfect maze with the
// recursive backtracker, run on an explicit stack.
type Generator struct {
	rng *rand.Rand
	vis Visualizer
}

// NewGenerator returns a Generator drawing from rng and reporting to vis.
// A nil vis is replaced by NopVisualizer.
func NewGenerator(rng *rand.Rand, vis Visualizer) *Generator {
	if vis == nil {
		vis = NopVisualizer{}
	}
	return &Generator{rng: rng, vis: vis}
}

// Generate carves grid starting from the entrance. The grid must be fully
// walled and unvisited. On return every visited flag is cleared again.
func (g *Generator) Generate(grid *Grid) error {
	grid.Each(g.vis.NotifyCellChanged)

	if err := g.breakEntranceAndExit(grid); err != nil {
		return err
	}

	if err := g.carve(grid); err != nil {
		return err
	}
	grid.ResetVisited()
	return nil
}

// breakEntranceAndExit opens the top of the entrance and the bottom of the exit.
func (g *Generator) breakEntranceAndExit(grid *Grid) error {
	entrance, exit := grid.Entrance(), grid.Exit()
	if err := grid.OpenBoundary(entrance.pos, Up); err != nil {
		return err
	}
	if err := grid.OpenBoundary(exit.pos, Down); err != nil {
		return err
	}

	g.vis.NotifyCellChanged(entrance)
	g.vis.NotifyCellChanged(exit)
	return nil
}

// carve walks depth-first from the entrance. The top of the stack is the
// current cell; its unvisited neighbors are collected fresh on every pass,
// so returning to a cell after its subtree is done resumes the search there.
func (g *Generator) carve(grid *Grid) error {
	start := grid.Entrance()
	start.visited = true
	stack := []*Cell{start}

	toVisit := make([]Direction, 0, len(Directions))
	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		toVisit = toVisit[:0]
		for _, d := range Directions {
			if nbr, ok := grid.Neighbor(cur.pos, d); ok && !nbr.visited {
				toVisit = append(toVisit, d)
			}
		}

		if len(toVisit) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := toVisit[g.rng.Intn(len(toVisit))]
		next, _ := grid.Neighbor(cur.pos, d)
		if err := grid.OpenWall(cur.pos, d); err != nil {
			return err
		}
		g.vis.NotifyCellChanged(cur)
		g.vis.NotifyCellChanged(next)

		next.visited = true
		stack = append(stack, next)
	}
	return nil
}
