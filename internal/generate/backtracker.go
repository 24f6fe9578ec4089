package generate

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/mazeband/internal/maze"
)

// RecursiveBacktracker carves a depth-first walk from a random start cell,
// backing up along an explicit stack whenever it reaches a dead end.
// Produces long winding corridors with few short dead ends. O(n) time and
// O(n) worst-case stack.
type RecursiveBacktracker struct{}

func (RecursiveBacktracker) Name() string { return NameRecursiveBacktracker }

// Generate links the grid into a spanning tree.
func (RecursiveBacktracker) Generate(grid *maze.Grid, rng *rand.Rand) {
	start := grid.RandomCell(rng)
	visited := mapset.New[int]()
	visited.Put(start.Index())
	stack := []*maze.Cell{start}

	for len(stack) > 0 {
		current := stack[len(stack)-1]

		var unvisited []*maze.Cell
		for _, n := range current.Neighbors() {
			if !visited.Has(n.Index()) {
				unvisited = append(unvisited, n)
			}
		}

		if len(unvisited) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := unvisited[rng.Intn(len(unvisited))]
		current.Link(next)
		visited.Put(next.Index())
		stack = append(stack, next)
	}
}
