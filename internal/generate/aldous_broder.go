package generate

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/mazeband/internal/maze"
)

// AldousBroder performs a uniform random walk over grid adjacency, ignoring
// current links, and links each cell to the cell the walk came from the first
// time it is entered. The walk ends once every cell has been visited.
//
// The result is drawn uniformly from all spanning trees of the grid, but the
// walk has no fixed time bound: expect O(n log n) on square grids and up to
// O(n²) on long narrow ones.
type AldousBroder struct {
	// OnVisit, if set, is called once for every cell the first time the walk
	// reaches it, including the start cell.
	OnVisit func(c *maze.Cell)
}

func (AldousBroder) Name() string { return NameAldousBroder }

// Generate walks until the visited set covers the whole grid.
func (a AldousBroder) Generate(grid *maze.Grid, rng *rand.Rand) {
	cell := grid.RandomCell(rng)
	visited := mapset.New[int]()
	visited.Put(cell.Index())
	a.visit(cell)

	for visited.Size() < grid.Size() {
		neighbors := cell.Neighbors()
		next := neighbors[rng.Intn(len(neighbors))]

		if !visited.Has(next.Index()) {
			cell.Link(next)
			visited.Put(next.Index())
			a.visit(next)
		}
		cell = next
	}
}

func (a AldousBroder) visit(c *maze.Cell) {
	if a.OnVisit != nil {
		a.OnVisit(c)
	}
}
