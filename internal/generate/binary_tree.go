package generate

import (
	"math/rand"

	"github.com/samdwyer/mazeband/internal/maze"
)

// BinaryTree links every cell to its north or east neighbor.
//
// Cells on the top row can only go east and cells in the right column can only
// go north, which leaves an unbroken corridor along both edges and a strong
// diagonal bias. O(n) time, no extra space.
type BinaryTree struct{}

func (BinaryTree) Name() string { return NameBinaryTree }

// Generate visits cells in row-major order, flipping a coin when both
// directions exist.
func (BinaryTree) Generate(grid *maze.Grid, rng *rand.Rand) {
	grid.Each(func(cell *maze.Cell) {
		candidates := make([]*maze.Cell, 0, 2)
		if north := cell.North(); north != nil {
			candidates = append(candidates, north)
		}
		if east := cell.East(); east != nil {
			candidates = append(candidates, east)
		}
		if len(candidates) == 0 {
			return
		}
		cell.Link(candidates[rng.Intn(len(candidates))])
	})
}
