package generate

import (
	"math/rand"

	"github.com/samdwyer/mazeband/internal/maze"
)

// RecursiveDivision starts from a fully open grid and repeatedly splits a
// region with a wall that has a single doorway, producing rectangular
// room-like areas joined by doors.
//
// With RoomSize zero every region is divided until it is one cell wide or
// tall, which yields a spanning tree. A positive RoomSize leaves regions no
// larger than RoomSize in both dimensions undivided; those open rooms contain
// cycles.
type RecursiveDivision struct {
	RoomSize int
}

func (RecursiveDivision) Name() string { return NameRecursiveDivision }

// region is a rectangle of cells still waiting to be divided.
type region struct {
	row, col      int
	height, width int
}

// Generate divides the grid. Regions are kept on an explicit stack, so depth
// is bounded by memory rather than the call stack.
func (d RecursiveDivision) Generate(grid *maze.Grid, rng *rand.Rand) {
	grid.Each(func(cell *maze.Cell) {
		for _, n := range cell.Neighbors() {
			cell.Link(n)
		}
	})

	stack := []region{{row: 0, col: 0, height: grid.Rows, width: grid.Columns}}
	for len(stack) > 0 {
		r := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if r.height <= 1 || r.width <= 1 {
			continue
		}
		if d.RoomSize > 0 && r.height <= d.RoomSize && r.width <= d.RoomSize {
			continue
		}

		var first, second region
		if splitHorizontally(r, rng) {
			first, second = divideHorizontally(grid, r, rng)
		} else {
			first, second = divideVertically(grid, r, rng)
		}
		// Push second first so the northern/western half is divided next.
		stack = append(stack, second, first)
	}
}

// splitHorizontally prefers cutting across the longer dimension and flips a
// coin for square regions.
func splitHorizontally(r region, rng *rand.Rand) bool {
	if r.height > r.width {
		return true
	}
	if r.width > r.height {
		return false
	}
	return rng.Intn(2) == 0
}

// divideHorizontally closes every southern passage along one row of the
// region except the doorway, and returns the regions above and below the wall.
func divideHorizontally(grid *maze.Grid, r region, rng *rand.Rand) (region, region) {
	divideSouthOf := rng.Intn(r.height - 1)
	doorway := rng.Intn(r.width)

	for x := 0; x < r.width; x++ {
		if x == doorway {
			continue
		}
		cell := grid.Cell(r.row+divideSouthOf, r.col+x)
		cell.Unlink(cell.South())
	}

	north := region{row: r.row, col: r.col, height: divideSouthOf + 1, width: r.width}
	south := region{row: r.row + divideSouthOf + 1, col: r.col, height: r.height - divideSouthOf - 1, width: r.width}
	return north, south
}

// divideVertically closes every eastern passage along one column of the
// region except the doorway, and returns the regions west and east of the wall.
func divideVertically(grid *maze.Grid, r region, rng *rand.Rand) (region, region) {
	divideEastOf := rng.Intn(r.width - 1)
	doorway := rng.Intn(r.height)

	for y := 0; y < r.height; y++ {
		if y == doorway {
			continue
		}
		cell := grid.Cell(r.row+y, r.col+divideEastOf)
		cell.Unlink(cell.East())
	}

	west := region{row: r.row, col: r.col, height: r.height, width: divideEastOf + 1}
	east := region{row: r.row, col: r.col + divideEastOf + 1, height: r.height, width: r.width - divideEastOf - 1}
	return west, east
}
