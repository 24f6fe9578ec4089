package maze_test

import (
	"errors"
	"fmt"

	"github.com/samdwyer/mazeband/internal/maze"
)

// ExampleLongestPath links a 2x3 grid into a single winding corridor, then
// marks both ends of its longest path.
func ExampleLongestPath() {
	g, err := maze.NewGrid(2, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	g.Cell(0, 0).Link(g.Cell(0, 1))
	g.Cell(0, 1).Link(g.Cell(0, 2))
	g.Cell(0, 2).Link(g.Cell(1, 2))
	g.Cell(1, 2).Link(g.Cell(1, 1))
	g.Cell(1, 1).Link(g.Cell(1, 0))

	longest, err := maze.LongestPath(g, g.Cell(0, 0))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	longest.From.Tile = 'S'
	longest.To.Tile = '>'

	fmt.Println("length:", longest.Length)
	fmt.Print(g)
	// Output:
	// length: 5
	// +---+---+---+
	// | >         |
	// +---+---+   +
	// | S         |
	// +---+---+---+
}

// ExampleDistances_PathTo shows a query against a cell the root cannot reach.
func ExampleDistances_PathTo() {
	g, _ := maze.NewGrid(1, 3)
	g.Cell(0, 0).Link(g.Cell(0, 1))

	d := g.Cell(0, 0).Distances()
	path, _ := d.PathTo(g.Cell(0, 1))
	fmt.Println(len(path) - 1)

	_, err := d.PathTo(g.Cell(0, 2))
	fmt.Println(errors.Is(err, maze.ErrNotReachable))
	// Output:
	// 1
	// true
}
