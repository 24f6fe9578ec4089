package maze

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// Grid owns every cell of a rows×columns layout.
// Topology is fixed at construction; link state is mutated by generation and
// treated as read-only afterward.
type Grid struct {
	Rows    int
	Columns int
	cells   []Cell // row-major arena, never reallocated
}

// NewGrid allocates a grid and wires each cell to its in-bounds neighbors.
// Returns ErrInvalidDimensions if rows or columns is less than one, or if the
// cell count does not fit in an int.
func NewGrid(rows, columns int) (*Grid, error) {
	if rows < 1 || columns < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, rows, columns)
	}
	if rows > math.MaxInt/columns {
		return nil, fmt.Errorf("%w: %dx%d overflows the cell count", ErrInvalidDimensions, rows, columns)
	}

	g := &Grid{
		Rows:    rows,
		Columns: columns,
		cells:   make([]Cell, rows*columns),
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < columns; col++ {
			idx := g.index(row, col)
			cell := &g.cells[idx]
			cell.Row = row
			cell.Col = col
			cell.grid = g
			cell.index = idx
			cell.links = mapset.New[int]()
			for _, dir := range Directions {
				dRow, dCol := dir.Delta()
				cell.neighbors[dir] = noNeighbor
				if g.inBounds(row+dRow, col+dCol) {
					cell.neighbors[dir] = g.index(row+dRow, col+dCol)
				}
			}
		}
	}

	return g, nil
}

// Cell returns the cell at (row, col), or nil when out of bounds.
func (g *Grid) Cell(row, col int) *Cell {
	if !g.inBounds(row, col) {
		return nil
	}
	return &g.cells[g.index(row, col)]
}

// Size returns the number of cells in the grid.
func (g *Grid) Size() int {
	return len(g.cells)
}

// RandomCell returns a uniformly selected cell.
func (g *Grid) RandomCell(rng *rand.Rand) *Cell {
	return &g.cells[rng.Intn(len(g.cells))]
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(c *Cell)) {
	for i := range g.cells {
		fn(&g.cells[i])
	}
}

// EachRow calls fn with the cells of each row, north to south.
func (g *Grid) EachRow(fn func(row []*Cell)) {
	for r := 0; r < g.Rows; r++ {
		row := make([]*Cell, g.Columns)
		for c := 0; c < g.Columns; c++ {
			row[c] = &g.cells[g.index(r, c)]
		}
		fn(row)
	}
}

// Cells returns every cell in row-major order.
func (g *Grid) Cells() []*Cell {
	result := make([]*Cell, len(g.cells))
	for i := range g.cells {
		result[i] = &g.cells[i]
	}
	return result
}

// LinkCount returns the number of undirected passages in the grid.
// One-way links count as half a passage and are rounded down.
func (g *Grid) LinkCount() int {
	total := 0
	for i := range g.cells {
		total += g.cells[i].links.Size()
	}
	return total / 2
}

// DeadEnds returns the cells with exactly one open passage, in row-major order.
func (g *Grid) DeadEnds() []*Cell {
	var result []*Cell
	g.Each(func(c *Cell) {
		if c.IsDeadEnd() {
			result = append(result, c)
		}
	})
	return result
}

// Reset removes every link, returning the grid to its freshly built state.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i].links = mapset.New[int]()
	}
}

// Validate checks that every cell is link-reachable from the first cell.
// Returns an error wrapping ErrDisconnected when some cells are orphaned.
func (g *Grid) Validate() error {
	reached := g.reachable(&g.cells[0])
	if reached.Size() != len(g.cells) {
		return fmt.Errorf("%w: %d of %d cells reachable", ErrDisconnected, reached.Size(), len(g.cells))
	}
	return nil
}

// reachable returns the indices of all cells link-reachable from start.
func (g *Grid) reachable(start *Cell) mapset.Set[int] {
	seen := mapset.New[int]()
	seen.Put(start.index)
	queue := []*Cell{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, next := range current.Links() {
			if seen.Has(next.index) {
				continue
			}
			seen.Put(next.index)
			queue = append(queue, next)
		}
	}
	return seen
}

// Braid removes dead ends by linking them to a neighbor they are not yet
// linked to. Each dead end is considered with probability p. Neighbors that
// are themselves dead ends are preferred so one link removes two dead ends.
// Braiding introduces cycles, so a braided grid is no longer a spanning tree.
func (g *Grid) Braid(rng *rand.Rand, p float64) {
	deadEnds := g.DeadEnds()
	rng.Shuffle(len(deadEnds), func(i, j int) {
		deadEnds[i], deadEnds[j] = deadEnds[j], deadEnds[i]
	})

	for _, cell := range deadEnds {
		// An earlier iteration may already have linked this cell.
		if !cell.IsDeadEnd() || rng.Float64() >= p {
			continue
		}

		var candidates, preferred []*Cell
		for _, n := range cell.Neighbors() {
			if cell.Linked(n) {
				continue
			}
			candidates = append(candidates, n)
			if n.IsDeadEnd() {
				preferred = append(preferred, n)
			}
		}
		if len(preferred) > 0 {
			candidates = preferred
		}
		if len(candidates) == 0 {
			continue
		}
		cell.Link(candidates[rng.Intn(len(candidates))])
	}
}

// String draws the grid as ASCII art. Each cell body shows its Tile, or a
// space when no tile has been set.
func (g *Grid) String() string {
	var b strings.Builder

	b.WriteString("+" + strings.Repeat("---+", g.Columns) + "\n")

	g.EachRow(func(row []*Cell) {
		body := "|"
		bottom := "+"
		for _, cell := range row {
			tile := ' '
			if cell.Tile != 0 {
				tile = cell.Tile
			}
			body += " " + string(tile) + " "
			if cell.LinkedTo(East) {
				body += " "
			} else {
				body += "|"
			}

			if cell.LinkedTo(South) {
				bottom += "   +"
			} else {
				bottom += "---+"
			}
		}
		b.WriteString(body + "\n")
		b.WriteString(bottom + "\n")
	})

	return b.String()
}

// at returns the cell stored at a row-major index.
func (g *Grid) at(idx int) *Cell {
	return &g.cells[idx]
}

// index maps (row, col) to a row-major index: row*Columns + col.
func (g *Grid) index(row, col int) int {
	return row*g.Columns + col
}

// inBounds reports whether (row, col) lies within the grid.
func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Columns
}
