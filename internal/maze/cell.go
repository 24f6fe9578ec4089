// Package maze provides the grid model that level generation carves passages
// into, and the breadth-first distance queries answered over it.
package maze

import (
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// Direction names one of the four orthogonal neighbor relations of a cell.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// Directions lists every direction in the fixed traversal order used by Cell.Neighbors.
var Directions = [...]Direction{North, South, East, West}

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// Delta returns the row and column offset of a step in this direction.
// Row 0 is the northern edge of the grid.
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case North:
		return -1, 0
	case South:
		return 1, 0
	case East:
		return 0, 1
	case West:
		return 0, -1
	default:
		return 0, 0
	}
}

// noNeighbor marks an absent neighbor relation at the grid edge.
const noNeighbor = -1

// Cell is a single addressable grid position.
//
// Neighbor relations are arena indices fixed when the grid is built. The link
// set holds the indices of the cells this cell has an open passage to.
type Cell struct {
	Row, Col int

	// Tile is an opaque marker owned by renderers. The maze never reads it
	// except to draw it in Grid.String.
	Tile rune

	grid      *Grid
	index     int
	neighbors [4]int
	links     mapset.Set[int]
}

// Index returns the row-major position of the cell within its grid.
func (c *Cell) Index() int {
	return c.index
}

// Neighbor returns the adjacent cell in the given direction, or nil at the grid edge.
func (c *Cell) Neighbor(dir Direction) *Cell {
	if dir < North || dir > West {
		return nil
	}
	idx := c.neighbors[dir]
	if idx == noNeighbor {
		return nil
	}
	return c.grid.at(idx)
}

func (c *Cell) North() *Cell { return c.Neighbor(North) }
func (c *Cell) South() *Cell { return c.Neighbor(South) }
func (c *Cell) East() *Cell  { return c.Neighbor(East) }
func (c *Cell) West() *Cell  { return c.Neighbor(West) }

// Neighbors returns the in-bounds neighbors in north, south, east, west order.
func (c *Cell) Neighbors() []*Cell {
	result := make([]*Cell, 0, 4)
	for _, dir := range Directions {
		if n := c.Neighbor(dir); n != nil {
			result = append(result, n)
		}
	}
	return result
}

// Link opens a passage between c and other in both directions.
// A nil cell, or a cell belonging to another grid, is ignored.
func (c *Cell) Link(other *Cell) {
	if !c.sameGrid(other) {
		return
	}
	c.links.Put(other.index)
	other.links.Put(c.index)
}

// LinkOneWay opens a passage from c to other without the reverse link.
// Generation algorithms always use Link; this exists for callers that model
// one-way doors on top of a finished layout.
func (c *Cell) LinkOneWay(other *Cell) {
	if !c.sameGrid(other) {
		return
	}
	c.links.Put(other.index)
}

// Unlink closes the passage between c and other in both directions.
func (c *Cell) Unlink(other *Cell) {
	if !c.sameGrid(other) {
		return
	}
	c.links.Remove(other.index)
	other.links.Remove(c.index)
}

// Linked reports whether c has an open passage to other.
func (c *Cell) Linked(other *Cell) bool {
	if !c.sameGrid(other) {
		return false
	}
	return c.links.Has(other.index)
}

// LinkedTo reports whether the boundary in the given direction is open.
// Movement layers use this to decide whether a step is legal.
func (c *Cell) LinkedTo(dir Direction) bool {
	return c.Linked(c.Neighbor(dir))
}

// Links returns the linked cells in ascending row-major order.
func (c *Cell) Links() []*Cell {
	indices := make([]int, 0, c.links.Size())
	c.links.Each(func(idx int) {
		indices = append(indices, idx)
	})
	slices.Sort(indices)

	result := make([]*Cell, len(indices))
	for i, idx := range indices {
		result[i] = c.grid.at(idx)
	}
	return result
}

// LinkCount returns the number of open passages leaving the cell.
func (c *Cell) LinkCount() int {
	return c.links.Size()
}

// IsDeadEnd reports whether the cell has exactly one open passage.
func (c *Cell) IsDeadEnd() bool {
	return c.links.Size() == 1
}

// Distances builds a breadth-first distance map rooted at this cell.
func (c *Cell) Distances() *Distances {
	return NewDistances(c)
}

func (c *Cell) sameGrid(other *Cell) bool {
	return other != nil && other.grid == c.grid
}
