package maze

import "fmt"

// unreached marks a cell with no recorded distance.
const unreached = -1

// Distances is a breadth-first distance map anchored at one root cell.
//
// Every passage costs one step, so layer-by-layer expansion yields exact
// shortest-path distances. Cells that cannot be reached from the root have no
// entry. A map is built once and never updated; if the grid's links change
// afterward, build a new one.
type Distances struct {
	root    *Cell
	grid    *Grid
	dist    []int // indexed by cell arena index
	reached int
}

// NewDistances expands outward from root over linked passages and records the
// step count to every reachable cell. The frontier is processed in insertion
// order and each cell's links in row-major order, so the result is
// deterministic for a given link state.
//
// A nil root produces an empty map.
func NewDistances(root *Cell) *Distances {
	if root == nil {
		return &Distances{}
	}

	d := &Distances{
		root: root,
		grid: root.grid,
		dist: make([]int, root.grid.Size()),
	}
	for i := range d.dist {
		d.dist[i] = unreached
	}

	d.dist[root.index] = 0
	d.reached = 1
	frontier := []*Cell{root}

	for len(frontier) > 0 {
		var next []*Cell
		for _, cell := range frontier {
			for _, linked := range cell.Links() {
				if d.dist[linked.index] != unreached {
					continue
				}
				d.dist[linked.index] = d.dist[cell.index] + 1
				d.reached++
				next = append(next, linked)
			}
		}
		frontier = next
	}

	return d
}

// Root returns the cell the map is anchored at.
func (d *Distances) Root() *Cell {
	return d.root
}

// Len returns the number of cells with a recorded distance, including the root.
func (d *Distances) Len() int {
	return d.reached
}

// At returns the recorded distance to cell. ok is false when the cell was not
// reached, or does not belong to the grid the map was built over.
func (d *Distances) At(cell *Cell) (distance int, ok bool) {
	if cell == nil || d.grid == nil || cell.grid != d.grid {
		return 0, false
	}
	distance = d.dist[cell.index]
	if distance == unreached {
		return 0, false
	}
	return distance, true
}

// Each calls fn for every reached cell in row-major order.
func (d *Distances) Each(fn func(c *Cell, distance int)) {
	for idx, distance := range d.dist {
		if distance != unreached {
			fn(d.grid.at(idx), distance)
		}
	}
}

// Max returns the cell with the greatest distance from the root.
// Ties go to the cell with the lowest row-major index. A map containing only
// the root returns (root, 0).
func (d *Distances) Max() (*Cell, int) {
	farthest, best := d.root, 0
	for idx, distance := range d.dist {
		if distance > best {
			farthest, best = d.grid.at(idx), distance
		}
	}
	return farthest, best
}

// Next returns the cell one step closer to the root: a cell at distance-1 with
// a link into cell. The root returns itself. Among several candidates the
// first in row-major order wins.
//
// Cells that cell links back to are checked first. When links are one-way the
// predecessor may not appear among cell's own links, so the remaining cells at
// distance-1 are scanned.
func (d *Distances) Next(cell *Cell) (*Cell, error) {
	distance, ok := d.At(cell)
	if !ok {
		return nil, notReachable(cell)
	}
	if distance == 0 {
		return cell, nil
	}
	for _, linked := range cell.Links() {
		if nd, ok := d.At(linked); ok && nd == distance-1 && linked.Linked(cell) {
			return linked, nil
		}
	}
	for idx, nd := range d.dist {
		if nd != distance-1 {
			continue
		}
		if prev := d.grid.at(idx); prev.Linked(cell) {
			return prev, nil
		}
	}
	// Only possible when links were removed after the map was built.
	return nil, fmt.Errorf("%w: no step toward root from (%d,%d)", ErrNotReachable, cell.Row, cell.Col)
}

// PathTo reconstructs a shortest path from the root to goal, both inclusive.
// Returns an error wrapping ErrNotReachable, and no partial path, when goal
// has no recorded distance.
func (d *Distances) PathTo(goal *Cell) ([]*Cell, error) {
	distance, ok := d.At(goal)
	if !ok {
		return nil, notReachable(goal)
	}

	path := make([]*Cell, distance+1)
	path[distance] = goal
	current := goal
	for i := distance - 1; i >= 0; i-- {
		next, err := d.Next(current)
		if err != nil {
			return nil, err
		}
		path[i] = next
		current = next
	}
	return path, nil
}

func notReachable(cell *Cell) error {
	if cell == nil {
		return fmt.Errorf("%w: nil cell", ErrNotReachable)
	}
	return fmt.Errorf("%w: (%d,%d)", ErrNotReachable, cell.Row, cell.Col)
}
