package maze

import "fmt"

// Longest is the result of a two-pass diameter search.
type Longest struct {
	From   *Cell   // first endpoint, farthest from the start cell
	To     *Cell   // second endpoint, farthest from From
	Length int     // steps between From and To
	Path   []*Cell // From to To inclusive
}

// LongestPath approximates the diameter of the grid's link graph.
//
// The first pass finds the cell farthest from start; the second pass finds the
// cell farthest from that one. On a spanning tree the two endpoints are
// guaranteed to span a longest path. A single-cell grid returns start as both
// endpoints with length 0.
//
// Returns an error wrapping ErrNotReachable if start does not belong to grid.
func LongestPath(grid *Grid, start *Cell) (Longest, error) {
	if grid == nil || start == nil || start.grid != grid {
		return Longest{}, fmt.Errorf("%w: start cell is not part of the grid", ErrNotReachable)
	}

	from, _ := start.Distances().Max()

	fromDistances := from.Distances()
	to, length := fromDistances.Max()

	path, err := fromDistances.PathTo(to)
	if err != nil {
		return Longest{}, err
	}

	return Longest{
		From:   from,
		To:     to,
		Length: length,
		Path:   path,
	}, nil
}
