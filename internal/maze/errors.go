package maze

import "errors"

var (
	// ErrInvalidDimensions indicates a grid was requested with fewer than one row or column.
	ErrInvalidDimensions = errors.New("maze: rows and columns must be positive")
	// ErrNotReachable indicates a cell has no recorded distance from the root.
	ErrNotReachable = errors.New("maze: cell not reachable from root")
	// ErrDisconnected indicates the link graph does not touch every cell.
	ErrDisconnected = errors.New("maze: link graph is not connected")
)
