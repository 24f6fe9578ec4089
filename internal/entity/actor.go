// Package entity provides the actors that walk a maze: the player and its pursuer.
package entity

import "github.com/samdwyer/mazeband/internal/maze"

const (
	// SymbolPlayer is the player's display symbol.
	SymbolPlayer = '@'
	// SymbolChaser is the pursuer's display symbol.
	SymbolChaser = 'M'
)

// Actor is anything that occupies a maze cell.
type Actor struct {
	Name   string
	Cell   *maze.Cell // Current position
	Symbol rune       // Display symbol
}

// NewPlayer creates the player at the given cell.
func NewPlayer(cell *maze.Cell) *Actor {
	return &Actor{Name: "player", Cell: cell, Symbol: SymbolPlayer}
}

// NewChaser creates a pursuer at the given cell.
func NewChaser(cell *maze.Cell) *Actor {
	return &Actor{Name: "chaser", Cell: cell, Symbol: SymbolChaser}
}

// Move steps through the passage in dir. It returns false, leaving the actor
// in place, when the boundary is a wall.
func (a *Actor) Move(dir maze.Direction) bool {
	if !a.Cell.LinkedTo(dir) {
		return false
	}
	a.Cell = a.Cell.Neighbor(dir)
	return true
}

// MoveTo places the actor on cell.
func (a *Actor) MoveTo(cell *maze.Cell) {
	a.Cell = cell
}

// Position returns the current row and column.
func (a *Actor) Position() (row, col int) {
	return a.Cell.Row, a.Cell.Col
}

// At reports whether the actor occupies cell.
func (a *Actor) At(cell *maze.Cell) bool {
	return a.Cell == cell
}
