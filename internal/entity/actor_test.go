package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/mazeband/internal/maze"
)

func TestMoveFollowsLinks(t *testing.T) {
	g, err := maze.NewGrid(2, 2)
	require.NoError(t, err)
	g.Cell(0, 0).Link(g.Cell(0, 1))

	p := NewPlayer(g.Cell(0, 0))
	assert.Equal(t, rune(SymbolPlayer), p.Symbol)

	assert.False(t, p.Move(maze.South), "wall blocks the move")
	assert.False(t, p.Move(maze.North), "grid edge blocks the move")
	assert.True(t, p.At(g.Cell(0, 0)))

	assert.True(t, p.Move(maze.East))
	row, col := p.Position()
	assert.Equal(t, 0, row)
	assert.Equal(t, 1, col)

	p.MoveTo(g.Cell(1, 1))
	assert.True(t, p.At(g.Cell(1, 1)))
}

func TestNewChaser(t *testing.T) {
	g, err := maze.NewGrid(1, 1)
	require.NoError(t, err)

	c := NewChaser(g.Cell(0, 0))
	assert.Equal(t, rune(SymbolChaser), c.Symbol)
	assert.Equal(t, "chaser", c.Name)
}
