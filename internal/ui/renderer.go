package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/mazeband/internal/entity"
	"github.com/samdwyer/mazeband/internal/level"
	"github.com/samdwyer/mazeband/internal/maze"
	"github.com/samdwyer/mazeband/internal/preset"
)

const (
	glyphWall = '#'
	glyphPath = '.'
)

// View is everything the renderer needs for one frame.
type View struct {
	Level     *level.Level
	Player    *entity.Actor
	Chaser    *entity.Actor // nil until the pursuer spawns
	Path      []*maze.Cell  // highlighted route, nil to hide
	Distances *maze.Distances
	Message   string
}

// Renderer handles drawing the maze to the screen.
type Renderer struct {
	screen  *Screen
	palette preset.Palette
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, palette preset.Palette) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// CellOrigin returns the screen position of a cell's body. Cells sit on odd
// coordinates; walls and wall corners fill the even ones between them.
func CellOrigin(c *maze.Cell) (x, y int) {
	return c.Col*2 + 1, c.Row*2 + 1
}

// Render draws one frame.
func (r *Renderer) Render(v View) {
	r.screen.Clear()

	grid := v.Level.Grid
	width, height := grid.Columns*2+1, grid.Rows*2+3
	if !r.screen.Fits(width, height) {
		r.RenderMessage(fmt.Sprintf("Terminal too small: need %dx%d", width, height), 0)
		r.screen.Show()
		return
	}
	wallStyle := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)

	// Outer frame and wall corners
	for y := 0; y <= grid.Rows*2; y++ {
		for x := 0; x <= grid.Columns*2; x++ {
			if x == 0 || y == 0 || x == grid.Columns*2 || y == grid.Rows*2 || (x%2 == 0 && y%2 == 0) {
				r.screen.SetContent(x, y, glyphWall, wallStyle)
			}
		}
	}

	onPath := make(map[*maze.Cell]bool, len(v.Path))
	for _, c := range v.Path {
		onPath[c] = true
	}

	var maxDistance int
	if v.Distances != nil {
		_, maxDistance = v.Distances.Max()
	}

	grid.Each(func(c *maze.Cell) {
		x, y := CellOrigin(c)
		style := r.cellStyle(c, v.Distances, maxDistance)

		glyph := ' '
		if c.Tile != 0 {
			glyph = c.Tile
		} else if onPath[c] {
			glyph = glyphPath
		}
		r.screen.SetContent(x, y, glyph, style)

		if c.East() != nil {
			if c.LinkedTo(maze.East) {
				r.screen.SetContent(x+1, y, passageGlyph(onPath, c, c.East()), style)
			} else {
				r.screen.SetContent(x+1, y, glyphWall, wallStyle)
			}
		}
		if c.South() != nil {
			if c.LinkedTo(maze.South) {
				r.screen.SetContent(x, y+1, passageGlyph(onPath, c, c.South()), style)
			} else {
				r.screen.SetContent(x, y+1, glyphWall, wallStyle)
			}
		}
	})

	r.drawActor(v.Player, tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))
	r.drawActor(v.Chaser, tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true))

	status := fmt.Sprintf("%s  seed %d  diameter %d  dead ends %d  score %.2f",
		v.Level.Algorithm(), v.Level.Config.Seed, v.Level.Stats.Diameter, v.Level.Stats.DeadEnds, v.Level.Stats.Score)
	r.RenderMessage(status, grid.Rows*2+1)
	r.RenderMessage(v.Message, grid.Rows*2+2)

	r.screen.Show()
}

// cellStyle shades a cell body by its distance when a heatmap is shown.
func (r *Renderer) cellStyle(c *maze.Cell, d *maze.Distances, maxDistance int) tcell.Style {
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	if d == nil {
		return style
	}
	if distance, ok := d.At(c); ok {
		style = style.Background(r.palette.At(distance, maxDistance))
	}
	return style
}

func (r *Renderer) drawActor(a *entity.Actor, style tcell.Style) {
	if a == nil {
		return
	}
	x, y := CellOrigin(a.Cell)
	r.screen.SetContent(x, y, a.Symbol, style)
}

// passageGlyph marks the gap between two cells that are consecutive on the path.
func passageGlyph(onPath map[*maze.Cell]bool, a, b *maze.Cell) rune {
	if onPath[a] && onPath[b] {
		return glyphPath
	}
	return ' '
}

// RenderMessage displays a message on the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	r.screen.DrawString(0, y, msg, tcell.StyleDefault.Foreground(tcell.ColorWhite))
}
