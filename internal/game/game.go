package game

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mazeband/internal/entity"
	"github.com/samdwyer/mazeband/internal/level"
	"github.com/samdwyer/mazeband/internal/maze"
	"github.com/samdwyer/mazeband/internal/telemetry"
	"github.com/samdwyer/mazeband/internal/ui"
)

var keyDirections = map[tcell.Key]maze.Direction{
	tcell.KeyUp:    maze.North,
	tcell.KeyDown:  maze.South,
	tcell.KeyLeft:  maze.West,
	tcell.KeyRight: maze.East,
}

// Game holds the entire game state.
type Game struct {
	screen      *ui.Screen
	renderer    *ui.Renderer
	cfg         Config
	level       *level.Level
	player      *entity.Actor
	chaser      *entity.Actor
	state       State
	showPath    bool
	showHeatmap bool
	moves       int // player moves on the current level
	depth       int // levels descended
	message     string
	running     bool
}

// New creates a new game instance drawing to screen.
func New(screen *ui.Screen, cfg Config) *Game {
	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, cfg.Palette),
		cfg:      cfg,
		state:    StateExplore,
		running:  true,
	}
}

// Start builds the first level and places the player on it.
func (g *Game) Start(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	lvl, err := level.Build(ctx, g.cfg.Level)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("build level: %w", err)
	}
	g.enter(lvl)

	span.SetAttributes(
		attribute.String("level.id", lvl.ID.String()),
		attribute.Int("player.start_row", lvl.Start.Row),
		attribute.Int("player.start_col", lvl.Start.Col),
		attribute.Int("game.chase_delay", g.cfg.ChaseDelay),
	)
	return nil
}

// Run executes the main game loop until the player quits.
func (g *Game) Run(ctx context.Context) error {
	if g.level == nil {
		if err := g.Start(ctx); err != nil {
			g.screen.Close()
			return err
		}
	}

	// Main game loop
	for g.running {
		g.renderer.Render(g.view())

		// Handle input (blocking)
		g.handleInput(ctx)
	}

	g.screen.Close()
	return nil
}

// enter makes lvl the current level and resets everything tied to it.
func (g *Game) enter(lvl *level.Level) {
	g.level = lvl
	g.restart()
	g.message = fmt.Sprintf("Depth %d. Find the stairs (>).", g.depth+1)
}

// restart puts the player back on the start cell and removes the pursuer.
func (g *Game) restart() {
	g.player = entity.NewPlayer(g.level.Start)
	g.chaser = nil
	g.moves = 0
	g.state = StateExplore
	g.message = ""
}

// view assembles what the renderer draws this frame.
func (g *Game) view() ui.View {
	v := ui.View{
		Level:   g.level,
		Player:  g.player,
		Chaser:  g.chaser,
		Message: g.message,
	}
	if g.showPath {
		if path, err := g.player.Cell.Distances().PathTo(g.level.Stairs); err == nil {
			v.Path = path
		}
	}
	if g.showHeatmap {
		v.Distances = g.player.Cell.Distances()
	}
	return v
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	case nil:
		// The screen was finalized.
		g.running = false
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false
		return
	}
	if ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q') {
		g.running = false
		return
	}

	if g.state == StateCaught {
		g.restart()
		g.message = "Try again."
		return
	}

	if dir, ok := keyDirections[ev.Key()]; ok {
		g.tryMove(ctx, dir)
		return
	}

	if ev.Key() == tcell.KeyRune {
		switch ev.Rune() {
		case 'p', 'P':
			g.showPath = !g.showPath
		case 'd', 'D':
			g.showHeatmap = !g.showHeatmap
		case 'r', 'R':
			g.regenerate(ctx)
		}
	}
}

// tryMove attempts to move the player through the passage in dir.
func (g *Game) tryMove(ctx context.Context, dir maze.Direction) {
	if !g.player.Move(dir) {
		g.message = "A wall blocks the way."
		return
	}
	g.moves++
	g.message = ""

	if g.player.At(g.level.Stairs) {
		g.descend(ctx)
		return
	}
	if g.chaser != nil && g.chaser.At(g.player.Cell) {
		g.caught(ctx)
		return
	}
	g.advanceChaser(ctx)
}

// descend builds the next level.
func (g *Game) descend(ctx context.Context) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.descend")
	defer span.End()

	next, err := g.level.Next(ctx)
	if err != nil {
		span.RecordError(err)
		g.message = fmt.Sprintf("The stairs are blocked: %v", err)
		return
	}

	span.SetAttributes(
		attribute.Int("game.depth", g.depth+1),
		attribute.Int("game.moves", g.moves),
		attribute.Int("level.diameter", g.level.Stats.Diameter),
	)
	g.depth++
	g.enter(next)
}

// regenerate replaces the current level with a fresh one at the same depth.
func (g *Game) regenerate(ctx context.Context) {
	cfg := g.level.Config
	cfg.Seed = 0
	lvl, err := level.Build(ctx, cfg)
	if err != nil {
		g.message = fmt.Sprintf("Regeneration failed: %v", err)
		return
	}
	g.enter(lvl)
}
