package game

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mazeband/internal/entity"
	"github.com/samdwyer/mazeband/internal/telemetry"
)

// advanceChaser spawns the pursuer once the player has used up the head
// start, then moves it one step along a shortest path toward the player.
func (g *Game) advanceChaser(ctx context.Context) {
	if g.cfg.ChaseDelay <= 0 {
		return
	}

	if g.chaser == nil {
		if g.moves < g.cfg.ChaseDelay {
			return
		}
		g.spawnChaser(ctx)
	} else {
		next, err := g.level.Chase(g.chaser.Cell, g.player.Cell)
		if err != nil {
			// Only a disconnected layout gets here; the pursuer waits.
			return
		}
		g.chaser.MoveTo(next)
	}

	if g.chaser.At(g.player.Cell) {
		g.caught(ctx)
	}
}

func (g *Game) spawnChaser(ctx context.Context) {
	tracer := telemetry.Tracer("pursuit")
	_, span := tracer.Start(ctx, "pursuit.spawn")
	defer span.End()

	g.chaser = entity.NewChaser(g.level.Start)
	g.message = "Something stirs at the entrance..."

	distance, _ := g.level.DistancesFromStart().At(g.player.Cell)
	span.SetAttributes(
		attribute.Int("pursuit.moves", g.moves),
		attribute.Int("pursuit.lead", distance),
	)
}

func (g *Game) caught(ctx context.Context) {
	tracer := telemetry.Tracer("pursuit")
	_, span := tracer.Start(ctx, "pursuit.caught")
	span.SetAttributes(
		attribute.Int("pursuit.moves", g.moves),
		attribute.Int("game.depth", g.depth),
	)
	span.End()

	g.state = StateCaught
	g.message = "Caught! Press any key to restart the level."
}
