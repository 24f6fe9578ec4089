// Package level turns a maze into a playable level: it runs a seeded
// generation pass, places the start and the stairs at the ends of the longest
// path, and scores how hard the layout is to explore.
package level

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/mazeband/internal/generate"
	"github.com/samdwyer/mazeband/internal/maze"
	"github.com/samdwyer/mazeband/internal/telemetry"
)

const (
	// TileStart marks the spawn cell.
	TileStart = '<'
	// TileStairs marks the exit, placed at the point of maximal exploration.
	TileStairs = '>'
)

// ErrInvalidBraid indicates a braid probability outside [0, 1].
var ErrInvalidBraid = errors.New("level: braid must be between 0 and 1")

// Config holds level generation options.
type Config struct {
	Rows      int
	Columns   int
	Algorithm string
	// Seed for random number generation. A seed of 0 means a time-based seed
	// will be generated.
	Seed int64
	// Braid is the probability of removing each dead end after generation.
	Braid float64
	// RoomSize is passed to recursive division.
	RoomSize int
}

// Stats summarizes a generated layout.
type Stats struct {
	Cells        int
	Links        int
	DeadEnds     int
	Diameter     int     // length of the longest path
	MeanDistance float64 // average distance from the start to every cell
	// Score is (Diameter + DeadEnds) / Cells: long routes and many dead ends
	// both make a layout slower to explore.
	Score float64
}

// Level is a generated maze with objectives placed on it.
type Level struct {
	ID        uuid.UUID
	Config    Config // as requested, with Seed resolved
	Grid      *maze.Grid
	Start     *maze.Cell
	Stairs    *maze.Cell
	Solution  []*maze.Cell // Start to Stairs inclusive
	Stats     Stats
	algorithm generate.Algorithm
}

// Build generates a level from cfg.
func Build(ctx context.Context, cfg Config) (*Level, error) {
	tracer := telemetry.Tracer("level")
	ctx, span := tracer.Start(ctx, "level.build")
	defer span.End()

	lvl, err := build(ctx, cfg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.String("level.id", lvl.ID.String()),
		attribute.Int64("level.seed", lvl.Config.Seed),
		attribute.String("level.algorithm", lvl.algorithm.Name()),
		attribute.Int("level.diameter", lvl.Stats.Diameter),
		attribute.Int("level.dead_ends", lvl.Stats.DeadEnds),
		attribute.Float64("level.score", lvl.Stats.Score),
	)
	return lvl, nil
}

func build(ctx context.Context, cfg Config) (*Level, error) {
	if cfg.Braid < 0 || cfg.Braid > 1 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidBraid, cfg.Braid)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	grid, err := maze.NewGrid(cfg.Rows, cfg.Columns)
	if err != nil {
		return nil, err
	}
	alg, err := generate.New(cfg.Algorithm, generate.Options{RoomSize: cfg.RoomSize})
	if err != nil {
		return nil, err
	}
	if err := generate.Run(ctx, alg, grid, rng); err != nil {
		return nil, err
	}
	if cfg.Braid > 0 {
		grid.Braid(rng, cfg.Braid)
	}

	// Any cell works as the origin of the diameter search; a random one keeps
	// the placement independent of grid orientation.
	longest, err := maze.LongestPath(grid, grid.RandomCell(rng))
	if err != nil {
		return nil, err
	}

	lvl := &Level{
		ID:        uuid.New(),
		Config:    cfg,
		Grid:      grid,
		Start:     longest.From,
		Stairs:    longest.To,
		Solution:  longest.Path,
		algorithm: alg,
	}
	lvl.Start.Tile = TileStart
	lvl.Stairs.Tile = TileStairs
	lvl.Stats = lvl.measure(longest.Length)

	return lvl, nil
}

// measure computes layout statistics.
func (l *Level) measure(diameter int) Stats {
	s := Stats{
		Cells:    l.Grid.Size(),
		Links:    l.Grid.LinkCount(),
		DeadEnds: len(l.Grid.DeadEnds()),
		Diameter: diameter,
	}

	total := 0
	d := l.Start.Distances()
	d.Each(func(_ *maze.Cell, distance int) {
		total += distance
	})
	s.MeanDistance = float64(total) / float64(d.Len())
	s.Score = float64(s.Diameter+s.DeadEnds) / float64(s.Cells)
	return s
}

// Algorithm returns the name of the algorithm the level was carved with.
func (l *Level) Algorithm() string {
	return l.algorithm.Name()
}

// Next builds the following level with the same settings and the next seed.
func (l *Level) Next(ctx context.Context) (*Level, error) {
	cfg := l.Config
	cfg.Seed++
	return Build(ctx, cfg)
}

// Chase returns the cell a pursuer standing on from should move to next in
// order to close in on target along a shortest path. A pursuer already on
// the target stays put.
func (l *Level) Chase(from, target *maze.Cell) (*maze.Cell, error) {
	return target.Distances().Next(from)
}

// DistancesFromStart builds a distance map rooted at the start cell.
func (l *Level) DistancesFromStart() *maze.Distances {
	return l.Start.Distances()
}
