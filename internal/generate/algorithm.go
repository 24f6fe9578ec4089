// Package generate carves passages into a maze.Grid. Each algorithm is a
// stateless value; randomness is always supplied by the caller so a seed
// reproduces the same layout.
package generate

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/mazeband/internal/maze"
	"github.com/samdwyer/mazeband/internal/telemetry"
)

// ErrUnknownAlgorithm indicates no algorithm is registered under the requested name.
var ErrUnknownAlgorithm = errors.New("generate: unknown algorithm")

// Algorithm mutates an unlinked grid in place until every cell is reachable.
type Algorithm interface {
	Name() string
	Generate(grid *maze.Grid, rng *rand.Rand)
}

// Algorithm names accepted by ByName.
const (
	NameBinaryTree           = "binary_tree"
	NameRecursiveBacktracker = "recursive_backtracker"
	NameRecursiveDivision    = "recursive_division"
	NameAldousBroder         = "aldous_broder"
)

// Names returns every registered algorithm name.
func Names() []string {
	return []string{
		NameBinaryTree,
		NameRecursiveBacktracker,
		NameRecursiveDivision,
		NameAldousBroder,
	}
}

// Options tunes algorithms that have parameters. The zero value selects
// every algorithm's spanning-tree behavior.
type Options struct {
	// RoomSize is passed to RecursiveDivision.
	RoomSize int
}

// ByName returns the algorithm registered under name with default options.
func ByName(name string) (Algorithm, error) {
	return New(name, Options{})
}

// New returns the algorithm registered under name, configured with opts.
// Matching ignores case and treats '-' and ' ' as '_'.
func New(name string, opts Options) (Algorithm, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.NewReplacer("-", "_", " ", "_").Replace(normalized)

	switch normalized {
	case NameBinaryTree:
		return BinaryTree{}, nil
	case NameRecursiveBacktracker, "backtracker":
		return RecursiveBacktracker{}, nil
	case NameRecursiveDivision, "division":
		return RecursiveDivision{RoomSize: opts.RoomSize}, nil
	case NameAldousBroder:
		return AldousBroder{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// Run clears any existing links, performs one traced generation pass and then
// validates that the result is fully connected. Clearing first lets a grid be
// regenerated in place. A disconnected grid is reported as an error wrapping
// maze.ErrDisconnected rather than silently accepted.
func Run(ctx context.Context, alg Algorithm, grid *maze.Grid, rng *rand.Rand) error {
	tracer := telemetry.Tracer("generate")
	_, span := tracer.Start(ctx, "maze.generate")
	defer span.End()

	startTime := time.Now()

	grid.Reset()
	alg.Generate(grid, rng)

	// Record telemetry
	span.SetAttributes(
		attribute.String("maze.algorithm", alg.Name()),
		attribute.Int("maze.rows", grid.Rows),
		attribute.Int("maze.columns", grid.Columns),
		attribute.Int("maze.links", grid.LinkCount()),
		attribute.Int("maze.dead_ends", len(grid.DeadEnds())),
		attribute.Int64("maze.generation_ms", time.Since(startTime).Milliseconds()),
	)

	if err := grid.Validate(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("%s: %w", alg.Name(), err)
	}
	return nil
}
