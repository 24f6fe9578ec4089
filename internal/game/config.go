package game

import (
	"github.com/samdwyer/mazeband/internal/level"
	"github.com/samdwyer/mazeband/internal/preset"
)

// DefaultChaseDelay is how many moves the player gets before the pursuer
// enters at the start of the level.
const DefaultChaseDelay = 8

// Config holds game configuration options.
type Config struct {
	// Level is the generation config for the first level. Each descent reuses
	// it with the next seed.
	Level level.Config
	// Palette shades the distance heatmap.
	Palette preset.Palette
	// ChaseDelay is the number of player moves before the pursuer spawns.
	// Zero disables the pursuer.
	ChaseDelay int
}
