// Package game provides the main game loop and state management.
package game

// State represents the current game state.
type State int

const (
	// StateExplore is the default mode: the player walks the maze toward the stairs.
	StateExplore State = iota
	// StateCaught means the pursuer reached the player. Any key restarts the level.
	StateCaught
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExplore:
		return "explore"
	case StateCaught:
		return "caught"
	default:
		return "unknown"
	}
}
