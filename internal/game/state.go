// Package game drives a loaded world: it owns the current room, routes
// hero moves to it and follows doors between rooms.
package game

// State represents the current game state.
type State int

const (
	// StateExplore is the normal mode: the hero walks the rooms.
	StateExplore State = iota
	// StateOver means the hero has died and no further moves are taken.
	StateOver
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExplore:
		return "explore"
	case StateOver:
		return "over"
	default:
		return "unknown"
	}
}
