package state

// GameState represents the active scene of the game
type GameState int

const (
	StateTitle GameState = iota
	StateReady
	StatePlaying
	StateGameOver
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateTitle:
		return "Title"
	case StateReady:
		return "Ready"
	case StatePlaying:
		return "Playing"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// CanTransition reports whether the scene graph allows moving from s to next.
// Title may skip the countdown and go straight to Playing.
func (s GameState) CanTransition(next GameState) bool {
	switch s {
	case StateTitle:
		return next == StateReady || next == StatePlaying
	case StateReady:
		return next == StatePlaying
	case StatePlaying:
		return next == StateGameOver
	case StateGameOver:
		return next == StatePlaying
	default:
		return false
	}
}
