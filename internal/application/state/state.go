package state

// GameState represents the current state of the playing scene
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateDead       // player died, waiting to respawn
	StateLevelClear // top boundary crossed, next level pending
	StateComplete   // last level cleared
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateDead:
		return "Dead"
	case StateLevelClear:
		return "LevelClear"
	case StateComplete:
		return "Complete"
	default:
		return "Unknown"
	}
}

// Running reports whether the world is simulated in this state
func (s GameState) Running() bool {
	return s == StatePlaying
}
