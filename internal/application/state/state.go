// Package state holds the round lifecycle shared by the simulation and
// the scenes.
package state

// GameState is where a round is in its lifecycle
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateGameOver // a ball touched the player
	StateCleared  // every ball popped
)

var names = [...]string{
	StatePlaying:  "Playing",
	StatePaused:   "Paused",
	StateGameOver: "GameOver",
	StateCleared:  "Cleared",
}

func (s GameState) String() string {
	if s < 0 || int(s) >= len(names) {
		return "Unknown"
	}
	return names[s]
}

// Finished reports whether the round has ended
func (s GameState) Finished() bool {
	return s == StateGameOver || s == StateCleared
}
