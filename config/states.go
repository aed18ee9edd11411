package config

// GameStateID is the session state. A run only leaves StatePlaying through StateGameOver.
type GameStateID int

const (
	StateStart GameStateID = iota // Title screen, waiting for confirm
	StatePlaying
	StateGameOver
)

func (s GameStateID) String() string {
	switch s {
	case StateStart:
		return "START"
	case StatePlaying:
		return "PLAYING"
	case StateGameOver:
		return "GAME_OVER"
	default:
		return "UNKNOWN"
	}
}
