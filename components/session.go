package components

import (
	cfg "github.com/automoto/infinite-plumber/config"
	"github.com/automoto/infinite-plumber/shared/gamemath"
	"github.com/yohamta/donburi"
)

// SessionData is the state of the current run. There is exactly one session per world.
type SessionData struct {
	State     cfg.GameStateID
	Score     int
	HighScore int

	CameraX        float64 // never decreases within a run
	LastGeneratedX float64 // right edge of the furthest platform

	// Most recently generated platform, used to bound the next height change
	LastPlatform    gamemath.Rect
	HasLastPlatform bool

	Ticks int // simulation ticks since the run started
	Runs  int // completed resets, used only for logging
}

var Session = donburi.NewComponentType[SessionData]()
