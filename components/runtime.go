package components

import (
	"github.com/automoto/infinite-plumber/clock"
	"github.com/automoto/infinite-plumber/shared/leveldata"
	"github.com/yohamta/donburi"
)

// HighScoreStore loads and saves the best score across runs.
type HighScoreStore interface {
	// Load returns the stored high score, or 0 when nothing valid is stored.
	Load() int
	Save(score int) error
}

// RuntimeData holds the collaborators a world needs but does not own: the time source,
// the level generator and the high score store.
type RuntimeData struct {
	ScreenW, ScreenH float64

	Clock     clock.Clock
	Generator *leveldata.Generator
	Store     HighScoreStore
	Opening   *leveldata.Opening
}

var Runtime = donburi.NewComponentType[RuntimeData]()
