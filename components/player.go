package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Facing float64 // cfg.DirectionLeft or cfg.DirectionRight, only used for drawing
}

var Player = donburi.NewComponentType[PlayerData]()
