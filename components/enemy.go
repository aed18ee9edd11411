package components

import (
	"github.com/yohamta/donburi"
)

// EnemyData drives a patrol between OriginX and OriginX+Range.
type EnemyData struct {
	OriginX   float64
	Range     float64
	Speed     float64
	Direction float64 // +1 or -1
}

var Enemy = donburi.NewComponentType[EnemyData]()
