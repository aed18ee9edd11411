package components

import (
	"github.com/automoto/infinite-plumber/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is an entity's bounds in world coordinates. Proxy mirrors the bounds inside
// the broad-phase space and is nil until the entity is registered there.
type ObjectData struct {
	gamemath.Rect
	Proxy *resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()
