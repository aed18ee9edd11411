package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// SpaceData wraps the resolv space used as a collision broad phase. The space only covers
// a window of the world, so proxies are stored relative to (OriginX, OriginY).
type SpaceData struct {
	Space   *resolv.Space
	OriginX float64
	OriginY float64
}

var Space = donburi.NewComponentType[SpaceData]()
