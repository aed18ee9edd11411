package systems

import (
	"github.com/automoto/infinite-plumber/components"
	cfg "github.com/automoto/infinite-plumber/config"
	"github.com/automoto/infinite-plumber/shared/gamemath"
	"github.com/automoto/infinite-plumber/systems/factory"
	"github.com/automoto/infinite-plumber/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCoins bobs every coin around its base height. The offset only depends on the
// clock, so all coins move in step and x never changes.
func UpdateCoins(ecs *ecs.ECS) {
	sd := getOrCreateSpace(ecs)
	elapsedMs := float64(getOrCreateRuntime(ecs).Clock.Elapsed().Milliseconds())
	offset := gamemath.BobOffset(elapsedMs, cfg.Coin.BobPeriodMs, cfg.Coin.BobAmplitude, 0)

	tags.Coin.Each(ecs.World, func(e *donburi.Entry) {
		coin := components.Coin.Get(e)
		obj := components.Object.Get(e)

		coin.FloatOffset = offset
		obj.Y = coin.BaseY + offset
		factory.SyncProxy(sd, obj)
	})
}
