package systems

import (
	"github.com/automoto/infinite-plumber/components"
	"github.com/automoto/infinite-plumber/systems/factory"
	"github.com/automoto/infinite-plumber/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies walks every enemy along its patrol. The direction flips on the tick the
// enemy steps outside [OriginX, OriginX+Range], so it overshoots by at most one step.
func UpdateEnemies(ecs *ecs.ECS) {
	sd := getOrCreateSpace(ecs)
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		obj := components.Object.Get(e)

		obj.X += enemy.Speed * enemy.Direction
		if obj.X > enemy.OriginX+enemy.Range || obj.X < enemy.OriginX {
			enemy.Direction = -enemy.Direction
		}
		factory.SyncProxy(sd, obj)
	})
}
