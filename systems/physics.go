package systems

import (
	"github.com/automoto/infinite-plumber/components"
	cfg "github.com/automoto/infinite-plumber/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics applies gravity. It runs every tick, grounded or not: a resting body
// sinks into its platform and the vertical pass pushes it back out, which is how
// standing still keeps reporting OnGround.
func UpdatePhysics(ecs *ecs.ECS) {
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		physics.SpeedY += cfg.Physics.Gravity
	})
}
