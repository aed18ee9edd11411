package systems

import (
	"github.com/automoto/infinite-plumber/components"
	"github.com/automoto/infinite-plumber/systems/factory"
	"github.com/automoto/infinite-plumber/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions moves every physics body one axis at a time: horizontal move and
// resolve first, then vertical move and resolve.
func UpdateCollisions(ecs *ecs.ECS) {
	sd := getOrCreateSpace(ecs)
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		resolveHorizontal(sd, physics, obj)
		resolveVertical(sd, physics, obj)
	})
}

// resolveHorizontal clamps the body against every platform it overlaps after moving.
// With several overlaps the last one in (x, id) order wins.
func resolveHorizontal(sd *components.SpaceData, physics *components.PhysicsData, obj *components.ObjectData) {
	dx := physics.SpeedX
	obj.X += dx

	for _, hit := range overlapping(sd, obj, tags.ResolvSolid) {
		platform := components.Object.Get(hit)
		switch {
		case dx > 0:
			obj.X = platform.X - obj.W
		case dx < 0:
			obj.X = platform.Right()
		}
	}
	factory.SyncProxy(sd, obj)
}

// resolveVertical lands the body on platforms below it and stops it under platforms
// above it. OnGround is cleared first and only set by an actual landing.
func resolveVertical(sd *components.SpaceData, physics *components.PhysicsData, obj *components.ObjectData) {
	physics.OnGround = false
	dy := physics.SpeedY
	obj.Y += dy

	for _, hit := range overlapping(sd, obj, tags.ResolvSolid) {
		platform := components.Object.Get(hit)
		switch {
		case dy > 0:
			obj.Y = platform.Y - obj.H
			physics.SpeedY = 0
			physics.OnGround = true
		case dy < 0:
			obj.Y = platform.Bottom()
			physics.SpeedY = 0
		}
	}
	factory.SyncProxy(sd, obj)
}
