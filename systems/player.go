package systems

import (
	"github.com/automoto/infinite-plumber/components"
	cfg "github.com/automoto/infinite-plumber/config"
	"github.com/automoto/infinite-plumber/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer turns the input snapshot into player velocity. Horizontal speed is
// replaced every tick; a jump is only accepted while grounded and is never queued.
func UpdatePlayer(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	components.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		player := components.Player.Get(playerEntry)
		physics := components.Physics.Get(playerEntry)

		left := GetAction(input, cfg.ActionMoveLeft).Pressed
		right := GetAction(input, cfg.ActionMoveRight).Pressed
		physics.SpeedX = gamemath.HorizontalVelocity(left, right, cfg.Player.Speed)

		if physics.SpeedX < 0 {
			player.Facing = cfg.DirectionLeft
		} else if physics.SpeedX > 0 {
			player.Facing = cfg.DirectionRight
		}

		if GetAction(input, cfg.ActionJump).JustPressed && physics.OnGround {
			physics.SpeedY = cfg.Player.JumpForce
		}
	})
}
