package factory

import (
	"github.com/automoto/infinite-plumber/archetypes"
	"github.com/automoto/infinite-plumber/components"
	cfg "github.com/automoto/infinite-plumber/config"
	"github.com/automoto/infinite-plumber/shared/gamemath"
	"github.com/automoto/infinite-plumber/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, sd *components.SpaceData, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Object.SetValue(player, components.ObjectData{
		Rect: gamemath.NewRect(x, y, cfg.Player.Width, cfg.Player.Height),
	})
	components.Player.SetValue(player, components.PlayerData{
		Facing: cfg.DirectionRight,
	})
	components.Physics.SetValue(player, components.PhysicsData{})
	AttachProxy(sd, player, tags.ResolvPlayer)

	return player
}
