package factory

import (
	"github.com/automoto/infinite-plumber/archetypes"
	"github.com/automoto/infinite-plumber/components"
	cfg "github.com/automoto/infinite-plumber/config"
	"github.com/automoto/infinite-plumber/shared/gamemath"
	"github.com/automoto/infinite-plumber/shared/leveldata"
	"github.com/automoto/infinite-plumber/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns a patrolling enemy that starts at the left end of its patrol, walking right.
func CreateEnemy(ecs *ecs.ECS, sd *components.SpaceData, spec leveldata.EnemySpec) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	components.Object.SetValue(enemy, components.ObjectData{
		Rect: gamemath.NewRect(spec.X, spec.Y, cfg.Enemy.Width, cfg.Enemy.Height),
	})
	components.Enemy.SetValue(enemy, components.EnemyData{
		OriginX:   spec.X,
		Range:     spec.Range,
		Speed:     cfg.Enemy.Speed,
		Direction: cfg.DirectionRight,
	})
	AttachProxy(sd, enemy, tags.ResolvEnemy)

	return enemy
}
