package factory

import (
	"github.com/automoto/infinite-plumber/archetypes"
	"github.com/automoto/infinite-plumber/components"
	"github.com/automoto/infinite-plumber/shared/gamemath"
	"github.com/automoto/infinite-plumber/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlatform(ecs *ecs.ECS, sd *components.SpaceData, r gamemath.Rect) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)
	components.Object.SetValue(platform, components.ObjectData{Rect: r})
	AttachProxy(sd, platform, tags.ResolvSolid)

	return platform
}
