package systems

import (
	"github.com/automoto/infinite-plumber/components"
	cfg "github.com/automoto/infinite-plumber/config"
	"github.com/automoto/infinite-plumber/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var scrolledEntities = donburi.NewQuery(filter.And(
	filter.Contains(components.Object),
	filter.Not(filter.Contains(components.Player)),
))

// UpdateCleanup removes platforms, enemies and coins whose right edge is more than
// CleanupMargin behind the camera.
func UpdateCleanup(ecs *ecs.ECS) {
	session := GetOrCreateSession(ecs)
	sd := getOrCreateSpace(ecs)
	limit := session.CameraX - cfg.Camera.CleanupMargin

	var doomed []*donburi.Entry
	scrolledEntities.Each(ecs.World, func(e *donburi.Entry) {
		if components.Object.Get(e).Right() < limit {
			doomed = append(doomed, e)
		}
	})
	for _, e := range doomed {
		removeEntity(ecs, sd, e)
	}
}

// removeEntity drops e from the world and its proxy from the space. Already removed
// entries are ignored.
func removeEntity(ecs *ecs.ECS, sd *components.SpaceData, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if e.HasComponent(components.Object) {
		factory.DetachProxy(sd, components.Object.Get(e))
	}
	ecs.World.Remove(e.Entity())
}
