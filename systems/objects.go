package systems

import (
	"sort"

	"github.com/automoto/infinite-plumber/components"
	cfg "github.com/automoto/infinite-plumber/config"
	"github.com/automoto/infinite-plumber/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// overlapping returns the entities tagged tag whose bounds strictly intersect obj,
// ordered by x and then by entity id. The resolv space only narrows the candidates;
// the exact test is done on world rectangles.
func overlapping(sd *components.SpaceData, obj *components.ObjectData, tag string) []*donburi.Entry {
	if obj.Proxy == nil {
		return nil
	}
	factory.SyncProxy(sd, obj)

	check := obj.Proxy.Check(0, 0, tag)
	if check == nil {
		return nil
	}

	seen := make(map[donburi.Entity]struct{}, len(check.Objects))
	var hits []*donburi.Entry
	for _, candidate := range check.Objects {
		entry, ok := candidate.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		if _, dup := seen[entry.Entity()]; dup {
			continue
		}
		seen[entry.Entity()] = struct{}{}

		if components.Object.Get(entry).Rect.Intersects(obj.Rect) {
			hits = append(hits, entry)
		}
	}

	sort.Slice(hits, func(i, j int) bool {
		a, b := components.Object.Get(hits[i]), components.Object.Get(hits[j])
		if a.X != b.X {
			return a.X < b.X
		}
		return hits[i].Entity().Id() < hits[j].Entity().Id()
	})
	return hits
}

// ensureSpaceCovers moves the space origin when right would fall outside the space.
// The new origin sits RebaseBehind units behind the camera and every proxy is re-registered.
func ensureSpaceCovers(e *ecs.ECS, sd *components.SpaceData, right, cameraX float64) {
	bc := cfg.Broadphase
	if right+bc.ProxyPadding < sd.OriginX+float64(bc.SpaceWidth) {
		return
	}
	rebaseSpace(e, sd, cameraX-bc.RebaseBehind)
}

func rebaseSpace(e *ecs.ECS, sd *components.SpaceData, originX float64) {
	log.Debug("rebasing collision space", "from", sd.OriginX, "to", originX)
	sd.OriginX = originX
	components.Object.Each(e.World, func(entry *donburi.Entry) {
		factory.SyncProxy(sd, components.Object.Get(entry))
	})
}
