package factory

import (
	"github.com/automoto/infinite-plumber/archetypes"
	"github.com/automoto/infinite-plumber/components"
	cfg "github.com/automoto/infinite-plumber/config"
	"github.com/automoto/infinite-plumber/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the broad-phase space. It spans SpaceWidth units to the right of
// originX and the screen height plus SpacePadding above and below.
func CreateSpace(ecs *ecs.ECS, originX float64, screenH int) *donburi.Entry {
	bc := cfg.Broadphase
	space := archetypes.Space.Spawn(ecs)
	components.Space.SetValue(space, components.SpaceData{
		Space:   resolv.NewSpace(bc.SpaceWidth, screenH+2*bc.SpacePadding, bc.CellSize, bc.CellSize),
		OriginX: originX,
		OriginY: -float64(bc.SpacePadding),
	})
	return space
}

// AttachProxy registers e's bounds in the space under the given resolv tag.
func AttachProxy(sd *components.SpaceData, e *donburi.Entry, tag string) {
	obj := components.Object.Get(e)
	r := proxyRect(sd, obj)
	proxy := resolv.NewObject(r.X, r.Y, r.W, r.H, tag)
	proxy.Data = e
	sd.Space.Add(proxy)
	obj.Proxy = proxy
}

// SyncProxy moves obj's proxy to match its world bounds.
func SyncProxy(sd *components.SpaceData, obj *components.ObjectData) {
	if obj.Proxy == nil {
		return
	}
	r := proxyRect(sd, obj)
	obj.Proxy.X, obj.Proxy.Y = r.X, r.Y
	obj.Proxy.W, obj.Proxy.H = r.W, r.H
	obj.Proxy.Update()
}

// DetachProxy removes obj's proxy from the space.
func DetachProxy(sd *components.SpaceData, obj *components.ObjectData) {
	if obj.Proxy == nil {
		return
	}
	sd.Space.Remove(obj.Proxy)
	obj.Proxy.Data = nil
	obj.Proxy = nil
}

// Proxies are padded so that an object lying exactly on a cell boundary is still
// registered in the cell its neighbour occupies.
func proxyRect(sd *components.SpaceData, obj *components.ObjectData) gamemath.Rect {
	return obj.Rect.Inflate(cfg.Broadphase.ProxyPadding).Translate(-sd.OriginX, -sd.OriginY)
}
