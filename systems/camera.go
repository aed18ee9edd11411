package systems

import (
	"github.com/automoto/infinite-plumber/components"
	cfg "github.com/automoto/infinite-plumber/config"
	"github.com/automoto/infinite-plumber/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera keeps the player at most FollowOffset units right of the camera's left
// edge. The camera only ever moves right.
func UpdateCamera(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	session := GetOrCreateSession(ecs)
	obj := components.Object.Get(playerEntry)

	if obj.X > session.CameraX+cfg.Camera.FollowOffset {
		session.CameraX = obj.X - cfg.Camera.FollowOffset
	}
}
