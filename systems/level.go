package systems

import (
	"github.com/automoto/infinite-plumber/shared/gamemath"
	"github.com/automoto/infinite-plumber/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGeneration extends the level until the frontier is at least two screens ahead of
// the camera. It runs after the camera has moved, so the frontier is always far enough
// ahead when the frame is drawn.
func UpdateGeneration(ecs *ecs.ECS) {
	session := GetOrCreateSession(ecs)
	rt := getOrCreateRuntime(ecs)

	if session.LastGeneratedX >= rt.Generator.Target(session.CameraX) {
		return
	}

	var prev *gamemath.Rect
	if session.HasLastPlatform {
		p := session.LastPlatform
		prev = &p
	}
	chunk := rt.Generator.Extend(session.LastGeneratedX, session.CameraX, prev)

	sd := getOrCreateSpace(ecs)
	ensureSpaceCovers(ecs, sd, chunk.Frontier, session.CameraX)

	for _, p := range chunk.Platforms {
		factory.CreatePlatform(ecs, sd, p.Rect)
	}
	for _, en := range chunk.Enemies {
		factory.CreateEnemy(ecs, sd, en)
	}
	for _, c := range chunk.Coins {
		factory.CreateCoin(ecs, sd, c)
	}

	session.LastGeneratedX = chunk.Frontier
	if n := len(chunk.Platforms); n > 0 {
		session.LastPlatform = chunk.Platforms[n-1].Rect
		session.HasLastPlatform = true
	}

	log.Debug("level extended",
		"platforms", len(chunk.Platforms),
		"enemies", len(chunk.Enemies),
		"coins", len(chunk.Coins),
		"frontier", chunk.Frontier)
}
