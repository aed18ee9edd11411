package systems

import (
	"fmt"

	"github.com/automoto/infinite-plumber/components"
	cfg "github.com/automoto/infinite-plumber/config"
	"github.com/automoto/infinite-plumber/systems/factory"
	"github.com/automoto/infinite-plumber/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCombat applies the outcomes of player contact: stomps, enemy hits, coin pickups
// and falling off the screen. Entities that are killed or collected are removed after
// the pass. Once the run has ended nothing else in the pass is scored.
func UpdateCombat(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	sd := getOrCreateSpace(ecs)
	physics := components.Physics.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	var removed []*donburi.Entry
	defer func() {
		for _, e := range removed {
			removeEntity(ecs, sd, e)
		}
	}()

	for _, hit := range overlapping(sd, obj, tags.ResolvEnemy) {
		enemy := components.Object.Get(hit)
		if !isStomp(physics, obj, enemy) {
			EndGame(ecs, "enemy")
			return
		}
		removed = append(removed, hit)
		physics.SpeedY = cfg.Enemy.StompBounce
		addScore(ecs, cfg.Enemy.StompScore, enemy.X, enemy.Y)
	}

	for _, hit := range overlapping(sd, obj, tags.ResolvCoin) {
		coin := components.Object.Get(hit)
		removed = append(removed, hit)
		addScore(ecs, cfg.Coin.Score, coin.X, coin.Y)
	}

	if obj.Y > getOrCreateRuntime(ecs).ScreenH {
		EndGame(ecs, "fall")
	}
}

// isStomp reports whether the player is falling onto the enemy from above: moving down
// with its feet above the enemy's centre plus the tolerance.
func isStomp(physics *components.PhysicsData, player, enemy *components.ObjectData) bool {
	return physics.SpeedY > 0 && player.Bottom() < enemy.CenterY()+cfg.Enemy.StompTolerance
}

func addScore(ecs *ecs.ECS, points int, x, y float64) {
	GetOrCreateSession(ecs).Score += points
	factory.CreatePopup(ecs, fmt.Sprintf("+%d", points), x, y)
}
