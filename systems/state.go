package systems

import (
	"github.com/automoto/infinite-plumber/clock"
	"github.com/automoto/infinite-plumber/components"
	cfg "github.com/automoto/infinite-plumber/config"
	"github.com/automoto/infinite-plumber/shared/leveldata"
	"github.com/automoto/infinite-plumber/systems/factory"
	"github.com/automoto/infinite-plumber/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

// levelEntities matches everything a reset throws away.
var levelEntities = donburi.NewQuery(filter.Or(
	filter.Contains(tags.Player),
	filter.Contains(tags.Platform),
	filter.Contains(tags.Enemy),
	filter.Contains(tags.Coin),
	filter.Contains(tags.Popup),
))

// UpdateSession handles the input-driven transitions START -> PLAYING and
// GAME_OVER -> PLAYING. Leaving PLAYING only happens through EndGame.
func UpdateSession(e *ecs.ECS) {
	session := GetOrCreateSession(e)
	input := getOrCreateInput(e)

	switch session.State {
	case cfg.StateStart, cfg.StateGameOver:
		if GetAction(input, cfg.ActionConfirm).JustPressed {
			ResetSession(e)
			// The press that started the run must not also jump.
			input.Previous = input.Current
		}
	case cfg.StatePlaying:
		session.Ticks++
	}
}

// ResetSession replaces the player, the level and the run counters in one step and
// enters PLAYING. Nothing in it can fail, so the old run is never left half torn down.
// The generator keeps its random stream, so consecutive runs get different levels.
func ResetSession(e *ecs.ECS) {
	session := GetOrCreateSession(e)
	rt := getOrCreateRuntime(e)
	sd := getOrCreateSpace(e)
	opening := rt.Opening

	clearLevel(e, sd)
	sd.OriginX = -cfg.Broadphase.RebaseBehind

	factory.CreatePlatform(e, sd, opening.Platform)
	factory.CreatePlayer(e, sd, opening.SpawnX, opening.SpawnY)

	session.State = cfg.StatePlaying
	session.Score = 0
	session.CameraX = 0
	session.LastGeneratedX = opening.Frontier
	session.LastPlatform = opening.Platform
	session.HasLastPlatform = true
	session.Ticks = 0
	session.Runs++

	log.Info("run started", "run", session.Runs, "high_score", session.HighScore)
}

// EndGame moves a running session to GAME_OVER and commits a new high score.
// A failed save is logged; the in-memory high score is kept either way.
func EndGame(e *ecs.ECS, reason string) {
	session := GetOrCreateSession(e)
	if session.State != cfg.StatePlaying {
		return
	}
	session.State = cfg.StateGameOver
	log.Info("game over", "reason", reason, "score", session.Score, "ticks", session.Ticks)

	if session.Score <= session.HighScore {
		return
	}
	session.HighScore = session.Score
	if store := getOrCreateRuntime(e).Store; store != nil {
		if err := store.Save(session.HighScore); err != nil {
			log.Warn("could not save high score", "score", session.HighScore, "err", err)
		}
	}
}

// WhilePlaying wraps a system so it only runs while the session is PLAYING.
func WhilePlaying(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if GetOrCreateSession(e).State != cfg.StatePlaying {
			return
		}
		system(e)
	}
}

// GetOrCreateSession returns the singleton Session component, creating if needed.
func GetOrCreateSession(e *ecs.ECS) *components.SessionData {
	entry, ok := components.Session.First(e.World)
	if !ok {
		entry = factory.CreateSession(e, 0)
	}
	return components.Session.Get(entry)
}

// getOrCreateRuntime falls back to a monotonic clock, a generator seeded from the config
// and the built-in opening. There is no store, so high scores are not persisted.
func getOrCreateRuntime(e *ecs.ECS) *components.RuntimeData {
	entry, ok := components.Runtime.First(e.World)
	if !ok {
		w, h := float64(cfg.C.Width), float64(cfg.C.Height)
		entry = factory.CreateRuntime(e, components.RuntimeData{
			ScreenW:   w,
			ScreenH:   h,
			Clock:     clock.NewMonotonic(),
			Generator: leveldata.NewSeededGenerator(cfg.C.Seed, w, h),
			Opening:   leveldata.DefaultOpening(),
		})
	}
	return components.Runtime.Get(entry)
}

func getOrCreateSpace(e *ecs.ECS) *components.SpaceData {
	entry, ok := components.Space.First(e.World)
	if !ok {
		entry = factory.CreateSpace(e, -cfg.Broadphase.RebaseBehind, int(getOrCreateRuntime(e).ScreenH))
	}
	return components.Space.Get(entry)
}

func clearLevel(e *ecs.ECS, sd *components.SpaceData) {
	var doomed []*donburi.Entry
	levelEntities.Each(e.World, func(entry *donburi.Entry) {
		doomed = append(doomed, entry)
	})
	for _, entry := range doomed {
		removeEntity(e, sd, entry)
	}
}
