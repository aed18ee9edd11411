package systems

import (
	"testing"

	"github.com/automoto/infinite-plumber/clock"
	"github.com/automoto/infinite-plumber/components"
	cfg "github.com/automoto/infinite-plumber/config"
	"github.com/automoto/infinite-plumber/shared/leveldata"
	"github.com/automoto/infinite-plumber/systems/factory"
	"github.com/automoto/infinite-plumber/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

const testSeed = 42

type testWorld struct {
	ecs   *ecs.ECS
	clock *clock.Manual
	items MemoryItems
	store *HighScoreStore
}

// newTestWorld builds a world with the full tick pipeline minus input polling.
// Input is driven with SetInput through step.
func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	cfg.SetDefaults()

	w, h := float64(cfg.C.Width), float64(cfg.C.Height)
	tw := &testWorld{
		ecs:   ecs.NewECS(donburi.NewWorld()),
		clock: clock.NewManual(),
		items: MemoryItems{},
	}
	tw.store = NewHighScoreStore(tw.items, cfg.Persistence.ItemKey)

	factory.CreateRuntime(tw.ecs, components.RuntimeData{
		ScreenW:   w,
		ScreenH:   h,
		Clock:     tw.clock,
		Generator: leveldata.NewSeededGenerator(testSeed, w, h),
		Store:     tw.store,
		Opening:   leveldata.DefaultOpening(),
	})
	factory.CreateSpace(tw.ecs, -cfg.Broadphase.RebaseBehind, cfg.C.Height)
	factory.CreateSession(tw.ecs, tw.store.Load())

	for _, s := range []ecs.System{
		UpdateSession,
		WhilePlaying(UpdatePlayer),
		WhilePlaying(UpdatePhysics),
		WhilePlaying(UpdateCollisions),
		WhilePlaying(UpdateCamera),
		WhilePlaying(UpdateGeneration),
		WhilePlaying(UpdateEnemies),
		WhilePlaying(UpdateCoins),
		WhilePlaying(UpdateCombat),
		WhilePlaying(UpdateCleanup),
		WhilePlaying(UpdatePopups),
	} {
		tw.ecs.AddSystem(s)
	}
	return tw
}

// step runs one tick with the given actions held.
func (tw *testWorld) step(actions ...cfg.ActionID) {
	SetInput(tw.ecs, actions...)
	tw.ecs.Update()
	tw.clock.Tick(cfg.C.TickRate)
}

func (tw *testWorld) session() *components.SessionData {
	return GetOrCreateSession(tw.ecs)
}

func (tw *testWorld) space() *components.SpaceData {
	return getOrCreateSpace(tw.ecs)
}

func (tw *testWorld) player(t *testing.T) (*components.ObjectData, *components.PhysicsData) {
	t.Helper()
	e, ok := tags.Player.First(tw.ecs.World)
	if !ok {
		t.Fatal("no player in the world")
	}
	return components.Object.Get(e), components.Physics.Get(e)
}

// placePlayer moves the player and its proxy to (x, y) with the given vertical speed.
func (tw *testWorld) placePlayer(t *testing.T, x, y, vy float64) (*components.ObjectData, *components.PhysicsData) {
	t.Helper()
	obj, physics := tw.player(t)
	obj.X, obj.Y = x, y
	physics.SpeedX, physics.SpeedY = 0, vy
	factory.SyncProxy(tw.space(), obj)
	return obj, physics
}

func (tw *testWorld) count(tag donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(tag)).Count(tw.ecs.World)
}

func (tw *testWorld) platforms() []*components.ObjectData {
	var out []*components.ObjectData
	tags.Platform.Each(tw.ecs.World, func(e *donburi.Entry) {
		out = append(out, components.Object.Get(e))
	})
	return out
}
