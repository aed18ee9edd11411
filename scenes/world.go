package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/infinite-plumber/components"
	cfg "github.com/automoto/infinite-plumber/config"
	"github.com/automoto/infinite-plumber/systems"
	factory2 "github.com/automoto/infinite-plumber/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlatformerScene runs the whole game in one ECS world. START, PLAYING and GAME_OVER
// are session states inside that world, so the high score survives every run.
type PlatformerScene struct {
	ecs       *ecs.ECS
	runtime   components.RuntimeData
	pollInput ecs.System
	once      sync.Once
}

// NewPlatformerScene creates the scene. rt supplies the clock, generator, opening layout
// and high score store; screen size comes from rt as well.
func NewPlatformerScene(rt components.RuntimeData) *PlatformerScene {
	return &PlatformerScene{runtime: rt, pollInput: systems.UpdateInput}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

// QuitRequested reports whether the player asked to quit during the last update.
func (ps *PlatformerScene) QuitRequested() bool {
	if ps.ecs == nil {
		return false
	}
	return systems.QuitRequested(ps.ecs)
}

func (ps *PlatformerScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Input and the state machine run in every state
	ecs.AddSystem(ps.pollInput)
	ecs.AddSystem(systems.UpdateSession)

	// Simulation, in tick order
	ecs.AddSystem(systems.WhilePlaying(systems.UpdatePlayer))
	ecs.AddSystem(systems.WhilePlaying(systems.UpdatePhysics))
	ecs.AddSystem(systems.WhilePlaying(systems.UpdateCollisions))
	ecs.AddSystem(systems.WhilePlaying(systems.UpdateCamera))
	ecs.AddSystem(systems.WhilePlaying(systems.UpdateGeneration))
	ecs.AddSystem(systems.WhilePlaying(systems.UpdateEnemies))
	ecs.AddSystem(systems.WhilePlaying(systems.UpdateCoins))
	ecs.AddSystem(systems.WhilePlaying(systems.UpdateCombat))
	ecs.AddSystem(systems.WhilePlaying(systems.UpdateCleanup))
	ecs.AddSystem(systems.WhilePlaying(systems.UpdatePopups))

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ecs.AddRenderer(cfg.Default, systems.DrawWorld)
	ecs.AddRenderer(cfg.Default, systems.DrawPopups)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawStart)
	ecs.AddRenderer(cfg.Default, systems.DrawGameOver)

	ps.ecs = ecs

	highScore := 0
	if ps.runtime.Store != nil {
		highScore = ps.runtime.Store.Load()
	}
	factory2.CreateRuntime(ps.ecs, ps.runtime)
	factory2.CreateSpace(ps.ecs, -cfg.Broadphase.RebaseBehind, int(ps.runtime.ScreenH))
	factory2.CreateSession(ps.ecs, highScore)
}
