package main

import (
	"os"
	"time"

	"github.com/automoto/infinite-plumber/assets"
	"github.com/automoto/infinite-plumber/clock"
	"github.com/automoto/infinite-plumber/components"
	"github.com/automoto/infinite-plumber/config"
	"github.com/automoto/infinite-plumber/fonts"
	"github.com/automoto/infinite-plumber/scenes"
	"github.com/automoto/infinite-plumber/shared/leveldata"
	"github.com/automoto/infinite-plumber/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	QuitRequested() bool
}

type Game struct {
	scene Scene
}

func NewGame(rt components.RuntimeData) *Game {
	return &Game{scene: scenes.NewPlatformerScene(rt)}
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.scene.QuitRequested() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	log.SetDefault(log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "plumber",
		ReportTimestamp: true,
	}))
	path, err := config.Load("")
	if err != nil {
		log.Fatal("invalid configuration", "err", err)
	}
	if config.C.Debug {
		log.SetLevel(log.DebugLevel)
	}
	if path != "" {
		log.Info("loaded config", "path", path)
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatal("could not load fonts", "err", err)
	}

	seed := config.C.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Info("level seed", "seed", seed)

	width, height := float64(config.C.Width), float64(config.C.Height)
	opening, err := leveldata.LoadOpening(assets.FS(), config.Start.LevelPath, height)
	if err != nil {
		log.Warn("using built-in opening", "err", err)
		opening = leveldata.DefaultOpening()
	}

	var store components.HighScoreStore
	if s, err := systems.OpenHighScoreStore(config.Persistence.AppName, config.Persistence.ItemKey); err != nil {
		log.Warn("high scores will not be saved", "err", err)
		store = systems.NewHighScoreStore(systems.MemoryItems{}, config.Persistence.ItemKey)
	} else {
		store = s
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.Menu.Title)
	ebiten.SetTPS(config.C.TickRate)

	game := NewGame(components.RuntimeData{
		ScreenW:   width,
		ScreenH:   height,
		Clock:     clock.NewMonotonic(),
		Generator: leveldata.NewSeededGenerator(seed, width, height),
		Store:     store,
		Opening:   opening,
	})
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal("game loop failed", "err", err)
	}
}
