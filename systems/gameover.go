package systems

import (
	"fmt"

	cfg "github.com/automoto/infinite-plumber/config"
	"github.com/automoto/infinite-plumber/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawGameOver renders the game over screen over the frozen world
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	session := GetOrCreateSession(e)
	if session.State != cfg.StateGameOver {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	centerY := height / 2

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Menu.OverlayColor,
		false,
	)

	drawCentered(screen, cfg.Menu.GameOverTitle, fonts.Title.Get(), width, centerY+cfg.Menu.GameOverOffsetY, cfg.Menu.GameOverColor)

	final := fmt.Sprintf("Final Score: %d", session.Score)
	drawCentered(screen, final, fonts.HUD.Get(), width, centerY+cfg.Menu.ScoreOffsetY, cfg.Menu.TextColor)
	drawCentered(screen, cfg.Menu.RetryHint, fonts.HUD.Get(), width, centerY+cfg.Menu.RetryOffsetY, cfg.Menu.TextColor)
}
