package systems

import (
	"fmt"

	cfg "github.com/automoto/infinite-plumber/config"
	"github.com/automoto/infinite-plumber/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the score in the top-left corner and the high score in the top-right.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	session := GetOrCreateSession(ecs)
	if session.State != cfg.StatePlaying {
		return
	}

	face := fonts.HUD.Get()
	width := float64(screen.Bounds().Dx())
	margin := cfg.HUD.Margin
	baseline := int(margin) + face.Metrics().Ascent.Ceil()

	score := fmt.Sprintf("Score: %d", session.Score)
	text.Draw(screen, score, face, int(margin), baseline, cfg.HUD.ScoreColor)

	high := fmt.Sprintf("High Score: %d", session.HighScore)
	highX := int(width-margin) - text.BoundString(face, high).Dx()
	text.Draw(screen, high, face, highX, baseline, cfg.HUD.HighScoreColor)
}
