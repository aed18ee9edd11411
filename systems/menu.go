package systems

import (
	"image/color"

	cfg "github.com/automoto/infinite-plumber/config"
	"github.com/automoto/infinite-plumber/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawStart renders the title screen shown before the first run.
func DrawStart(ecs *ecs.ECS, screen *ebiten.Image) {
	if GetOrCreateSession(ecs).State != cfg.StateStart {
		return
	}

	width := float64(screen.Bounds().Dx())
	centerY := float64(screen.Bounds().Dy()) / 2

	drawCentered(screen, cfg.Menu.Title, fonts.Title.Get(), width, centerY+cfg.Menu.TitleOffsetY, cfg.Menu.TitleColor)
	drawCentered(screen, cfg.Menu.StartHint, fonts.HUD.Get(), width, centerY+cfg.Menu.HintOffsetY, cfg.Menu.TextColor)
}

// drawCentered draws s centred horizontally with its top edge at y.
func drawCentered(screen *ebiten.Image, s string, face font.Face, screenWidth, y float64, clr color.Color) {
	x := centerTextX(s, face, screenWidth)
	text.Draw(screen, s, face, x, int(y)+face.Metrics().Ascent.Ceil(), clr)
}

// centerTextX calculates the X position to center text on screen
func centerTextX(s string, face font.Face, screenWidth float64) int {
	bounds := text.BoundString(face, s)
	textWidth := bounds.Dx()
	return int((screenWidth - float64(textWidth)) / 2)
}
