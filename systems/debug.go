package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/infinite-plumber/components"
	cfg "github.com/automoto/infinite-plumber/config"
	"github.com/automoto/infinite-plumber/fonts"
	"github.com/automoto/infinite-plumber/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every broad-phase proxy when debug mode is on.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.C.Debug {
		return
	}
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	sd := components.Space.Get(spaceEntry)
	session := GetOrCreateSession(ecs)

	// Proxies are stored relative to the space origin
	offX := sd.OriginX - session.CameraX
	offY := sd.OriginY
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	for _, obj := range sd.Space.Objects() {
		x, y := obj.X+offX, obj.Y+offY
		if x+obj.W < 0 || x > width || y+obj.H < 0 || y > height {
			continue
		}

		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvSolid) {
			c = color.RGBA{100, 100, 100, 255} // Grey
		} else if obj.HasTags(tags.ResolvPlayer) {
			c = color.RGBA{0, 0, 255, 255} // Blue
		} else if obj.HasTags(tags.ResolvEnemy) {
			c = color.RGBA{255, 0, 0, 255} // Red
		}

		vector.FillRect(screen, float32(x), float32(y), float32(obj.W), 1, c, false)         // Top
		vector.FillRect(screen, float32(x), float32(y+obj.H-1), float32(obj.W), 1, c, false) // Bottom
		vector.FillRect(screen, float32(x), float32(y), 1, float32(obj.H), c, false)         // Left
		vector.FillRect(screen, float32(x+obj.W-1), float32(y), 1, float32(obj.H), c, false) // Right
	}

	info := fmt.Sprintf("origin %.0f  proxies %d  frontier %.0f", sd.OriginX, len(sd.Space.Objects()), session.LastGeneratedX)
	text.Draw(screen, info, fonts.HUD.Get(), 10, int(height)-10, color.White)
}
