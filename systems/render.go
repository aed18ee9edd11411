package systems

import (
	"image/color"
	"math"
	"math/rand"
	"sort"

	"github.com/automoto/infinite-plumber/components"
	cfg "github.com/automoto/infinite-plumber/config"
	"github.com/automoto/infinite-plumber/fonts"
	"github.com/automoto/infinite-plumber/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	grassHeight = 10
	cloudCount  = 5
	cloudRadius = 30
	cloudWrap   = 200 // clouds wrap this far past either screen edge
	cloudSeed   = 1
)

// VisibleKind says how a visible entity is drawn.
type VisibleKind int

const (
	VisiblePlatform VisibleKind = iota
	VisibleEnemy
	VisibleCoin
	VisiblePlayer
)

// Visible is one entity to draw, already in screen coordinates.
type Visible struct {
	Kind       VisibleKind
	X, Y, W, H float64
	Facing     float64 // players only
}

// CollectVisible returns the entities whose right edge is past the camera, shifted by
// the camera. Items come back grouped by kind in draw order, each group sorted by x.
func CollectVisible(ecs *ecs.ECS) []Visible {
	cameraX := GetOrCreateSession(ecs).CameraX

	var items []Visible
	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		if obj.Right() <= cameraX {
			return
		}

		v := Visible{X: obj.X - cameraX, Y: obj.Y, W: obj.W, H: obj.H}
		switch {
		case e.HasComponent(tags.Platform):
			v.Kind = VisiblePlatform
		case e.HasComponent(tags.Enemy):
			v.Kind = VisibleEnemy
		case e.HasComponent(tags.Coin):
			v.Kind = VisibleCoin
		case e.HasComponent(tags.Player):
			v.Kind = VisiblePlayer
			v.Facing = components.Player.Get(e).Facing
		default:
			return
		}
		items = append(items, v)
	})

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Kind != items[j].Kind {
			return items[i].Kind < items[j].Kind
		}
		return items[i].X < items[j].X
	})
	return items
}

// DrawWorld draws the level and the player. The frozen world stays visible behind the
// game over screen.
func DrawWorld(ecs *ecs.ECS, screen *ebiten.Image) {
	if GetOrCreateSession(ecs).State == cfg.StateStart {
		return
	}
	for _, v := range CollectVisible(ecs) {
		switch v.Kind {
		case VisiblePlatform:
			drawPlatform(screen, v)
		case VisibleEnemy:
			drawEnemy(screen, v)
		case VisibleCoin:
			drawCoin(screen, v)
		case VisiblePlayer:
			drawPlayer(screen, v)
		}
	}
}

func drawPlatform(screen *ebiten.Image, v Visible) {
	x, y, w, h := float32(v.X), float32(v.Y), float32(v.W), float32(v.H)
	vector.FillRect(screen, x, y, w, h, cfg.HUD.GroundColor, false)
	vector.FillRect(screen, x, y, w, grassHeight, cfg.HUD.GrassColor, false)
}

func drawEnemy(screen *ebiten.Image, v Visible) {
	x, y := float32(v.X), float32(v.Y)
	vector.FillRect(screen, x, y, float32(v.W), float32(v.H), cfg.HUD.EnemyColor, false)
	for _, eyeX := range []float32{5, 17} {
		vector.FillRect(screen, x+eyeX, y+5, 8, 8, cfg.HUD.EyeWhite, false)
		vector.FillRect(screen, x+eyeX+2, y+7, 4, 4, cfg.HUD.EyeBlack, false)
	}
}

func drawCoin(screen *ebiten.Image, v Visible) {
	r := float32(v.W / 2)
	cx, cy := float32(v.X)+r, float32(v.Y)+r
	vector.FillCircle(screen, cx, cy, r, cfg.HUD.CoinColor, true)
	vector.StrokeCircle(screen, cx, cy, r-1, 2, cfg.HUD.CoinRimColor, true)
}

func drawPlayer(screen *ebiten.Image, v Visible) {
	x, y := float32(v.X), float32(v.Y)
	vector.FillRect(screen, x, y, float32(v.W), float32(v.H), cfg.HUD.PlayerColor, false)

	// The eye sits on the side the player last moved towards.
	eyeX, pupilX := float32(18), float32(22)
	if v.Facing == cfg.DirectionLeft {
		eyeX, pupilX = float32(v.W)-26, float32(v.W)-26
	}
	vector.FillRect(screen, x+eyeX, y+4, 8, 8, cfg.HUD.EyeWhite, false)
	vector.FillRect(screen, x+pupilX, y+6, 4, 4, cfg.HUD.EyeBlack, false)
}

type cloud struct {
	x, y  float64
	speed float64 // fraction of the camera movement
}

var clouds []cloud

// DrawBackground fills the sky and draws the parallax clouds. The cloud layout comes
// from its own fixed seed so it never disturbs level generation.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.HUD.SkyColor)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	if clouds == nil {
		clouds = makeClouds(width, height)
	}

	cameraX := GetOrCreateSession(ecs).CameraX
	for _, c := range clouds {
		x := cloudScreenX(c, cameraX, width)
		vector.FillCircle(screen, float32(x), float32(c.y), cloudRadius, cfg.HUD.CloudColor, true)
		vector.FillCircle(screen, float32(x+cloudRadius), float32(c.y+8), cloudRadius*0.8, cfg.HUD.CloudColor, true)
	}
}

func makeClouds(width, height float64) []cloud {
	r := rand.New(rand.NewSource(cloudSeed))
	out := make([]cloud, cloudCount)
	for i := range out {
		out[i] = cloud{
			x:     r.Float64() * width,
			y:     r.Float64() * height / 2,
			speed: 0.2 + r.Float64()*0.3,
		}
	}
	return out
}

// cloudScreenX wraps a cloud into [-cloudWrap, width).
func cloudScreenX(c cloud, cameraX, width float64) float64 {
	span := width + cloudWrap
	x := math.Mod(c.x-cameraX*c.speed, span)
	if x < -cloudWrap {
		x += span
	}
	return x
}

// DrawPopups draws the floating score labels, fading them out as they rise.
func DrawPopups(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraX := GetOrCreateSession(ecs).CameraX
	face := fonts.HUD.Get()

	tags.Popup.Each(ecs.World, func(e *donburi.Entry) {
		popup := components.Popup.Get(e)
		alpha := 1 - popup.Rise/cfg.Popup.Rise
		c := fade(cfg.Popup.Color, alpha)

		x := int(popup.X - cameraX)
		y := int(popup.Y - popup.Rise)
		text.Draw(screen, popup.Text, face, x, y, c)
	})
}

func fade(c color.RGBA, alpha float64) color.RGBA {
	if alpha < 0 {
		alpha = 0
	}
	a := uint8(float64(c.A) * alpha)
	// color.RGBA is premultiplied.
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: a,
	}
}
