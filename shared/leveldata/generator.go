package leveldata

import (
	"fmt"
	"math/rand"

	cfg "github.com/automoto/infinite-plumber/config"
	"github.com/automoto/infinite-plumber/shared/gamemath"
)

// Generator extends the platform stream ahead of the camera. All randomness comes from
// the injected source, so a fixed seed always produces the same layout.
type Generator struct {
	rng     *rand.Rand
	screenW float64
	screenH float64
}

// NewGenerator creates a generator for a screen of the given size.
func NewGenerator(rng *rand.Rand, screenW, screenH float64) *Generator {
	return &Generator{rng: rng, screenW: screenW, screenH: screenH}
}

// NewSeededGenerator creates a generator with its own source seeded with seed.
func NewSeededGenerator(seed int64, screenW, screenH float64) *Generator {
	return NewGenerator(rand.New(rand.NewSource(seed)), screenW, screenH)
}

// Target returns the frontier the generator must reach for a camera at cameraX.
func (g *Generator) Target(cameraX float64) float64 {
	return cameraX + cfg.Generator.LookAheadScreens*g.screenW
}

// Extend generates platforms starting at frontier until the frontier reaches
// Target(cameraX). prev is the most recently generated platform, or nil if there is none.
// The returned chunk is empty when the frontier is already far enough ahead.
func (g *Generator) Extend(frontier, cameraX float64, prev *gamemath.Rect) Chunk {
	chunk := Chunk{Frontier: frontier}
	target := g.Target(cameraX)

	var last *gamemath.Rect
	if prev != nil {
		p := *prev
		last = &p
	}

	for chunk.Frontier < target {
		plat := g.nextPlatform(chunk.Frontier, last)

		next := plat.Rect.Right()
		if next <= chunk.Frontier {
			panic(fmt.Sprintf("leveldata: frontier did not advance (%v -> %v)", chunk.Frontier, next))
		}
		chunk.Frontier = next

		chunk.Platforms = append(chunk.Platforms, plat)
		r := plat.Rect
		last = &r

		if e, ok := g.maybeEnemy(plat.Rect); ok {
			chunk.Enemies = append(chunk.Enemies, e)
		}
		chunk.Coins = append(chunk.Coins, g.maybeCoins(plat.Rect)...)
	}
	return chunk
}

func (g *Generator) nextPlatform(frontier float64, prev *gamemath.Rect) PlatformSpec {
	gc := cfg.Generator
	gap := gamemath.RandRange(g.rng, gc.MinGap, gc.MaxGap)
	width := gamemath.RandRange(g.rng, gc.MinWidth, gc.MaxWidth)
	height := gamemath.RandRange(g.rng, gc.MinHeight, gc.MaxHeight)
	y := g.screenH - float64(height)

	// Height variation is relative to the previous platform so every jump stays reachable.
	if prev != nil {
		delta := gamemath.RandRange(g.rng, gc.MinDeltaY, gc.MaxDeltaY)
		y = gamemath.Clamp(prev.Y+float64(delta), float64(gc.MinY), g.screenH-float64(gc.BottomMargin))
	}

	x := frontier + float64(gap)
	return PlatformSpec{Rect: gamemath.NewRect(x, y, float64(width), g.screenH-y)}
}

func (g *Generator) maybeEnemy(plat gamemath.Rect) (EnemySpec, bool) {
	ec := cfg.Enemy
	if plat.W <= ec.MinPlatformWidth {
		return EnemySpec{}, false
	}
	if g.rng.Float64() >= ec.SpawnChance {
		return EnemySpec{}, false
	}
	return EnemySpec{
		X:     plat.X + ec.SpawnInset,
		Y:     plat.Y - ec.Height,
		Range: plat.W - ec.PatrolTrim,
	}, true
}

func (g *Generator) maybeCoins(plat gamemath.Rect) []CoinSpec {
	cc := cfg.Coin
	if g.rng.Float64() >= cc.SpawnChance {
		return nil
	}

	count := gamemath.RandRange(g.rng, cc.MinCount, cc.MaxCount)
	startX := plat.X + (plat.W-float64(count)*cc.Spacing)/2
	coins := make([]CoinSpec, 0, count)
	for i := 0; i < count; i++ {
		lift := gamemath.RandRange(g.rng, cc.MinLift, cc.MaxLift)
		coins = append(coins, CoinSpec{
			X: startX + float64(i)*cc.Spacing,
			Y: plat.Y - float64(lift),
		})
	}
	return coins
}
