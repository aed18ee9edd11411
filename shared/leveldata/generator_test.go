package leveldata

import (
	"math/rand"
	"reflect"
	"testing"

	cfg "github.com/automoto/infinite-plumber/config"
	"github.com/automoto/infinite-plumber/shared/gamemath"
)

const (
	testW = 800.0
	testH = 600.0
)

func startPlatform() *gamemath.Rect {
	r := gamemath.NewRect(50, testH-100, 500, 100)
	return &r
}

func TestExtendIsDeterministic(t *testing.T) {
	a := NewSeededGenerator(7, testW, testH).Extend(550, 0, startPlatform())
	b := NewSeededGenerator(7, testW, testH).Extend(550, 0, startPlatform())
	if !reflect.DeepEqual(a, b) {
		t.Fatal("same seed produced different chunks")
	}

	c := NewSeededGenerator(8, testW, testH).Extend(550, 0, startPlatform())
	if reflect.DeepEqual(a.Platforms, c.Platforms) {
		t.Error("different seeds produced identical platforms")
	}
}

func TestExtendKeepsRangesAndContinuity(t *testing.T) {
	gc := cfg.Generator
	for seed := int64(1); seed <= 50; seed++ {
		g := NewSeededGenerator(seed, testW, testH)
		frontier := 550.0
		prev := startPlatform()

		for cameraX := 0.0; cameraX <= 5000; cameraX += 700 {
			chunk := g.Extend(frontier, cameraX, prev)
			if chunk.Frontier < g.Target(cameraX) {
				t.Fatalf("seed %d: frontier %v short of target %v", seed, chunk.Frontier, g.Target(cameraX))
			}

			last := frontier
			for _, p := range chunk.Platforms {
				r := p.Rect
				gap := r.X - last
				if gap < float64(gc.MinGap) || gap > float64(gc.MaxGap) {
					t.Fatalf("seed %d: gap %v out of range", seed, gap)
				}
				if r.W < float64(gc.MinWidth) || r.W > float64(gc.MaxWidth) {
					t.Fatalf("seed %d: width %v out of range", seed, r.W)
				}
				if r.Y < float64(gc.MinY) || r.Y > testH-float64(gc.BottomMargin) {
					t.Fatalf("seed %d: y %v outside clamp", seed, r.Y)
				}
				if r.Bottom() != testH {
					t.Fatalf("seed %d: platform does not reach the screen bottom: %+v", seed, r)
				}
				if r.Right() <= last {
					t.Fatalf("seed %d: frontier not strictly increasing", seed)
				}
				last = r.Right()
			}
			if last != chunk.Frontier {
				t.Fatalf("seed %d: frontier %v does not match last platform edge %v", seed, chunk.Frontier, last)
			}

			if n := len(chunk.Platforms); n > 0 {
				r := chunk.Platforms[n-1].Rect
				prev = &r
			}
			frontier = chunk.Frontier
		}
	}
}

func TestExtendNoopWhenAhead(t *testing.T) {
	g := NewSeededGenerator(1, testW, testH)
	chunk := g.Extend(10000, 0, startPlatform())
	if len(chunk.Platforms) != 0 || chunk.Frontier != 10000 {
		t.Errorf("expected empty chunk, got %d platforms frontier %v", len(chunk.Platforms), chunk.Frontier)
	}
}

func TestFirstPlatformUsesHeightRange(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := NewSeededGenerator(seed, testW, testH)
		p := g.nextPlatform(0, nil)
		height := testH - p.Rect.Y
		if height < float64(cfg.Generator.MinHeight) || height > float64(cfg.Generator.MaxHeight) {
			t.Fatalf("seed %d: first platform height %v out of range", seed, height)
		}
	}
}

func TestHeightVariationIsBounded(t *testing.T) {
	g := NewSeededGenerator(3, testW, testH)
	prev := gamemath.NewRect(0, 400, 100, 200)
	for i := 0; i < 200; i++ {
		p := g.nextPlatform(0, &prev)
		d := p.Rect.Y - prev.Y
		if d < float64(cfg.Generator.MinDeltaY) || d > float64(cfg.Generator.MaxDeltaY) {
			t.Fatalf("height delta %v out of range", d)
		}
	}
}

func TestEnemyOnWidePlatformWithForcedChance(t *testing.T) {
	saved := cfg.Enemy
	defer func() { cfg.Enemy = saved }()
	cfg.Enemy.SpawnChance = 1

	g := NewSeededGenerator(1, testW, testH)
	plat := gamemath.NewRect(1000, 400, 250, 200)

	e, ok := g.maybeEnemy(plat)
	if !ok {
		t.Fatal("expected an enemy on a 250 wide platform")
	}
	if e.Range != 150 {
		t.Errorf("range = %v, want 150", e.Range)
	}
	if e.X != 1050 || e.Y != 370 {
		t.Errorf("enemy at (%v, %v), want (1050, 370)", e.X, e.Y)
	}
}

func TestNoEnemyOnNarrowPlatform(t *testing.T) {
	saved := cfg.Enemy
	defer func() { cfg.Enemy = saved }()
	cfg.Enemy.SpawnChance = 1

	g := NewSeededGenerator(1, testW, testH)
	for _, w := range []float64{100, 200} {
		if _, ok := g.maybeEnemy(gamemath.NewRect(0, 400, w, 200)); ok {
			t.Errorf("width %v must not spawn an enemy", w)
		}
	}
}

func TestEnemyChanceZeroNeverSpawns(t *testing.T) {
	saved := cfg.Enemy
	defer func() { cfg.Enemy = saved }()
	cfg.Enemy.SpawnChance = 0

	g := NewGenerator(rand.New(rand.NewSource(5)), testW, testH)
	for i := 0; i < 100; i++ {
		if _, ok := g.maybeEnemy(gamemath.NewRect(0, 400, 400, 200)); ok {
			t.Fatal("enemy spawned with zero chance")
		}
	}
}

func TestCoinClusterLayout(t *testing.T) {
	saved := cfg.Coin
	defer func() { cfg.Coin = saved }()
	cfg.Coin.SpawnChance = 1

	plat := gamemath.NewRect(1000, 400, 300, 200)
	for seed := int64(1); seed <= 30; seed++ {
		coins := NewSeededGenerator(seed, testW, testH).maybeCoins(plat)
		n := len(coins)
		if n < cfg.Coin.MinCount || n > cfg.Coin.MaxCount {
			t.Fatalf("seed %d: %d coins", seed, n)
		}

		wantStart := plat.X + (plat.W-float64(n)*cfg.Coin.Spacing)/2
		for i, c := range coins {
			if want := wantStart + float64(i)*cfg.Coin.Spacing; c.X != want {
				t.Fatalf("seed %d: coin %d at x %v, want %v", seed, i, c.X, want)
			}
			lift := plat.Y - c.Y
			if lift < float64(cfg.Coin.MinLift) || lift > float64(cfg.Coin.MaxLift) {
				t.Fatalf("seed %d: coin lift %v out of range", seed, lift)
			}
		}
	}
}
