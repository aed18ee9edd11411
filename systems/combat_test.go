package systems

import (
	"testing"
	"time"

	"github.com/automoto/infinite-plumber/components"
	cfg "github.com/automoto/infinite-plumber/config"
	"github.com/automoto/infinite-plumber/shared/leveldata"
	"github.com/automoto/infinite-plumber/systems/factory"
	"github.com/automoto/infinite-plumber/tags"
)

func TestStompKillsEnemy(t *testing.T) {
	tw := newTestWorld(t)
	ResetSession(tw.ecs)

	// Enemy centre is at y 485; the player's feet at 480 are above centre+10.
	enemy := factory.CreateEnemy(tw.ecs, tw.space(), leveldata.EnemySpec{X: 300, Y: 470, Range: 100})
	_, physics := tw.placePlayer(t, 300, 450, 5)

	UpdateCombat(tw.ecs)

	if enemy.Valid() {
		t.Error("stomped enemy still in the world")
	}
	if physics.SpeedY != cfg.Enemy.StompBounce {
		t.Errorf("vy = %v, want %v", physics.SpeedY, cfg.Enemy.StompBounce)
	}
	s := tw.session()
	if s.Score != 50 {
		t.Errorf("score = %d, want 50", s.Score)
	}
	if s.State != cfg.StatePlaying {
		t.Errorf("state = %v, want PLAYING", s.State)
	}
	if n := tw.count(tags.Popup); n != 1 {
		t.Errorf("popups = %d, want 1", n)
	}
}

func TestEnemyContactEndsGame(t *testing.T) {
	tests := []struct {
		name      string
		prevHigh  int
		score     int
		vy        float64
		y         float64
		wantHigh  int
		wantSaved bool
	}{
		{"ascending new record", 20, 30, -3, 450, 30, true},
		{"ascending below record", 20, 10, -3, 450, 20, false},
		{"descending too low is a side hit", 0, 40, 5, 466, 40, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := newTestWorld(t)
			ResetSession(tw.ecs)
			s := tw.session()
			s.HighScore = tt.prevHigh
			s.Score = tt.score

			enemy := factory.CreateEnemy(tw.ecs, tw.space(), leveldata.EnemySpec{X: 300, Y: 470, Range: 100})
			tw.placePlayer(t, 300, tt.y, tt.vy)

			UpdateCombat(tw.ecs)

			if s.State != cfg.StateGameOver {
				t.Fatalf("state = %v, want GAME_OVER", s.State)
			}
			if !enemy.Valid() {
				t.Error("enemy removed on a losing contact")
			}
			if s.HighScore != tt.wantHigh {
				t.Errorf("high score = %d, want %d", s.HighScore, tt.wantHigh)
			}
			saved := NewHighScoreStore(tw.items, cfg.Persistence.ItemKey).Load()
			if tt.wantSaved && saved != tt.wantHigh {
				t.Errorf("stored high score = %d, want %d", saved, tt.wantHigh)
			}
			if !tt.wantSaved && saved != 0 {
				t.Errorf("stored high score = %d, want nothing written", saved)
			}
		})
	}
}

func TestCoinCollectedOnce(t *testing.T) {
	tw := newTestWorld(t)
	ResetSession(tw.ecs)

	coin := factory.CreateCoin(tw.ecs, tw.space(), leveldata.CoinSpec{X: 305, Y: 455})
	tw.placePlayer(t, 300, 450, -4)

	UpdateCombat(tw.ecs)
	if coin.Valid() {
		t.Fatal("collected coin still in the world")
	}
	if got := tw.session().Score; got != 10 {
		t.Fatalf("score = %d, want 10", got)
	}

	UpdateCombat(tw.ecs)
	if got := tw.session().Score; got != 10 {
		t.Errorf("score after second pass = %d, want 10", got)
	}
}

func TestCoinClusterScoresEveryCoin(t *testing.T) {
	tw := newTestWorld(t)
	ResetSession(tw.ecs)

	for _, x := range []float64{290, 300, 310} {
		factory.CreateCoin(tw.ecs, tw.space(), leveldata.CoinSpec{X: x, Y: 455})
	}
	tw.placePlayer(t, 300, 450, 0)

	UpdateCombat(tw.ecs)
	if got := tw.session().Score; got != 30 {
		t.Errorf("score = %d, want 30", got)
	}
	if n := tw.count(tags.Coin); n != 0 {
		t.Errorf("%d coins left", n)
	}
}

func TestFallingOffScreenEndsGame(t *testing.T) {
	tw := newTestWorld(t)
	ResetSession(tw.ecs)
	tw.session().Score = 70

	tw.placePlayer(t, 600, float64(cfg.C.Height)+1, 10)
	UpdateCombat(tw.ecs)

	s := tw.session()
	if s.State != cfg.StateGameOver {
		t.Fatalf("state = %v, want GAME_OVER", s.State)
	}
	if s.HighScore != 70 {
		t.Errorf("high score = %d, want 70", s.HighScore)
	}
}

func TestNoScoringAfterGameOver(t *testing.T) {
	tw := newTestWorld(t)
	ResetSession(tw.ecs)

	factory.CreateEnemy(tw.ecs, tw.space(), leveldata.EnemySpec{X: 300, Y: 470, Range: 100})
	coin := factory.CreateCoin(tw.ecs, tw.space(), leveldata.CoinSpec{X: 305, Y: 455})
	tw.placePlayer(t, 300, 450, -2)

	UpdateCombat(tw.ecs)

	s := tw.session()
	if s.State != cfg.StateGameOver || s.Score != 0 || s.HighScore != 0 {
		t.Errorf("state %v score %d high %d, want GAME_OVER with nothing scored", s.State, s.Score, s.HighScore)
	}
	if !coin.Valid() {
		t.Error("coin collected after the run ended")
	}
}

func TestEnemyPatrolStaysInBounds(t *testing.T) {
	tw := newTestWorld(t)
	ResetSession(tw.ecs)
	e := factory.CreateEnemy(tw.ecs, tw.space(), leveldata.EnemySpec{X: 1000, Y: 370, Range: 150})
	obj := components.Object.Get(e)
	enemy := components.Enemy.Get(e)

	flips := 0
	dir := enemy.Direction
	for i := 0; i < 1000; i++ {
		UpdateEnemies(tw.ecs)
		if obj.X < enemy.OriginX-enemy.Speed || obj.X > enemy.OriginX+enemy.Range+enemy.Speed {
			t.Fatalf("tick %d: x %v left the patrol", i, obj.X)
		}
		if enemy.Direction != dir {
			flips++
			dir = enemy.Direction
		}
	}
	if flips < 2 {
		t.Errorf("enemy flipped %d times, want it to patrol back and forth", flips)
	}
}

func TestCoinsBobWithClock(t *testing.T) {
	tw := newTestWorld(t)
	ResetSession(tw.ecs)
	e := factory.CreateCoin(tw.ecs, tw.space(), leveldata.CoinSpec{X: 1000, Y: 300})
	obj := components.Object.Get(e)

	UpdateCoins(tw.ecs)
	if obj.Y != 295 || obj.X != 1000 {
		t.Fatalf("at t=0 coin at (%v, %v), want (1000, 295)", obj.X, obj.Y)
	}

	tw.clock.Advance(200 * time.Millisecond)
	UpdateCoins(tw.ecs)
	if obj.Y != 300 {
		t.Errorf("at t=200ms coin y = %v, want 300", obj.Y)
	}
}
