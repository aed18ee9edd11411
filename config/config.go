package config

import (
	"fmt"
	"image/color"
)

// Config holds general game configuration
type Config struct {
	Width    int
	Height   int
	TickRate int
	Seed     int64 // 0 picks a seed from the wall clock at startup
	Debug    bool  // enables debug logging
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity float64 // added to SpeedY every tick
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Speed     float64
	JumpForce float64 // negative, applied only when grounded

	Width  float64
	Height float64

	// Spawn used when no opening level is available
	SpawnX float64
	SpawnY float64
}

// EnemyConfig contains patrol enemy configuration values
type EnemyConfig struct {
	Speed  float64
	Width  float64
	Height float64

	StompTolerance float64 // how far below the enemy's centre the player's feet may be
	StompBounce    float64
	StompScore     int

	// Generation
	MinPlatformWidth float64 // platforms must be wider than this to host an enemy
	SpawnChance      float64
	SpawnInset       float64 // distance from platform left edge
	PatrolTrim       float64 // patrol range = platform width - PatrolTrim
}

// CoinConfig contains collectible configuration values
type CoinConfig struct {
	Size  float64
	Score int

	BobAmplitude float64
	BobPeriodMs  float64

	// Generation
	SpawnChance float64
	MinCount    int
	MaxCount    int
	Spacing     float64
	MinLift     int // height above the platform top
	MaxLift     int
}

// GeneratorConfig contains procedural level generation ranges
type GeneratorConfig struct {
	MinGap, MaxGap       int
	MinWidth, MaxWidth   int
	MinHeight, MaxHeight int // first-platform height above the screen bottom
	MinDeltaY, MaxDeltaY int // height variation relative to the previous platform
	MinY                 int
	BottomMargin         int // platform top is never lower than screen height - BottomMargin
	LookAheadScreens     float64
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowOffset  float64 // player screen x the camera keeps
	CleanupMargin float64 // entities this far behind the camera are removed
}

// StartConfig describes the fixed opening of every run
type StartConfig struct {
	PlatformX, PlatformY float64
	PlatformW, PlatformH float64
	Frontier             float64
	LevelPath            string
}

// BroadphaseConfig sizes the resolv space used as a collision broad phase
type BroadphaseConfig struct {
	SpaceWidth   int
	SpacePadding int // vertical room above and below the screen
	CellSize     int
	RebaseBehind float64 // how far behind the camera the space origin is placed
	ProxyPadding float64
}

// PopupConfig contains score popup configuration
type PopupConfig struct {
	Rise     float64
	Duration float64 // seconds
	Color    color.RGBA
}

// PersistenceConfig names the save location
type PersistenceConfig struct {
	AppName string
	ItemKey string
}

// HUDConfig contains HUD and screen colors
type HUDConfig struct {
	Margin         float64
	SkyColor       color.RGBA
	CloudColor     color.RGBA
	ScoreColor     color.RGBA
	HighScoreColor color.RGBA
	PlayerColor    color.RGBA
	EyeWhite       color.RGBA
	EyeBlack       color.RGBA
	GroundColor    color.RGBA
	GrassColor     color.RGBA
	EnemyColor     color.RGBA
	CoinColor      color.RGBA
	CoinRimColor   color.RGBA
}

// MenuConfig contains start and game over screen configuration values
type MenuConfig struct {
	Title         string
	StartHint     string
	GameOverTitle string
	RetryHint     string
	TitleColor    color.RGBA
	GameOverColor color.RGBA
	TextColor     color.RGBA
	OverlayColor  color.RGBA
	TitleOffsetY  float64
	HintOffsetY   float64

	// Game over screen
	GameOverOffsetY float64
	ScoreOffsetY    float64
	RetryOffsetY    float64
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Player PlayerConfig
var Enemy EnemyConfig
var Coin CoinConfig
var Generator GeneratorConfig
var Camera CameraConfig
var Start StartConfig
var Broadphase BroadphaseConfig
var Popup PopupConfig
var Persistence PersistenceConfig
var HUD HUDConfig
var Menu MenuConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Gold      = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	SkyBlue   = color.RGBA{R: 135, G: 206, B: 235, A: 255}
	Brown     = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	Grass     = color.RGBA{R: 50, G: 205, B: 50, A: 255}
	Maroon    = color.RGBA{R: 128, G: 0, B: 0, A: 255}
	Goldenrod = color.RGBA{R: 218, G: 165, B: 32, A: 255}
)

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	SetDefaults()
}

// SetDefaults resets every config section to the built-in values.
func SetDefaults() {
	C = &Config{
		Width:    800,
		Height:   600,
		TickRate: 60,
	}

	Physics = PhysicsConfig{
		Gravity: 0.5,
	}

	Player = PlayerConfig{
		Speed:     5,
		JumpForce: -12,
		Width:     30,
		Height:    30,
		SpawnX:    100,
		SpawnY:    float64(C.Height) - 150,
	}

	Enemy = EnemyConfig{
		Speed:            2,
		Width:            30,
		Height:           30,
		StompTolerance:   10,
		StompBounce:      -8,
		StompScore:       50,
		MinPlatformWidth: 200,
		SpawnChance:      0.6,
		SpawnInset:       50,
		PatrolTrim:       100,
	}

	Coin = CoinConfig{
		Size:         20,
		Score:        10,
		BobAmplitude: 5,
		BobPeriodMs:  200,
		SpawnChance:  0.7,
		MinCount:     1,
		MaxCount:     5,
		Spacing:      30,
		MinLift:      50,
		MaxLift:      100,
	}

	Generator = GeneratorConfig{
		MinGap:           50,
		MaxGap:           200,
		MinWidth:         100,
		MaxWidth:         400,
		MinHeight:        50,
		MaxHeight:        150,
		MinDeltaY:        -80,
		MaxDeltaY:        80,
		MinY:             200,
		BottomMargin:     50,
		LookAheadScreens: 2,
	}

	Camera = CameraConfig{
		FollowOffset:  300,
		CleanupMargin: 100,
	}

	Start = StartConfig{
		PlatformX: 50,
		PlatformY: float64(C.Height) - 100,
		PlatformW: 500,
		PlatformH: 100,
		Frontier:  550,
		LevelPath: "levels/opening.tmx",
	}

	Broadphase = BroadphaseConfig{
		SpaceWidth:   8192,
		SpacePadding: 256,
		CellSize:     32,
		RebaseBehind: 1024,
		ProxyPadding: 1,
	}

	Popup = PopupConfig{
		Rise:     40,
		Duration: 0.8,
		Color:    White,
	}

	Persistence = PersistenceConfig{
		AppName: "infinite-plumber",
		ItemKey: "highscore",
	}

	HUD = HUDConfig{
		Margin:         10,
		SkyColor:       SkyBlue,
		CloudColor:     color.RGBA{R: 255, G: 255, B: 255, A: 160},
		ScoreColor:     White,
		HighScoreColor: Gold,
		PlayerColor:    Red,
		EyeWhite:       White,
		EyeBlack:       Black,
		GroundColor:    Brown,
		GrassColor:     Grass,
		EnemyColor:     Maroon,
		CoinColor:      Gold,
		CoinRimColor:   Goldenrod,
	}

	Menu = MenuConfig{
		Title:         "Infinite Plumber",
		StartHint:     "Press SPACE to Start",
		GameOverTitle: "GAME OVER",
		RetryHint:     "Press SPACE to Retry",
		TitleColor:    White,
		GameOverColor: Red,
		TextColor:     White,
		OverlayColor:  color.RGBA{R: 0, G: 0, B: 0, A: 120},
		TitleOffsetY:  -50,
		HintOffsetY:   20,

		GameOverOffsetY: -60,
		ScoreOffsetY:    0,
		RetryOffsetY:    40,
	}
}

// ApplyScreenSize changes the logical screen size and re-derives every value that is
// anchored to the bottom of the screen.
func ApplyScreenSize(width, height int) {
	C.Width = width
	C.Height = height
	Player.SpawnY = float64(height) - 150
	Start.PlatformY = float64(height) - 100
}

// Validate checks that every generation range is well formed. Ranges are fixed at
// startup, so a failure here is a configuration bug rather than a runtime condition.
func Validate() error {
	g := Generator
	switch {
	case g.MinGap > g.MaxGap || g.MinGap < 0:
		return fmt.Errorf("config: gap range [%d,%d] is invalid", g.MinGap, g.MaxGap)
	case g.MinWidth > g.MaxWidth || g.MinWidth <= 0:
		return fmt.Errorf("config: width range [%d,%d] is invalid", g.MinWidth, g.MaxWidth)
	case g.MinHeight > g.MaxHeight:
		return fmt.Errorf("config: height range [%d,%d] is invalid", g.MinHeight, g.MaxHeight)
	case g.MinDeltaY > g.MaxDeltaY:
		return fmt.Errorf("config: height delta range [%d,%d] is invalid", g.MinDeltaY, g.MaxDeltaY)
	case g.MinY > C.Height-g.BottomMargin:
		return fmt.Errorf("config: platform y clamp [%d,%d] is empty", g.MinY, C.Height-g.BottomMargin)
	case Coin.MinCount > Coin.MaxCount || Coin.MinCount < 1:
		return fmt.Errorf("config: coin count range [%d,%d] is invalid", Coin.MinCount, Coin.MaxCount)
	case Coin.MinLift > Coin.MaxLift:
		return fmt.Errorf("config: coin lift range [%d,%d] is invalid", Coin.MinLift, Coin.MaxLift)
	case Enemy.PatrolTrim >= Enemy.MinPlatformWidth:
		return fmt.Errorf("config: patrol trim %.0f leaves no patrol range on a %.0f platform",
			Enemy.PatrolTrim, Enemy.MinPlatformWidth)
	case C.Width <= 0 || C.Height <= 0:
		return fmt.Errorf("config: screen size %dx%d is invalid", C.Width, C.Height)
	case float64(Broadphase.SpaceWidth) < Broadphase.RebaseBehind+
		(g.LookAheadScreens+1)*float64(C.Width)+float64(g.MaxGap+g.MaxWidth):
		return fmt.Errorf("config: collision space width %d cannot hold the generation window",
			Broadphase.SpaceWidth)
	}
	return nil
}
