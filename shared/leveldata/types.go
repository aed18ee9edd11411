// Package leveldata holds the level layout types, the opening-layout TMX loader and the
// procedural platform generator. It knows nothing about entities or collision spaces.
package leveldata

import "github.com/automoto/infinite-plumber/shared/gamemath"

// Opening is the fixed layout every run starts from.
type Opening struct {
	Platform gamemath.Rect
	SpawnX   float64
	SpawnY   float64
	Frontier float64 // x where procedural generation continues
}

// PlatformSpec is a generated platform. Height always reaches the bottom of the screen.
type PlatformSpec struct {
	Rect gamemath.Rect
}

// EnemySpec is a generated patrol enemy.
type EnemySpec struct {
	X, Y  float64
	Range float64
}

// CoinSpec is a generated coin.
type CoinSpec struct {
	X, Y float64
}

// Chunk is the output of one Extend call.
type Chunk struct {
	Platforms []PlatformSpec
	Enemies   []EnemySpec
	Coins     []CoinSpec
	Frontier  float64
}
