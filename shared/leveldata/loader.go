package leveldata

import (
	"fmt"
	"io/fs"

	cfg "github.com/automoto/infinite-plumber/config"
	"github.com/automoto/infinite-plumber/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

const (
	startPlatformGroup = "StartPlatform"
	playerSpawnGroup   = "PlayerSpawn"
)

// LoadOpening parses the opening layout from a TMX file. It takes an fs.FS so callers can
// pass the embedded assets or os.DirFS. The map's bottom edge is anchored to the bottom of
// a screen screenHeight units tall, so the same file works for any screen height.
func LoadOpening(fsys fs.FS, tmxPath string, screenHeight float64) (*Opening, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	offsetY := screenHeight - float64(levelMap.Height*levelMap.TileHeight)

	var (
		opening     Opening
		hasPlatform bool
		hasSpawn    bool
	)
	for _, og := range levelMap.ObjectGroups {
		if len(og.Objects) == 0 {
			continue
		}
		o := og.Objects[0]
		switch og.Name {
		case startPlatformGroup:
			opening.Platform = gamemath.NewRect(o.X, o.Y+offsetY, o.Width, o.Height)
			hasPlatform = true
		case playerSpawnGroup:
			opening.SpawnX = o.X
			opening.SpawnY = o.Y + offsetY
			hasSpawn = true
		}
	}

	if !hasPlatform {
		return nil, fmt.Errorf("level %s: no %s object", tmxPath, startPlatformGroup)
	}
	if !hasSpawn {
		return nil, fmt.Errorf("level %s: no %s object", tmxPath, playerSpawnGroup)
	}
	if opening.Platform.W <= 0 || opening.Platform.H <= 0 {
		return nil, fmt.Errorf("level %s: start platform has no area", tmxPath)
	}

	opening.Frontier = opening.Platform.Right()
	return &opening, nil
}

// DefaultOpening is the built-in layout used when the level file cannot be loaded.
func DefaultOpening() *Opening {
	s := cfg.Start
	return &Opening{
		Platform: gamemath.NewRect(s.PlatformX, s.PlatformY, s.PlatformW, s.PlatformH),
		SpawnX:   cfg.Player.SpawnX,
		SpawnY:   cfg.Player.SpawnY,
		Frontier: s.Frontier,
	}
}
