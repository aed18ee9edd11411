package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/automoto/infinite-plumber/assets"
)

func TestLoadEmbeddedOpening(t *testing.T) {
	opening, err := LoadOpening(assets.FS(), "levels/opening.tmx", 600)
	if err != nil {
		t.Fatalf("LoadOpening: %v", err)
	}
	want := DefaultOpening()
	if opening.Platform != want.Platform {
		t.Errorf("platform = %+v, want %+v", opening.Platform, want.Platform)
	}
	if opening.SpawnX != want.SpawnX || opening.SpawnY != want.SpawnY {
		t.Errorf("spawn = (%v, %v), want (%v, %v)", opening.SpawnX, opening.SpawnY, want.SpawnX, want.SpawnY)
	}
	if opening.Frontier != 550 {
		t.Errorf("frontier = %v, want 550", opening.Frontier)
	}
}

func TestLoadOpeningAnchorsToScreenBottom(t *testing.T) {
	opening, err := LoadOpening(assets.FS(), "levels/opening.tmx", 700)
	if err != nil {
		t.Fatalf("LoadOpening: %v", err)
	}
	if opening.Platform.Y != 600 || opening.Platform.Bottom() != 700 {
		t.Errorf("platform = %+v, want top 600 bottom 700", opening.Platform)
	}
	if opening.SpawnY != 550 {
		t.Errorf("spawn y = %v, want 550", opening.SpawnY)
	}
}

func TestLoadOpeningMissingSpawn(t *testing.T) {
	fsys := fstest.MapFS{
		"broken.tmx": &fstest.MapFile{Data: []byte(`<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="10" tilewidth="10" tileheight="10">
 <objectgroup id="1" name="StartPlatform">
  <object id="1" x="0" y="90" width="50" height="10"/>
 </objectgroup>
</map>
`)},
	}
	if _, err := LoadOpening(fsys, "broken.tmx", 100); err == nil {
		t.Fatal("expected an error for a level without a player spawn")
	}
}

func TestLoadOpeningMissingFile(t *testing.T) {
	if _, err := LoadOpening(fstest.MapFS{}, "nope.tmx", 600); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
