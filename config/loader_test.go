package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultsAreValid(t *testing.T) {
	SetDefaults()
	if err := Validate(); err != nil {
		t.Fatalf("default config is invalid: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	SetDefaults()
	defer SetDefaults()

	path := filepath.Join(t.TempDir(), "plumber.yaml")
	data := []byte("width: 1024\nheight: 640\nseed: 99\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	applied, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if applied != path {
		t.Errorf("applied = %q, want %q", applied, path)
	}
	if C.Width != 1024 || C.Height != 640 || C.Seed != 99 {
		t.Errorf("config = %+v, want 1024x640 seed 99", *C)
	}
	if Start.PlatformY != 540 || Player.SpawnY != 490 {
		t.Errorf("bottom-anchored values not re-derived: platform y %v spawn y %v", Start.PlatformY, Player.SpawnY)
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	SetDefaults()
	defer SetDefaults()

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("width: [not a number"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestApplyRejectsTinyScreen(t *testing.T) {
	SetDefaults()
	defer SetDefaults()

	// A 200px tall screen leaves no room between the minimum platform y and the bottom margin.
	if err := Apply(Overrides{Height: 200}); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestGameStateString(t *testing.T) {
	tests := map[GameStateID]string{
		StateStart:      "START",
		StatePlaying:    "PLAYING",
		StateGameOver:   "GAME_OVER",
		GameStateID(42): "UNKNOWN",
	}
	for state, want := range tests {
		if got := state.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(state), got, want)
		}
	}
}
