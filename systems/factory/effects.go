package factory

import (
	"github.com/automoto/infinite-plumber/archetypes"
	"github.com/automoto/infinite-plumber/components"
	cfg "github.com/automoto/infinite-plumber/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePopup spawns floating text at a world position. It rises by cfg.Popup.Rise over
// cfg.Popup.Duration seconds and is removed once the tween finishes.
func CreatePopup(ecs *ecs.ECS, text string, x, y float64) *donburi.Entry {
	popup := archetypes.Popup.Spawn(ecs)
	components.Popup.SetValue(popup, components.PopupData{
		Text:  text,
		X:     x,
		Y:     y,
		Tween: gween.New(0, float32(cfg.Popup.Rise), float32(cfg.Popup.Duration), ease.OutQuad),
	})
	return popup
}
