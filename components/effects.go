package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// PopupData is floating score text. Tween drives the rise from 0 to cfg.Popup.Rise.
type PopupData struct {
	Text  string
	X, Y  float64 // world position at spawn
	Rise  float64 // current offset above Y
	Done  bool
	Tween *gween.Tween
}

var Popup = donburi.NewComponentType[PopupData]()
