package systems

import (
	"github.com/automoto/infinite-plumber/components"
	cfg "github.com/automoto/infinite-plumber/config"
	"github.com/automoto/infinite-plumber/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePopups advances score popups by one tick and removes finished ones.
func UpdatePopups(ecs *ecs.ECS) {
	dt := float32(1) / float32(cfg.C.TickRate)

	var finished []*donburi.Entry
	tags.Popup.Each(ecs.World, func(e *donburi.Entry) {
		popup := components.Popup.Get(e)
		rise, done := popup.Tween.Update(dt)
		popup.Rise = float64(rise)
		popup.Done = done
		if done {
			finished = append(finished, e)
		}
	})
	for _, e := range finished {
		ecs.World.Remove(e.Entity())
	}
}
