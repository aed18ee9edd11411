package factory

import (
	"github.com/automoto/infinite-plumber/archetypes"
	"github.com/automoto/infinite-plumber/components"
	cfg "github.com/automoto/infinite-plumber/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession creates the session singleton in the START state.
func CreateSession(ecs *ecs.ECS, highScore int) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(session, components.SessionData{
		State:     cfg.StateStart,
		HighScore: highScore,
	})
	return session
}

// CreateRuntime stores the collaborators the systems read through the session context.
func CreateRuntime(ecs *ecs.ECS, rt components.RuntimeData) *donburi.Entry {
	runtime := archetypes.Runtime.Spawn(ecs)
	components.Runtime.SetValue(runtime, rt)
	return runtime
}
