package system

import (
	"github.com/lixenwraith/territory/emitter"
	"github.com/lixenwraith/territory/engine"
)

// Pipeline builds every tick stage and registers it on the world
// Registration order is irrelevant: the world sorts stages by priority
func Pipeline(world *engine.World) []engine.System {
	systems := []engine.System{
		NewCooldownSystem(world),
		NewInfluenceSystem(world),
	}
	for _, k := range emitter.Kinds {
		systems = append(systems, NewEmitterSystem(world, k))
	}
	systems = append(systems,
		NewContestSystem(world),
		NewAISystem(world),
		NewResolveSystem(world),
		NewDeathSystem(world),
		NewScoreSystem(world),
		NewEndConditionSystem(world),
	)

	for _, s := range systems {
		world.AddSystem(s)
	}
	return systems
}
