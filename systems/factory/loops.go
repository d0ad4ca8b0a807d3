package factory

import (
	"github.com/automoto/scrollfx/archetypes"
	"github.com/automoto/scrollfx/components"
	"github.com/automoto/scrollfx/shared/motion"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLoops records the scene's scroll and render tasks in the world.
func CreateLoops(ecs *ecs.ECS, scroll, render *motion.Task) *donburi.Entry {
	loops := archetypes.Loops.Spawn(ecs)
	components.Loops.SetValue(loops, components.LoopsData{Scroll: scroll, Render: render})
	return loops
}
