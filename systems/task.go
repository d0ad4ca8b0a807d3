package systems

import (
	"github.com/automoto/scrollfx/shared/motion"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// WithTask groups the systems of one frame loop behind task. The task ticks once per
// frame and the systems run in order only while it is started, so Frames counts host
// frames regardless of how many systems the loop has.
func WithTask(task *motion.Task, systems ...ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if !task.Tick() {
			return
		}
		for _, system := range systems {
			system(e)
		}
	}
}

// WithTaskRenderer gates a renderer on task. It does not advance the frame count.
func WithTaskRenderer(task *motion.Task, renderer func(*ecs.ECS, *ebiten.Image)) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		if !task.Running() {
			return
		}
		renderer(e, screen)
	}
}
