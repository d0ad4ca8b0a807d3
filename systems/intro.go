package systems

import (
	"github.com/automoto/scrollfx/components"
	cfg "github.com/automoto/scrollfx/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateIntro advances the page reveal tween by one tick.
func UpdateIntro(e *ecs.ECS) {
	entry, ok := components.Intro.First(e.World)
	if !ok {
		return
	}
	intro := components.Intro.Get(entry)
	if intro.Done {
		return
	}

	dt := float32(1.0 / float64(cfg.C.TPS))
	progress, finished := intro.Tween.Update(dt)
	intro.Progress = progress
	if finished {
		intro.Progress = 1
		intro.Done = true
	}
}

// introProgress returns how far the page has faded in, 1 when there is no intro.
func introProgress(e *ecs.ECS) float64 {
	entry, ok := components.Intro.First(e.World)
	if !ok {
		return 1
	}
	return float64(components.Intro.Get(entry).Progress)
}
