package components

import (
	"github.com/automoto/scrollfx/shared/motion"
	"github.com/yohamta/donburi"
)

// LoopsData exposes the scene's frame loops to the systems that report on them.
type LoopsData struct {
	Scroll *motion.Task
	Render *motion.Task
}

var Loops = donburi.NewComponentType[LoopsData]()
