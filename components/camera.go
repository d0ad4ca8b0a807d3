package components

import (
	"github.com/automoto/scrollfx/shared/motion"
	"github.com/yohamta/donburi"
)

// CameraData holds the perspective projection for the current viewport.
type CameraData struct {
	Projection motion.Projection
}

var Camera = donburi.NewComponentType[CameraData]()
