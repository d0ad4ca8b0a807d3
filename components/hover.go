package components

import (
	"github.com/automoto/scrollfx/shared/motion"
	"github.com/yohamta/donburi"
)

// HoverData drives the plane's alpha uniform and active texture.
type HoverData struct {
	motion.HoverUniform
	Hovered       bool // Pointer is inside the navigation list
	ActiveTexture int  // Index into the TextureSet
}

var Hover = donburi.NewComponentType[HoverData]()
