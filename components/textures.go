package components

import (
	"github.com/automoto/scrollfx/shared/motion"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// TexturesData is the fixed, ordered set of images the navigation links select from.
type TexturesData struct {
	Set motion.TextureSet[*ebiten.Image]
}

var Textures = donburi.NewComponentType[TexturesData]()
