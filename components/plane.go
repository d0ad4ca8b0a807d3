package components

import (
	"github.com/automoto/scrollfx/shared/motion"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// PlaneData is the textured mesh that trails the pointer.
type PlaneData struct {
	motion.MeshOffset
	Position math.Vec2 // Screen-space center after projection
	Width    float64
	Height   float64
	Grid     motion.PlaneGrid

	// Reused per-frame buffers
	Deformed []motion.GridVertex
	Vertices []ebiten.Vertex
}

var Plane = donburi.NewComponentType[PlaneData]()
