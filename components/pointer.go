package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// PointerData stores the last observed cursor position in screen pixels.
type PointerData struct {
	Target math.Vec2
}

var Pointer = donburi.NewComponentType[PointerData]()
