package systems

import (
	"github.com/automoto/scrollfx/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdatePointer records the cursor position as the plane's target. The plane starts at
// (0, 0) and only moves once the cursor does.
func UpdatePointer(e *ecs.ECS) {
	entry, ok := components.Pointer.First(e.World)
	if !ok {
		return
	}
	x, y := ebiten.CursorPosition()
	components.Pointer.Get(entry).Target = math.Vec2{X: float64(x), Y: float64(y)}
}
