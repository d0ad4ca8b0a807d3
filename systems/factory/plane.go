package factory

import (
	"github.com/automoto/scrollfx/archetypes"
	"github.com/automoto/scrollfx/components"
	cfg "github.com/automoto/scrollfx/config"
	"github.com/automoto/scrollfx/shared/motion"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlane spawns the textured mesh with its hover state and texture table.
func CreatePlane(ecs *ecs.ECS, textures []*ebiten.Image) *donburi.Entry {
	plane := archetypes.Plane.Spawn(ecs)

	grid := motion.NewPlaneGrid(cfg.Plane.Segments)
	components.Plane.SetValue(plane, components.PlaneData{
		Width:    cfg.Plane.Width,
		Height:   cfg.Plane.Height,
		Grid:     grid,
		Deformed: make([]motion.GridVertex, 0, len(grid.UVs)),
		Vertices: make([]ebiten.Vertex, 0, len(grid.UVs)),
	})
	components.Hover.SetValue(plane, components.HoverData{
		HoverUniform: motion.HoverUniform{Ease: cfg.Hover.AlphaEase},
	})
	components.Textures.SetValue(plane, components.TexturesData{
		Set: motion.NewTextureSet(textures...),
	})

	return plane
}

func CreatePointer(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.Pointer.Spawn(ecs)
}
