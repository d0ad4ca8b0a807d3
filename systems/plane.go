package systems

import (
	"github.com/automoto/scrollfx/assets"
	"github.com/automoto/scrollfx/components"
	cfg "github.com/automoto/scrollfx/config"
	"github.com/automoto/scrollfx/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Below this alpha the plane is not submitted at all.
const minVisibleAlpha = 1.0 / 255

// UpdatePlane is one tick of the render loop: ease the mesh toward the pointer, derive the
// shader offset from the remaining lag, place the mesh and ease the hover alpha.
func UpdatePlane(e *ecs.ECS) {
	planeEntry, ok := tags.Plane.First(e.World)
	if !ok {
		return
	}
	pointerEntry, ok := components.Pointer.First(e.World)
	if !ok {
		return
	}

	plane := components.Plane.Get(planeEntry)
	hover := components.Hover.Get(planeEntry)
	target := components.Pointer.Get(pointerEntry).Target

	plane.Step(target, cfg.Plane.FollowEase, cfg.Plane.OffsetStrength)

	// The camera keeps one world unit per pixel at any viewport size, so the mesh is
	// centered directly on the eased offset in screen space.
	plane.Position = plane.Offset

	hover.Step(hover.Hovered)
}

// DrawPlane submits the deformed mesh with the active texture through the plane shader.
func DrawPlane(e *ecs.ECS, screen *ebiten.Image) {
	if assets.PlaneShader == nil {
		return
	}
	planeEntry, ok := tags.Plane.First(e.World)
	if !ok {
		return
	}

	hover := components.Hover.Get(planeEntry)
	if hover.Alpha < minVisibleAlpha {
		return
	}
	texture, ok := components.Textures.Get(planeEntry).Set.At(hover.ActiveTexture)
	if !ok || texture == nil {
		return
	}

	plane := components.Plane.Get(planeEntry)
	plane.Deformed = plane.Grid.Deform(plane.Deformed, plane.Position, plane.Width, plane.Height, plane.UniformOffset)

	bounds := texture.Bounds()
	texW, texH := float64(bounds.Dx()), float64(bounds.Dy())
	originX, originY := float64(bounds.Min.X), float64(bounds.Min.Y)

	plane.Vertices = plane.Vertices[:0]
	for _, v := range plane.Deformed {
		plane.Vertices = append(plane.Vertices, ebiten.Vertex{
			DstX:   float32(v.X),
			DstY:   float32(v.Y),
			SrcX:   float32(originX + v.U*texW),
			SrcY:   float32(originY + v.V*texH),
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: 1,
		})
	}

	op := &ebiten.DrawTrianglesShaderOptions{}
	op.Images[0] = texture
	op.Uniforms = map[string]any{
		"Offset": []float32{float32(plane.UniformOffset.X), float32(plane.UniformOffset.Y)},
		"Alpha":  float32(hover.Alpha),
	}
	screen.DrawTrianglesShader(plane.Vertices, plane.Grid.Indices, assets.PlaneShader, op)
}
