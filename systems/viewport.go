package systems

import (
	"github.com/automoto/scrollfx/components"
	cfg "github.com/automoto/scrollfx/config"
	"github.com/automoto/scrollfx/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ResizeViewport updates the projection and re-sizes the scroll extent for a new window
// size. Nothing else is touched.
func ResizeViewport(e *ecs.ECS, width, height int) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	camera.Projection.Resize(float64(width), float64(height))

	if pageEntry, ok := components.Page.First(e.World); ok {
		layout := components.Page.Get(pageEntry).Layout
		scroll := components.Scroll.Get(pageEntry)
		scroll.SetExtent(float64(layout.Height), float64(height))
	}
}

// UpdateViewport moves the viewport rectangle to the displayed scroll offset and marks
// the sections it overlaps as visible.
func UpdateViewport(e *ecs.ECS) {
	viewportEntry, ok := tags.Viewport.First(e.World)
	if !ok {
		return
	}
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	current := 0.0
	if pageEntry, ok := components.Scroll.First(e.World); ok {
		current = components.Scroll.Get(pageEntry).Current
	}

	pad := cfg.Page.CullPadding
	obj := components.Object.Get(viewportEntry).Object
	obj.X = 0
	obj.Y = current - pad
	obj.W = camera.Projection.Width
	obj.H = camera.Projection.Height + pad*2
	obj.Update()

	tags.Section.Each(e.World, func(entry *donburi.Entry) {
		components.Section.Get(entry).Visible = false
	})

	if collision := obj.Check(0, 0, tags.ResolvSection); collision != nil {
		for _, other := range collision.ObjectsByTags(tags.ResolvSection) {
			if entry, ok := other.Data.(*donburi.Entry); ok && entry.Valid() {
				components.Section.Get(entry).Visible = true
			}
		}
	}
}

// viewportHeight returns the current window height in pixels.
func viewportHeight(e *ecs.ECS) float64 {
	if cameraEntry, ok := components.Camera.First(e.World); ok {
		return components.Camera.Get(cameraEntry).Projection.Height
	}
	return float64(cfg.C.Height)
}
