package factory

import (
	"github.com/automoto/scrollfx/archetypes"
	"github.com/automoto/scrollfx/components"
	"github.com/automoto/scrollfx/shared/pagedata"
	"github.com/automoto/scrollfx/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSection spawns a block of page content and registers its bounds in the space.
func CreateSection(ecs *ecs.ECS, section pagedata.Section) *donburi.Entry {
	entry := archetypes.Section.Spawn(ecs)

	obj := resolv.NewObject(section.X, section.Y, section.W, section.H, tags.ResolvSection)
	obj.SetShape(resolv.NewRectangle(0, 0, section.W, section.H))
	obj.Data = entry // Link for O(1) lookup

	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	components.Section.SetValue(entry, components.SectionData{Section: section})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return entry
}

// CreateViewport spawns the rectangle that tracks the visible part of the page.
func CreateViewport(ecs *ecs.ECS, width, height int) *donburi.Entry {
	entry := archetypes.Viewport.Spawn(ecs)

	obj := resolv.NewObject(0, 0, float64(width), float64(height), tags.ResolvViewport)
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return entry
}
