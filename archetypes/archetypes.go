package archetypes

import (
	"github.com/automoto/scrollfx/components"
	cfg "github.com/automoto/scrollfx/config"
	"github.com/automoto/scrollfx/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Page = newArchetype(
		tags.Page,
		components.Page,
		components.Scroll,
	)
	Section = newArchetype(
		tags.Section,
		components.Section,
		components.Object,
	)
	Viewport = newArchetype(
		tags.Viewport,
		components.Object,
	)
	Plane = newArchetype(
		tags.Plane,
		components.Plane,
		components.Hover,
		components.Textures,
	)
	Pointer = newArchetype(
		components.Pointer,
	)
	NavLink = newArchetype(
		tags.NavLink,
		components.NavLink,
	)
	Nav = newArchetype(
		components.Nav,
	)
	Space = newArchetype(
		components.Space,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Intro = newArchetype(
		components.Intro,
	)
	Loops = newArchetype(
		components.Loops,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
