package systems

import (
	"testing"

	"github.com/automoto/scrollfx/components"
	"github.com/automoto/scrollfx/shared/pagedata"
	"github.com/automoto/scrollfx/systems/factory"
	"github.com/automoto/scrollfx/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// testLayout has three textures and four links; the last link selects texture 5.
func testLayout() *pagedata.Layout {
	return &pagedata.Layout{
		Name:     "test",
		Width:    1280,
		Height:   2000,
		Textures: []string{"a.png", "b.png", "c.png"},
		Links: []pagedata.Link{
			{Index: 0, Label: "A", Texture: 0, X: 64, Y: 200, W: 220, H: 44},
			{Index: 1, Label: "B", Texture: 1, X: 64, Y: 256, W: 220, H: 44},
			{Index: 2, Label: "C", Texture: 2, X: 64, Y: 312, W: 220, H: 44},
			{Index: 3, Label: "D", Texture: 5, X: 64, Y: 368, W: 220, H: 44},
		},
		Sections: []pagedata.Section{
			{ID: 1, Title: "Top", X: 480, Y: 100, W: 720, H: 500},
			{ID: 2, Title: "Bottom", X: 480, Y: 1400, W: 720, H: 500},
		},
	}
}

// newTestWorld builds the page entities the way the page scene does, without the
// widget tree or GPU textures.
func newTestWorld(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	layout := testLayout()

	factory.CreateSpace(e, layout.Width, layout.Height, 64, 64)
	factory.CreateCamera(e, 1280, 720)
	factory.CreatePage(e, layout, 720)
	for _, section := range layout.Sections {
		factory.CreateSection(e, section)
	}
	factory.CreateViewport(e, 1280, 720)
	factory.CreatePointer(e)
	factory.CreatePlane(e, make([]*ebiten.Image, len(layout.Textures)))
	factory.CreateNavLinks(e, layout.Links)
	return e
}

func scrollOf(t *testing.T, e *ecs.ECS) *components.ScrollData {
	t.Helper()
	entry, ok := components.Scroll.First(e.World)
	if !ok {
		t.Fatal("no page entity")
	}
	return components.Scroll.Get(entry)
}

func planeOf(t *testing.T, e *ecs.ECS) (*components.PlaneData, *components.HoverData) {
	t.Helper()
	entry, ok := tags.Plane.First(e.World)
	if !ok {
		t.Fatal("no plane entity")
	}
	return components.Plane.Get(entry), components.Hover.Get(entry)
}

func pointerOf(t *testing.T, e *ecs.ECS) *components.PointerData {
	t.Helper()
	entry, ok := components.Pointer.First(e.World)
	if !ok {
		t.Fatal("no pointer entity")
	}
	return components.Pointer.Get(entry)
}

func cameraOf(t *testing.T, e *ecs.ECS) *components.CameraData {
	t.Helper()
	entry, ok := components.Camera.First(e.World)
	if !ok {
		t.Fatal("no camera entity")
	}
	return components.Camera.Get(entry)
}

func linkOpacity(t *testing.T, e *ecs.ECS, index int) float64 {
	t.Helper()
	link := findLink(e, index)
	if link == nil {
		t.Fatalf("no link %d", index)
	}
	return link.Opacity
}

func pendingSFX(e *ecs.ECS) int {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return 0
	}
	return len(components.Audio.Get(entry).PendingSFX)
}

func sectionVisible(t *testing.T, e *ecs.ECS, id int) bool {
	t.Helper()
	visible, found := false, false
	tags.Section.Each(e.World, func(entry *donburi.Entry) {
		section := components.Section.Get(entry)
		if section.ID == id {
			visible, found = section.Visible, true
		}
	})
	if !found {
		t.Fatalf("no section %d", id)
	}
	return visible
}
