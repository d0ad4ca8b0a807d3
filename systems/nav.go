package systems

import (
	"github.com/automoto/scrollfx/components"
	cfg "github.com/automoto/scrollfx/config"
	"github.com/automoto/scrollfx/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// BindNav connects the navigation widgets' cursor events to the page state.
func BindNav(e *ecs.ECS) {
	navEntry, ok := components.Nav.First(e.World)
	if !ok {
		return
	}
	nav := components.Nav.Get(navEntry).UI
	nav.OnLinkEnter = func(index int) { EnterLink(e, index) }
	nav.OnLinkExit = func(index int) { ExitLink(e, index) }
	nav.OnListEnter = func() { setListHovered(e, true) }
	nav.OnListExit = func() { setListHovered(e, false) }
}

// EnterLink handles the cursor entering link index: dim it and show its texture.
func EnterLink(e *ecs.ECS, index int) {
	link := findLink(e, index)
	if link == nil {
		return
	}
	link.Opacity = cfg.Nav.HoveredOpacity
	SelectTexture(e, link.Texture)
}

// ExitLink handles the cursor leaving link index.
func ExitLink(e *ecs.ECS, index int) {
	if link := findLink(e, index); link != nil {
		link.Opacity = cfg.Nav.IdleOpacity
	}
}

// SelectTexture makes texture i the plane's active texture. Indices outside the texture
// set leave the current texture in place; CreatePage has already warned about them.
func SelectTexture(e *ecs.ECS, i int) bool {
	planeEntry, ok := tags.Plane.First(e.World)
	if !ok {
		return false
	}
	if _, ok := components.Textures.Get(planeEntry).Set.At(i); !ok {
		return false
	}
	hover := components.Hover.Get(planeEntry)
	if hover.ActiveTexture != i {
		PlaySFX(e, cfg.SoundHover)
	}
	hover.ActiveTexture = i
	return true
}

func setListHovered(e *ecs.ECS, hovered bool) {
	if planeEntry, ok := tags.Plane.First(e.World); ok {
		components.Hover.Get(planeEntry).Hovered = hovered
	}
}

func findLink(e *ecs.ECS, index int) *components.NavLinkData {
	var found *components.NavLinkData
	tags.NavLink.Each(e.World, func(entry *donburi.Entry) {
		link := components.NavLink.Get(entry)
		if link.Index == index {
			found = link
		}
	})
	return found
}

// UpdateNav runs the widget tree, which fires the cursor callbacks, then pushes each
// link's opacity to its widget.
func UpdateNav(e *ecs.ECS) {
	navEntry, ok := components.Nav.First(e.World)
	if !ok {
		return
	}
	nav := components.Nav.Get(navEntry).UI
	nav.UI.Update()

	fade := introProgress(e)
	tags.NavLink.Each(e.World, func(entry *donburi.Entry) {
		link := components.NavLink.Get(entry)
		nav.SetOpacity(link.Index, link.Opacity*fade)
	})
}

// DrawNav draws the navigation list above the page.
func DrawNav(e *ecs.ECS, screen *ebiten.Image) {
	navEntry, ok := components.Nav.First(e.World)
	if !ok {
		return
	}
	components.Nav.Get(navEntry).UI.UI.Draw(screen)
}
