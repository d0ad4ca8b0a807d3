package factory

import (
	"github.com/automoto/scrollfx/archetypes"
	"github.com/automoto/scrollfx/components"
	cfg "github.com/automoto/scrollfx/config"
	"github.com/automoto/scrollfx/shared/pagedata"
	"github.com/automoto/scrollfx/ui"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateNavLinks spawns one entity per navigation link, fully opaque.
func CreateNavLinks(ecs *ecs.ECS, links []pagedata.Link) {
	for _, link := range links {
		entry := archetypes.NavLink.Spawn(ecs)
		components.NavLink.SetValue(entry, components.NavLinkData{
			Link:    link,
			Opacity: 1,
		})
	}
}

// CreateNav spawns the link entities plus the widget tree that reports hover events for
// them, placed where the layout's nav objects are. Callbacks are bound by the systems
// package.
func CreateNav(ecs *ecs.ECS, layout *pagedata.Layout) *donburi.Entry {
	CreateNavLinks(ecs, layout.Links)

	labels := make([]string, len(layout.Links))
	for i, link := range layout.Links {
		labels[i] = link.Label
	}

	placement := layout.NavPlacement()
	nav := archetypes.Nav.Spawn(ecs)
	components.Nav.SetValue(nav, components.NavData{
		UI: ui.NewNavUI(labels, ui.NavOptions{
			TextColor:   cfg.Nav.TextColor,
			FontSize:    cfg.Nav.FontSize,
			X:           int(placement.X),
			Y:           int(placement.Y),
			ItemWidth:   int(placement.ItemWidth),
			ItemHeight:  int(placement.ItemHeight),
			ItemSpacing: int(placement.Spacing),
		}),
	})
	return nav
}
