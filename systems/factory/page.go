package factory

import (
	"log"

	"github.com/automoto/scrollfx/archetypes"
	"github.com/automoto/scrollfx/components"
	cfg "github.com/automoto/scrollfx/config"
	"github.com/automoto/scrollfx/shared/motion"
	"github.com/automoto/scrollfx/shared/pagedata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePage spawns the page entity with its scroll state sized to the layout.
func CreatePage(ecs *ecs.ECS, layout *pagedata.Layout, viewportHeight int) *donburi.Entry {
	page := archetypes.Page.Spawn(ecs)
	components.Page.SetValue(page, components.PageData{Layout: layout})

	scroll := motion.NewScrollState(cfg.Scroll.Ease)
	scroll.SetExtent(float64(layout.Height), float64(viewportHeight))
	components.Scroll.SetValue(page, components.ScrollData{ScrollState: scroll})

	for _, link := range layout.OutOfRangeLinks() {
		log.Printf("Warning: link %q selects texture %d but page %s has %d textures; hovering it will not change the texture",
			link.Label, link.Texture, layout.Name, len(layout.Textures))
	}

	return page
}
