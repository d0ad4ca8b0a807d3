package factory

import (
	"github.com/automoto/scrollfx/archetypes"
	"github.com/automoto/scrollfx/components"
	cfg "github.com/automoto/scrollfx/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateIntro spawns the reveal tween that fades the page in after load.
func CreateIntro(ecs *ecs.ECS) *donburi.Entry {
	intro := archetypes.Intro.Spawn(ecs)
	components.Intro.SetValue(intro, components.IntroData{
		Tween: gween.New(0, 1, cfg.Intro.Duration, ease.OutCubic),
	})
	return intro
}
