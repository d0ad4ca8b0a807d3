package factory

import (
	"github.com/automoto/scrollfx/archetypes"
	"github.com/automoto/scrollfx/components"
	cfg "github.com/automoto/scrollfx/config"
	"github.com/automoto/scrollfx/shared/motion"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS, width, height int) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Projection: motion.NewProjection(float64(width), float64(height), cfg.Projection.Perspective),
	})
	return camera
}
