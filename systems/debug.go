package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/scrollfx/components"
	cfg "github.com/automoto/scrollfx/config"
	"github.com/automoto/scrollfx/fonts"
	"github.com/automoto/scrollfx/shared/motion"
	"github.com/automoto/scrollfx/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug shows the loop state and outlines the section bounds.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	current := 0.0
	var lines []string
	if pageEntry, ok := components.Scroll.First(ecs.World); ok {
		scroll := components.Scroll.Get(pageEntry)
		current = scroll.Current
		lines = append(lines,
			fmt.Sprintf("scroll  target %.1f current %.1f max %.0f settled %v",
				scroll.Target, scroll.Current, scroll.Max, scroll.Settled(cfg.Scroll.SettleEps)))
	}
	if loopsEntry, ok := components.Loops.First(ecs.World); ok {
		loops := components.Loops.Get(loopsEntry)
		for _, task := range []*motion.Task{loops.Scroll, loops.Render} {
			lines = append(lines, fmt.Sprintf("loop    %s running %v frames %d", task.Name(), task.Running(), task.Frames()))
		}
	}
	lines = append(lines, fmt.Sprintf("input   %s", getOrCreateInput(ecs).LastInputMethod))

	// Draw section outlines in screen space
	visible := 0
	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			// Determine color based on tags
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvViewport) {
				c = color.RGBA{255, 0, 255, 255} // Magenta
			} else if entry, ok := obj.Data.(*donburi.Entry); ok && entry.Valid() && entry.HasComponent(components.Section) {
				if components.Section.Get(entry).Visible {
					visible++
					c = color.RGBA{0, 255, 0, 255} // Green
				}
			}

			x := obj.X
			y := obj.Y - current

			// Draw outline
			vector.FillRect(screen, float32(x), float32(y), float32(obj.W), 1, c, false)         // Top
			vector.FillRect(screen, float32(x), float32(y+obj.H-1), float32(obj.W), 1, c, false) // Bottom
			vector.FillRect(screen, float32(x), float32(y), 1, float32(obj.H), c, false)         // Left
			vector.FillRect(screen, float32(x+obj.W-1), float32(y), 1, float32(obj.H), c, false) // Right
		}
	}
	lines = append(lines, fmt.Sprintf("sections visible %d", visible))

	if planeEntry, ok := tags.Plane.First(ecs.World); ok {
		plane := components.Plane.Get(planeEntry)
		hover := components.Hover.Get(planeEntry)
		lines = append(lines,
			fmt.Sprintf("plane   offset %.1f, %.1f uniform %.4f, %.4f", plane.Offset.X, plane.Offset.Y,
				plane.UniformOffset.X, plane.UniformOffset.Y),
			fmt.Sprintf("hover   %v alpha %.3f texture %d/%d", hover.Hovered, hover.Alpha, hover.ActiveTexture,
				components.Textures.Get(planeEntry).Set.Len()))
	}
	if cameraEntry, ok := components.Camera.First(ecs.World); ok {
		p := components.Camera.Get(cameraEntry).Projection
		lines = append(lines, fmt.Sprintf("camera  %.0fx%.0f fov %.2f aspect %.3f px/unit %.2f",
			p.Width, p.Height, p.FOV, p.Aspect, p.PixelsPerUnit()))
		if pointerEntry, ok := components.Pointer.First(ecs.World); ok {
			target := components.Pointer.Get(pointerEntry).Target
			world := p.ScreenToWorld(target)
			lines = append(lines, fmt.Sprintf("pointer %.0f, %.0f world %.0f, %.0f", target.X, target.Y, world.X, world.Y))
		}
	}

	face := fonts.Debug.Get()
	lineHeight := fonts.LineHeight(fonts.Debug)
	width := screen.Bounds().Dx()
	boxW := 460
	boxX := width - boxW - 8
	vector.FillRect(screen, float32(boxX), 8, float32(boxW), float32(lineHeight*len(lines)+12), cfg.BlackOverlay, false)
	for i, line := range lines {
		text.Draw(screen, line, face, boxX+8, 8+lineHeight*(i+1), cfg.White)
	}
}
