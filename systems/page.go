package systems

import (
	"image/color"
	"strings"

	"github.com/automoto/scrollfx/components"
	cfg "github.com/automoto/scrollfx/config"
	"github.com/automoto/scrollfx/fonts"
	"github.com/automoto/scrollfx/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawPage renders the visible sections translated by the eased scroll offset. The scene
// clears the screen to the page background first.
func DrawPage(e *ecs.ECS, screen *ebiten.Image) {
	pageEntry, ok := components.Scroll.First(e.World)
	if !ok {
		return
	}
	current := components.Scroll.Get(pageEntry).Current
	fade := introProgress(e)

	pad := cfg.Page.SectionPadding
	titleFont := fonts.Title.Get()
	bodyFont := fonts.Body.Get()
	titleHeight := fonts.LineHeight(fonts.Title)
	bodyHeight := fonts.LineHeight(fonts.Body)

	tags.Section.Each(e.World, func(entry *donburi.Entry) {
		section := components.Section.Get(entry)
		if !section.Visible {
			return
		}

		x := section.X
		y := section.Y - current
		vector.FillRect(screen, float32(x), float32(y), float32(section.W), float32(section.H),
			fadeColor(cfg.Page.SectionColor, fade), false)

		textX := int(x + pad)
		baseline := int(y+pad) + titleHeight
		text.Draw(screen, section.Title, titleFont, textX, baseline, fadeColor(cfg.Page.TitleColor, fade))

		baseline += titleHeight / 2
		maxWidth := int(section.W - pad*2)
		for _, line := range wrapText(section.Body, bodyFont, maxWidth) {
			baseline += bodyHeight
			if float64(baseline) > y+section.H-pad {
				break
			}
			text.Draw(screen, line, bodyFont, textX, baseline, fadeColor(cfg.Page.BodyColor, fade))
		}
	})
}

// wrapText splits s into lines no wider than maxWidth pixels. A single word wider than
// maxWidth gets its own line.
func wrapText(s string, face font.Face, maxWidth int) []string {
	var lines []string
	for _, paragraph := range strings.Split(s, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, word := range words[1:] {
			candidate := line + " " + word
			if font.MeasureString(face, candidate).Ceil() > maxWidth {
				lines = append(lines, line)
				line = word
				continue
			}
			line = candidate
		}
		lines = append(lines, line)
	}
	return lines
}

// fadeColor scales a color by f. Colors passed to ebiten are premultiplied.
func fadeColor(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: uint8(float64(c.A) * f),
	}
}
