package assets

import (
	"embed"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// PlaneShader distorts and fades the hovered texture on the trailing plane
	PlaneShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	planeSrc, err := shaderFS.ReadFile("shaders/plane.kage")
	if err != nil {
		return fmt.Errorf("read plane shader: %w", err)
	}
	PlaneShader, err = ebiten.NewShader(planeSrc)
	if err != nil {
		return fmt.Errorf("compile plane shader: %w", err)
	}
	return nil
}
