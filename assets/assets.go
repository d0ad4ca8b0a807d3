package assets

import (
	"bytes"
	"embed"
	"fmt"
	"log"

	"github.com/automoto/scrollfx/shared/pagedata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var (
	//go:embed all:pages
	pageFS embed.FS

	//go:embed all:images
	imageFS embed.FS
)

// PageDir is the directory inside the embedded filesystem holding page layouts.
const PageDir = "pages"

type ImageLoader struct {
	cache map[string]*ebiten.Image
}

func NewImageLoader() *ImageLoader {
	return &ImageLoader{cache: make(map[string]*ebiten.Image)}
}

// LoadImage decodes an embedded image, caching by path.
func (l *ImageLoader) LoadImage(path string) (*ebiten.Image, error) {
	if img, ok := l.cache[path]; ok {
		return img, nil
	}

	imgBytes, err := imageFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image %s: %w", path, err)
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}

	l.cache[path] = img
	return img, nil
}

var imageLoader = NewImageLoader()

// LoadTextures resolves the page's texture paths to images, in order. A texture that
// fails to load is skipped with a warning so the remaining indices keep their links.
func LoadTextures(paths []string) ([]*ebiten.Image, error) {
	textures := make([]*ebiten.Image, 0, len(paths))
	for _, path := range paths {
		img, err := imageLoader.LoadImage(path)
		if err != nil {
			log.Printf("Warning: Could not load texture: %v", err)
			// Keep the slot so link indices still line up.
			img = ebiten.NewImage(1, 1)
		}
		textures = append(textures, img)
	}
	if len(textures) == 0 {
		return nil, fmt.Errorf("no textures listed")
	}
	return textures, nil
}

// LoadPage parses the named page layout from the embedded pages directory.
func LoadPage(name string) (*pagedata.Layout, error) {
	return pagedata.Load(pageFS, fmt.Sprintf("%s/%s.tmx", PageDir, name))
}

// PageNames lists the bundled pages.
func PageNames() ([]string, error) {
	_, names, err := pagedata.LoadAll(pageFS, PageDir)
	return names, err
}
