package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/scrollfx/assets"
	"github.com/automoto/scrollfx/config"
	"github.com/automoto/scrollfx/fonts"
	"github.com/automoto/scrollfx/scenes"
	"github.com/automoto/scrollfx/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// Resizable scenes are told about window size changes.
type Resizable interface {
	Resize(width, height int)
}

// Disposable scenes end the game once disposed.
type Disposable interface {
	Dispose()
	Disposed() bool
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame() *Game {
	g := &Game{
		bounds: image.Rect(0, 0, config.C.Width, config.C.Height),
	}
	g.scene = scenes.NewPageScene(config.Page.Name, config.C.Width, config.C.Height)
	return g
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		if d, ok := g.scene.(Disposable); ok {
			d.Dispose()
		}
	}

	g.scene.Update()

	if d, ok := g.scene.(Disposable); ok && d.Disposed() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout follows the window size so the page always fills it.
func (g *Game) Layout(width, height int) (int, int) {
	if width != g.bounds.Dx() || height != g.bounds.Dy() {
		g.bounds = image.Rect(0, 0, width, height)
		if r, ok := g.scene.(Resizable); ok {
			r.Resize(width, height)
		}
	}
	return width, height
}

func loadFonts() error {
	if err := fonts.LoadFontWithSize(fonts.Body, goregular.TTF, 18); err != nil {
		return err
	}
	if err := fonts.LoadFontWithSize(fonts.Title, gobold.TTF, 32); err != nil {
		return err
	}
	return fonts.LoadFontWithSize(fonts.Debug, gomono.TTF, 13)
}

func main() {
	width := flag.Int("width", config.C.Width, "Initial window width")
	height := flag.Int("height", config.C.Height, "Initial window height")
	ease := flag.Float64("ease", config.Scroll.Ease, "Scroll easing factor in (0, 1)")
	page := flag.String("page", config.Page.Name, "Page layout to open")
	debug := flag.Bool("debug", config.Debug.Overlay, "Show the debug overlay on start")
	volume := flag.Float64("volume", config.Audio.DefaultSFXVol, "Hover sound volume (0 mutes)")
	listPages := flag.Bool("list", false, "List bundled pages and exit")
	flag.Parse()

	if *listPages {
		names, err := assets.PageNames()
		if err != nil {
			log.Fatalf("Failed to list pages: %v", err)
		}
		for _, name := range names {
			log.Println(name)
		}
		return
	}

	config.C.Width = *width
	config.C.Height = *height
	config.Scroll.Ease = *ease
	config.Page.Name = *page
	config.Debug.Overlay = *debug
	config.Audio.DefaultSFXVol = *volume

	if err := config.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	systems.SetSFXVolume(config.Audio.DefaultSFXVol)
	if err := loadFonts(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}
	if err := assets.LoadShaders(); err != nil {
		log.Fatalf("Failed to load shaders: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
