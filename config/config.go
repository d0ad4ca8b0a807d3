package config

import (
	"errors"
	"fmt"
	"image/color"
)

// ScrollConfig contains smooth-scroll configuration values
type ScrollConfig struct {
	Ease      float64 // Fraction of the remaining distance covered per frame (0.0-1.0)
	WheelStep float64 // Pixels per wheel notch
	KeyStep   float64 // Pixels per arrow key press
	PageRatio float64 // Fraction of the viewport moved by PageUp/PageDown/Space
	SettleEps float64 // Distance below which the page snaps to the target and stops easing

	KeyRepeatDelay    int // Frames a scroll key is held before it repeats
	KeyRepeatInterval int // Frames between repeats
}

// PlaneConfig contains configuration for the textured plane that follows the pointer
type PlaneConfig struct {
	Width          float64 // Plane size in pixels
	Height         float64
	Segments       int     // Grid subdivisions per side
	FollowEase     float64 // How fast the plane chases the pointer (0.0-1.0)
	OffsetStrength float64 // Scale from pointer lag (pixels) to shader offset
}

// HoverConfig contains the hover alpha easing values
type HoverConfig struct {
	AlphaEase float64 // How fast the plane fades in/out (0.0-1.0)
}

// ProjectionConfig contains camera projection values
type ProjectionConfig struct {
	Perspective float64 // Camera distance at which one world unit is one pixel
}

// NavConfig contains navigation list configuration values
type NavConfig struct {
	// Opacity applied to a link when the pointer enters it and when it leaves it.
	HoveredOpacity float64
	IdleOpacity    float64

	// List position and item sizes come from the page layout's nav objects.
	TextColor color.RGBA
	FontSize  float64
}

// PageConfig contains scrollable page configuration values
type PageConfig struct {
	Name            string // Page layout to load from assets/pages
	BackgroundColor color.RGBA
	SectionColor    color.RGBA
	TitleColor      color.RGBA
	BodyColor       color.RGBA
	SectionPadding  float64
	CullPadding     float64 // Extra pixels kept around the viewport when culling sections
}

// IntroConfig contains the page reveal tween values
type IntroConfig struct {
	Duration float32 // seconds
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay bool // Show the state overlay on start
}

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	TPS    int
	Title  string
}

// Global configuration instances
var C *Config
var Scroll ScrollConfig
var Plane PlaneConfig
var Hover HoverConfig
var Projection ProjectionConfig
var Nav NavConfig
var Page PageConfig
var Intro IntroConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	OffWhite     = color.RGBA{R: 236, G: 232, B: 224, A: 255}
	Ink          = color.RGBA{R: 24, G: 24, B: 28, A: 255}
	Slate        = color.RGBA{R: 48, G: 52, B: 60, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		TPS:    60,
		Title:  "scrollfx",
	}

	Scroll = ScrollConfig{
		Ease:      0.075,
		WheelStep: 60,
		KeyStep:   40,
		PageRatio: 0.9,
		SettleEps: 0.1,

		KeyRepeatDelay:    24,
		KeyRepeatInterval: 3,
	}

	Plane = PlaneConfig{
		Width:          250,
		Height:         350,
		Segments:       20,
		FollowEase:     0.1,
		OffsetStrength: 0.0005,
	}

	Hover = HoverConfig{
		AlphaEase: 0.1,
	}

	Projection = ProjectionConfig{
		Perspective: 1000,
	}

	// Both branches use the same opacity; see DESIGN.md.
	Nav = NavConfig{
		HoveredOpacity: 0.2,
		IdleOpacity:    0.2,
		TextColor:      OffWhite,
		FontSize:       28,
	}

	Page = PageConfig{
		Name:            "home",
		BackgroundColor: Ink,
		SectionColor:    Slate,
		TitleColor:      Orange,
		BodyColor:       OffWhite,
		SectionPadding:  24,
		CullPadding:     64,
	}

	Intro = IntroConfig{
		Duration: 1.2,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Overlay: false,
	}
}

// Validate checks the value ranges the easing loops depend on.
func Validate() error {
	var errs []error
	if C.Width <= 0 || C.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", C.Width, C.Height))
	}
	if C.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps %d must be positive", C.TPS))
	}
	for name, v := range map[string]float64{
		"scroll ease":       Scroll.Ease,
		"plane follow ease": Plane.FollowEase,
		"hover alpha ease":  Hover.AlphaEase,
	} {
		if v <= 0 || v >= 1 {
			errs = append(errs, fmt.Errorf("%s %v must be in (0, 1)", name, v))
		}
	}
	if Projection.Perspective <= 0 {
		errs = append(errs, fmt.Errorf("perspective %v must be positive", Projection.Perspective))
	}
	if Plane.Width <= 0 || Plane.Height <= 0 {
		errs = append(errs, fmt.Errorf("plane size %vx%v must be positive", Plane.Width, Plane.Height))
	}
	for name, v := range map[string]float64{
		"hovered opacity": Nav.HoveredOpacity,
		"idle opacity":    Nav.IdleOpacity,
	} {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("%s %v must be in [0, 1]", name, v))
		}
	}
	if Audio.DefaultSFXVol < 0 || Audio.DefaultSFXVol > 1 {
		errs = append(errs, fmt.Errorf("sfx volume %v must be in [0, 1]", Audio.DefaultSFXVol))
	}
	if Scroll.KeyRepeatDelay < 0 || Scroll.KeyRepeatInterval <= 0 {
		errs = append(errs, fmt.Errorf("key repeat delay %d and interval %d must be non-negative and positive",
			Scroll.KeyRepeatDelay, Scroll.KeyRepeatInterval))
	}
	if Page.Name == "" {
		errs = append(errs, errors.New("page name is empty"))
	}
	return errors.Join(errs...)
}
