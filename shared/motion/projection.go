package motion

import (
	stdmath "math"

	"github.com/yohamta/donburi/features/math"
)

// Projection tracks the perspective camera that maps one world unit to one pixel at
// Perspective distance from the camera.
type Projection struct {
	Width, Height float64
	Perspective   float64
	FOV           float64 // vertical field of view in degrees
	Aspect        float64
}

// NewProjection builds a projection for a viewport of w x h pixels.
func NewProjection(w, h, perspective float64) Projection {
	p := Projection{Perspective: perspective}
	p.Resize(w, h)
	return p
}

// Resize recomputes the aspect ratio and field of view for a new viewport size.
func (p *Projection) Resize(w, h float64) {
	p.Width = w
	p.Height = h
	if h <= 0 {
		return
	}
	p.Aspect = w / h
	p.FOV = 2 * stdmath.Atan((h/2)/p.Perspective) * (180 / stdmath.Pi)
}

// PixelsPerUnit returns how many screen pixels one world unit covers at Perspective distance.
func (p Projection) PixelsPerUnit() float64 {
	visible := 2 * p.Perspective * stdmath.Tan(p.FOV*stdmath.Pi/360)
	if visible == 0 {
		return 0
	}
	return p.Height / visible
}

// ScreenToWorld converts a screen point (origin top-left, y down) into the centered,
// y-up world space of the plane.
func (p Projection) ScreenToWorld(v math.Vec2) math.Vec2 {
	return math.Vec2{X: v.X - p.Width/2, Y: -v.Y + p.Height/2}
}
