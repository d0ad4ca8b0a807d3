package motion

import (
	stdmath "math"

	"github.com/yohamta/donburi/features/math"
)

// MeshOffset is the eased plane position and the distortion uniform derived from it.
type MeshOffset struct {
	Offset        math.Vec2 // eased position in screen pixels
	UniformOffset math.Vec2 // shader-space offset, proportional to pointer velocity
}

// Step eases Offset toward target and derives UniformOffset from the remaining lag.
// A still pointer leaves the uniform at zero once the plane catches up.
func (m *MeshOffset) Step(target math.Vec2, ease, strength float64) {
	m.Offset = LerpVec2(m.Offset, target, ease)
	m.UniformOffset = math.Vec2{
		X: (target.X - m.Offset.X) * strength,
		Y: (target.Y - m.Offset.Y) * strength,
	}
}

// GridVertex is one vertex of a subdivided unit plane.
type GridVertex struct {
	X, Y float64 // screen position in pixels
	U, V float64 // texture coordinates in [0, 1], V grows downward
}

// PlaneGrid is a plane subdivided into Segments x Segments quads.
type PlaneGrid struct {
	Segments int
	UVs      []GridVertex
	Indices  []uint16
}

// NewPlaneGrid builds the index buffer and texture coordinates for a subdivided plane.
// segments is clamped to [1, 180] so the vertex count fits a uint16 index buffer.
func NewPlaneGrid(segments int) PlaneGrid {
	if segments < 1 {
		segments = 1
	}
	if segments > 180 {
		segments = 180
	}
	row := segments + 1
	g := PlaneGrid{
		Segments: segments,
		UVs:      make([]GridVertex, 0, row*row),
		Indices:  make([]uint16, 0, segments*segments*6),
	}
	for j := 0; j <= segments; j++ {
		for i := 0; i <= segments; i++ {
			g.UVs = append(g.UVs, GridVertex{
				U: float64(i) / float64(segments),
				V: float64(j) / float64(segments),
			})
		}
	}
	for j := 0; j < segments; j++ {
		for i := 0; i < segments; i++ {
			a := uint16(j*row + i)
			b := a + 1
			c := a + uint16(row)
			d := c + 1
			g.Indices = append(g.Indices, a, b, c, b, d, c)
		}
	}
	return g
}

// Deform places the grid centered on center with the given size in pixels and bends it by
// the distortion uniform: x follows sin(V*pi), y follows sin(U*pi). dst is reused when it
// has enough capacity.
func (g PlaneGrid) Deform(dst []GridVertex, center math.Vec2, w, h float64, uniform math.Vec2) []GridVertex {
	dst = dst[:0]
	for _, uv := range g.UVs {
		x := (uv.U - 0.5) * w
		y := (uv.V - 0.5) * h
		x += stdmath.Sin(uv.V*stdmath.Pi) * uniform.X * w
		y += stdmath.Sin(uv.U*stdmath.Pi) * uniform.Y * h
		dst = append(dst, GridVertex{
			X: center.X + x,
			Y: center.Y + y,
			U: uv.U,
			V: uv.V,
		})
	}
	return dst
}
