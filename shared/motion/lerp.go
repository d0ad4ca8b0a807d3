// Package motion holds the per-frame easing math shared by the scroll and plane loops.
// Nothing here touches the graphics context so it can be stepped from tests.
package motion

import "github.com/yohamta/donburi/features/math"

// Lerp linearly interpolates between start and end by t.
func Lerp(start, end, t float64) float64 {
	return start*(1-t) + end*t
}

// LerpVec2 applies Lerp component-wise.
func LerpVec2(start, end math.Vec2, t float64) math.Vec2 {
	return math.Vec2{
		X: Lerp(start.X, end.X, t),
		Y: Lerp(start.Y, end.Y, t),
	}
}

// Clamp01 clamps v to [0, 1].
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Clamp clamps v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
