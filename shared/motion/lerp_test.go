package motion

import (
	"math"
	"testing"

	dmath "github.com/yohamta/donburi/features/math"
)

const tolerance = 1e-9

func TestLerpEndpoints(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
	}{
		{"ascending", 0, 100},
		{"descending", 50, -20},
		{"equal", 3, 3},
		{"fractional", 0.25, 0.75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lerp(tt.a, tt.b, 0); math.Abs(got-tt.a) > tolerance {
				t.Errorf("Lerp(%v, %v, 0) = %v, want %v", tt.a, tt.b, got, tt.a)
			}
			if got := Lerp(tt.a, tt.b, 1); math.Abs(got-tt.b) > tolerance {
				t.Errorf("Lerp(%v, %v, 1) = %v, want %v", tt.a, tt.b, got, tt.b)
			}
		})
	}
}

func TestLerpMonotonic(t *testing.T) {
	a, b := -10.0, 40.0
	prev := Lerp(a, b, 0)
	for i := 1; i <= 100; i++ {
		got := Lerp(a, b, float64(i)/100)
		if got <= prev {
			t.Fatalf("Lerp not increasing at t=%v: %v <= %v", float64(i)/100, got, prev)
		}
		prev = got
	}
}

func TestLerpVec2(t *testing.T) {
	got := LerpVec2(dmath.Vec2{X: 0, Y: 10}, dmath.Vec2{X: 10, Y: 0}, 0.25)
	if math.Abs(got.X-2.5) > tolerance || math.Abs(got.Y-7.5) > tolerance {
		t.Errorf("LerpVec2 = %+v, want {2.5 7.5}", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{-1, 0, 1, 0},
		{0.5, 0, 1, 0.5},
		{2, 0, 1, 1},
		{5, 0, 0, 0},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}
