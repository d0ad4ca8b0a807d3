package motion

import (
	"math"
	"testing"

	dmath "github.com/yohamta/donburi/features/math"
)

func TestProjectionFOV(t *testing.T) {
	tests := []struct {
		w, h, perspective float64
	}{
		{1280, 720, 1000},
		{640, 360, 1000},
		{1920, 1080, 600},
		{400, 900, 1000},
	}
	for _, tt := range tests {
		p := NewProjection(tt.w, tt.h, tt.perspective)
		wantFOV := 2 * math.Atan((tt.h/2)/tt.perspective) * 180 / math.Pi
		if math.Abs(p.FOV-wantFOV) > tolerance {
			t.Errorf("%vx%v: FOV = %v, want %v", tt.w, tt.h, p.FOV, wantFOV)
		}
		if math.Abs(p.Aspect-tt.w/tt.h) > tolerance {
			t.Errorf("%vx%v: Aspect = %v, want %v", tt.w, tt.h, p.Aspect, tt.w/tt.h)
		}
		if ppu := p.PixelsPerUnit(); math.Abs(ppu-1) > 1e-6 {
			t.Errorf("%vx%v: PixelsPerUnit = %v, want 1", tt.w, tt.h, ppu)
		}
	}
}

func TestProjectionResizeKeepsPerspective(t *testing.T) {
	p := NewProjection(1280, 720, 1000)
	p.Resize(800, 1200)
	if p.Perspective != 1000 {
		t.Errorf("Perspective = %v, want 1000", p.Perspective)
	}
	if p.FOV <= NewProjection(1280, 720, 1000).FOV {
		t.Errorf("taller viewport should widen the FOV, got %v", p.FOV)
	}
}

func TestProjectionScreenToWorld(t *testing.T) {
	tests := []struct {
		w, h   float64
		screen dmath.Vec2
		want   dmath.Vec2
	}{
		{1280, 720, dmath.Vec2{X: 100, Y: 50}, dmath.Vec2{X: -540, Y: 310}},
		{1280, 720, dmath.Vec2{X: 640, Y: 360}, dmath.Vec2{}},
		{800, 1400, dmath.Vec2{X: 800, Y: 1400}, dmath.Vec2{X: 400, Y: -700}},
	}
	for _, tt := range tests {
		p := NewProjection(tt.w, tt.h, 1000)
		if got := p.ScreenToWorld(tt.screen); got != tt.want {
			t.Errorf("%vx%v: ScreenToWorld(%+v) = %+v, want %+v", tt.w, tt.h, tt.screen, got, tt.want)
		}
	}
}

func TestProjectionZeroHeight(t *testing.T) {
	p := NewProjection(100, 0, 1000)
	if p.Aspect != 0 || p.FOV != 0 {
		t.Errorf("zero height should leave Aspect/FOV unset, got %v/%v", p.Aspect, p.FOV)
	}
	if p.PixelsPerUnit() != 0 {
		t.Errorf("PixelsPerUnit = %v, want 0", p.PixelsPerUnit())
	}
}
