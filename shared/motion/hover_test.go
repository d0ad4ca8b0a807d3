package motion

import "testing"

func TestHoverAlphaRisesToOne(t *testing.T) {
	h := HoverUniform{Ease: 0.1}
	prev := h.Alpha
	for i := 0; i < 500; i++ {
		h.Step(true)
		if h.Alpha < prev {
			t.Fatalf("alpha decreased while hovered at tick %d: %v < %v", i, h.Alpha, prev)
		}
		if h.Alpha > 1 {
			t.Fatalf("alpha exceeded 1 at tick %d: %v", i, h.Alpha)
		}
		prev = h.Alpha
	}
	if h.Alpha < 0.999 {
		t.Errorf("alpha = %v after 500 hovered ticks, want ~1", h.Alpha)
	}
}

func TestHoverAlphaFallsToZero(t *testing.T) {
	h := HoverUniform{Alpha: 1, Ease: 0.1}
	prev := h.Alpha
	for i := 0; i < 500; i++ {
		h.Step(false)
		if h.Alpha > prev {
			t.Fatalf("alpha increased while not hovered at tick %d", i)
		}
		if h.Alpha < 0 {
			t.Fatalf("alpha went negative at tick %d: %v", i, h.Alpha)
		}
		prev = h.Alpha
	}
	if h.Alpha > 0.001 {
		t.Errorf("alpha = %v after 500 idle ticks, want ~0", h.Alpha)
	}
}

func TestHoverAlphaToggle(t *testing.T) {
	h := HoverUniform{Ease: 0.5}
	h.Step(true)
	h.Step(true)
	up := h.Alpha
	h.Step(false)
	if h.Alpha >= up {
		t.Errorf("alpha = %v after leaving, want below %v", h.Alpha, up)
	}
}
