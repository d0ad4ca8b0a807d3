package motion

// HoverUniform is the eased alpha fed to the plane shader.
type HoverUniform struct {
	Alpha float64 // [0, 1]
	Ease  float64
}

// Step eases Alpha toward 1 while hovered and toward 0 otherwise.
func (h *HoverUniform) Step(hovered bool) {
	target := 0.0
	if hovered {
		target = 1
	}
	h.Alpha = Clamp01(Lerp(h.Alpha, target, h.Ease))
}
