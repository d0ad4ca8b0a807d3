package motion

// ScrollState eases a virtual scroll offset toward the real one.
type ScrollState struct {
	Target  float64 // real scroll offset in pixels
	Current float64 // eased offset applied to the page
	Ease    float64 // fraction of the remaining distance covered per tick, (0,1)
	Max     float64 // largest reachable offset (content height - viewport height)
}

// NewScrollState returns a state at rest at the top of the page.
func NewScrollState(ease float64) ScrollState {
	return ScrollState{Ease: ease}
}

// Step eases Current toward Target once.
func (s *ScrollState) Step() {
	s.Current = Lerp(s.Current, s.Target, s.Ease)
}

// SetTarget moves the real scroll offset, clamped to the page extent.
func (s *ScrollState) SetTarget(y float64) {
	s.Target = Clamp(y, 0, s.Max)
}

// ScrollBy moves the real scroll offset by dy.
func (s *ScrollState) ScrollBy(dy float64) {
	s.SetTarget(s.Target + dy)
}

// SetExtent recomputes Max from the content and viewport heights and re-clamps the target.
// Current is left alone so a resize never jumps the page.
func (s *ScrollState) SetExtent(contentHeight, viewportHeight float64) {
	s.Max = contentHeight - viewportHeight
	if s.Max < 0 {
		s.Max = 0
	}
	s.SetTarget(s.Target)
}

// Settled reports whether Current is within eps of Target.
func (s *ScrollState) Settled(eps float64) bool {
	d := s.Target - s.Current
	return d < eps && d > -eps
}
