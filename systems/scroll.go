package systems

import (
	"github.com/automoto/scrollfx/components"
	cfg "github.com/automoto/scrollfx/config"
	"github.com/automoto/scrollfx/shared/motion"
	"github.com/yohamta/donburi/ecs"
)

// UpdateScroll is the scroll-smoothing loop: move the real offset from input, then ease
// the displayed offset toward it. DrawPage applies -Current as the page translation.
func UpdateScroll(e *ecs.ECS) {
	pageEntry, ok := components.Scroll.First(e.World)
	if !ok {
		return
	}
	scroll := components.Scroll.Get(pageEntry)

	if dy := scrollDelta(e); dy != 0 {
		scroll.ScrollBy(dy)
	}
	applyJumps(e, &scroll.ScrollState)

	// At rest the page stops easing and sits exactly on the target.
	if scroll.Settled(cfg.Scroll.SettleEps) {
		scroll.Current = scroll.Target
		return
	}
	scroll.Step()
}

// scrollDelta converts this frame's wheel, key and stick input into a target offset
// change in pixels. Positive scrolls down the page.
func scrollDelta(e *ecs.ECS) float64 {
	input := getOrCreateInput(e)
	dy := -input.WheelY * cfg.Scroll.WheelStep
	dy += input.AnalogY * cfg.Input.AnalogScrollSpeed

	delay, interval := cfg.Scroll.KeyRepeatDelay, cfg.Scroll.KeyRepeatInterval

	if Repeating(input, cfg.ActionScrollUp, delay, interval) {
		dy -= cfg.Scroll.KeyStep
	}
	if Repeating(input, cfg.ActionScrollDown, delay, interval) {
		dy += cfg.Scroll.KeyStep
	}

	page := viewportHeight(e) * cfg.Scroll.PageRatio
	if Repeating(input, cfg.ActionPageUp, delay, interval) {
		dy -= page
	}
	if Repeating(input, cfg.ActionPageDown, delay, interval) {
		dy += page
	}
	return dy
}

// applyJumps handles Home/End. SetTarget clamps to the page extent.
func applyJumps(e *ecs.ECS, scroll *motion.ScrollState) {
	input := getOrCreateInput(e)
	if GetAction(input, cfg.ActionTop).JustPressed {
		scroll.SetTarget(0)
	}
	if GetAction(input, cfg.ActionBottom).JustPressed {
		scroll.SetTarget(scroll.Max)
	}
}
