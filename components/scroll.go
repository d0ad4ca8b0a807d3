package components

import (
	"github.com/automoto/scrollfx/shared/motion"
	"github.com/yohamta/donburi"
)

// ScrollData is the smooth-scroll state of the page. The page renderer translates
// content by -Current.
type ScrollData struct {
	motion.ScrollState
}

var Scroll = donburi.NewComponentType[ScrollData]()
