package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// IntroData fades the page in after load.
type IntroData struct {
	Tween    *gween.Tween
	Progress float32 // 0 = hidden, 1 = fully shown
	Done     bool
}

var Intro = donburi.NewComponentType[IntroData]()
