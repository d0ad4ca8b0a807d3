package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Space is the page-space collision grid used to find the sections in view.
var Space = donburi.NewComponentType[resolv.Space]()
