package components

import (
	"github.com/automoto/scrollfx/shared/pagedata"
	"github.com/yohamta/donburi"
)

// SectionData stores one block of page content. Its bounds live in the Object component.
type SectionData struct {
	pagedata.Section
	Visible bool // Overlaps the viewport this frame
}

var Section = donburi.NewComponentType[SectionData]()
