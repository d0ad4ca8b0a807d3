package components

import (
	"github.com/automoto/scrollfx/shared/pagedata"
	"github.com/yohamta/donburi"
)

type PageData struct {
	Layout *pagedata.Layout
}

var Page = donburi.NewComponentType[PageData]()
