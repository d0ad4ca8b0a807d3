package components

import (
	"github.com/automoto/scrollfx/shared/pagedata"
	"github.com/automoto/scrollfx/ui"
	"github.com/yohamta/donburi"
)

// NavLinkData stores one navigation entry and its current opacity.
type NavLinkData struct {
	pagedata.Link
	Opacity float64
}

var NavLink = donburi.NewComponentType[NavLinkData]()

// NavData owns the widget tree for the navigation list.
type NavData struct {
	UI *ui.NavUI
}

var Nav = donburi.NewComponentType[NavData]()
