package tags

import "github.com/yohamta/donburi"

var (
	Page     = donburi.NewTag().SetName("Page")
	Section  = donburi.NewTag().SetName("Section")
	Plane    = donburi.NewTag().SetName("Plane")
	NavLink  = donburi.NewTag().SetName("NavLink")
	Viewport = donburi.NewTag().SetName("Viewport")
)

// Resolv tags for the page-space grid
const (
	ResolvSection  = "section"
	ResolvViewport = "viewport"
)
