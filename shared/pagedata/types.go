package pagedata

// Layout is the parsed description of one page: its scrollable content blocks, the fixed
// navigation list and the ordered textures the links select.
type Layout struct {
	Name     string
	Width    int // content width in pixels
	Height   int // content height in pixels, the scroll extent before the viewport is subtracted
	Textures []string
	Links    []Link
	Sections []Section
}

// Link is one navigation entry. Texture indexes Layout.Textures and may be out of range.
// X, Y, W, H are the link's box in screen space.
type Link struct {
	Index      int
	Label      string
	Texture    int
	X, Y, W, H float64
}

// NavPlacement is where the navigation list sits on screen.
type NavPlacement struct {
	X, Y       float64 // top-left of the first link
	ItemWidth  float64 // widest link
	ItemHeight float64 // tallest link
	Spacing    float64 // smallest vertical gap between consecutive links
}

// Section is a block of page content positioned in page space.
type Section struct {
	ID         int
	Title      string
	Body       string
	X, Y, W, H float64
}
