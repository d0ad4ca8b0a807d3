package ui

import (
	"bytes"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// NavOptions controls the look of the navigation list.
type NavOptions struct {
	TextColor color.RGBA
	FontSize  float64

	// Screen position of the first link, item box size and gap between items
	X, Y                  int
	ItemWidth, ItemHeight int
	ItemSpacing           int
}

// NavUI is the fixed navigation list drawn over the page. It reports cursor enter/exit
// for each link and for the list as a whole.
type NavUI struct {
	UI *ebitenui.UI

	OnLinkEnter func(index int)
	OnLinkExit  func(index int)
	OnListEnter func()
	OnListExit  func()

	items     []*widget.Text
	textColor color.RGBA
	face      text.Face
}

func NewNavUI(labels []string, opts NavOptions) *NavUI {
	ui := &NavUI{textColor: opts.TextColor}
	ui.loadFonts(opts.FontSize)
	ui.buildUI(labels, opts)
	return ui
}

func (ui *NavUI) loadFonts(size float64) {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}
	ui.face = &text.GoTextFace{Source: fontSource, Size: size}
}

func (ui *NavUI) buildUI(labels []string, opts NavOptions) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	// The wrapper carries the padding so the hover area is only the list itself.
	padding := widget.Insets{Left: opts.X, Top: opts.Y}
	wrapper := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	list := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(opts.ItemSpacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.CursorEnterHandler(func(args *widget.WidgetCursorEnterEventArgs) {
				if ui.OnListEnter != nil {
					ui.OnListEnter()
				}
			}),
			widget.WidgetOpts.CursorExitHandler(func(args *widget.WidgetCursorExitEventArgs) {
				if ui.OnListExit != nil {
					ui.OnListExit()
				}
			}),
		),
	)

	for i, label := range labels {
		list.AddChild(ui.buildItem(i, label, opts.ItemWidth, opts.ItemHeight))
	}

	wrapper.AddChild(list)
	rootContainer.AddChild(wrapper)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *NavUI) buildItem(index int, label string, width, height int) *widget.Text {
	item := widget.NewText(
		widget.TextOpts.Text(label, &ui.face, ui.textColor),
		widget.TextOpts.Position(widget.TextPositionStart, widget.TextPositionCenter),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(width, height),
			widget.WidgetOpts.CursorEnterHandler(func(args *widget.WidgetCursorEnterEventArgs) {
				if ui.OnLinkEnter != nil {
					ui.OnLinkEnter(index)
				}
			}),
			widget.WidgetOpts.CursorExitHandler(func(args *widget.WidgetCursorExitEventArgs) {
				if ui.OnLinkExit != nil {
					ui.OnLinkExit(index)
				}
			}),
		),
	)
	ui.items = append(ui.items, item)
	return item
}

// SetOpacity changes the text alpha of link i. Out-of-range indices are ignored.
func (ui *NavUI) SetOpacity(i int, opacity float64) {
	if i < 0 || i >= len(ui.items) {
		return
	}
	c := ui.textColor
	c.A = uint8(float64(c.A) * opacity)
	// Text colors are premultiplied.
	c.R = uint8(float64(c.R) * opacity)
	c.G = uint8(float64(c.G) * opacity)
	c.B = uint8(float64(c.B) * opacity)
	ui.items[i].SetColor(c)
}
