package pagedata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group and property names used in page TMX files.
const (
	GroupNav      = "nav"
	GroupSections = "sections"

	PropTextures = "textures"
	PropTexture  = "texture"
	PropLabel    = "label"
	PropTitle    = "title"
	PropBody     = "body"
)

// Load parses a page TMX file. It takes an fs.FS so callers can pass an embed.FS or
// os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Layout, error) {
	pageMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	layout := &Layout{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  pageMap.Width * pageMap.TileWidth,
		Height: pageMap.Height * pageMap.TileHeight,
	}

	for _, tex := range strings.Split(pageMap.Properties.GetString(PropTextures), ",") {
		if tex = strings.TrimSpace(tex); tex != "" {
			layout.Textures = append(layout.Textures, tex)
		}
	}

	for _, og := range pageMap.ObjectGroups {
		switch og.Name {
		case GroupNav:
			objs := append([]*tiled.Object(nil), og.Objects...)
			// Links are listed top to bottom.
			sort.SliceStable(objs, func(i, j int) bool { return objs[i].Y < objs[j].Y })
			for i, o := range objs {
				label := o.Properties.GetString(PropLabel)
				if label == "" {
					label = o.Name
				}
				layout.Links = append(layout.Links, Link{
					Index:   i,
					Label:   label,
					Texture: o.Properties.GetInt(PropTexture),
					X:       o.X,
					Y:       o.Y,
					W:       o.Width,
					H:       o.Height,
				})
			}
		case GroupSections:
			for _, o := range og.Objects {
				layout.Sections = append(layout.Sections, Section{
					ID:    int(o.ID),
					Title: o.Properties.GetString(PropTitle),
					Body:  o.Properties.GetString(PropBody),
					X:     o.X,
					Y:     o.Y,
					W:     o.Width,
					H:     o.Height,
				})
			}
		}
	}

	sort.SliceStable(layout.Sections, func(i, j int) bool {
		return layout.Sections[i].Y < layout.Sections[j].Y
	})

	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("page %s: %w", tmxPath, err)
	}
	return layout, nil
}

// LoadAll discovers all .tmx files in dir within fsys and returns them keyed by stem name
// plus the sorted list of names.
func LoadAll(fsys fs.FS, dir string) (map[string]*Layout, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	pages := make(map[string]*Layout, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		layout, err := Load(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		pages[layout.Name] = layout
		names = append(names, layout.Name)
	}
	sort.Strings(names)
	return pages, names, nil
}

// Validate checks the structural invariants the renderer relies on. Link texture indices
// are not checked here; see OutOfRangeLinks.
func (l *Layout) Validate() error {
	var errs []error
	if l.Width <= 0 || l.Height <= 0 {
		errs = append(errs, fmt.Errorf("page size %dx%d must be positive", l.Width, l.Height))
	}
	if len(l.Links) == 0 {
		errs = append(errs, errors.New("no navigation links"))
	}
	for _, s := range l.Sections {
		if s.Y < 0 || s.Y+s.H > float64(l.Height) {
			errs = append(errs, fmt.Errorf("section %d spans %.0f..%.0f outside page height %d", s.ID, s.Y, s.Y+s.H, l.Height))
		}
	}
	return errors.Join(errs...)
}

// OutOfRangeLinks returns the links whose texture index has no entry in Textures.
// Hovering one of them must not change the active texture.
func (l *Layout) OutOfRangeLinks() []Link {
	var out []Link
	for _, link := range l.Links {
		if link.Texture < 0 || link.Texture >= len(l.Textures) {
			out = append(out, link)
		}
	}
	return out
}

// NavPlacement derives the list position and item geometry from the link boxes, which
// are ordered top to bottom.
func (l *Layout) NavPlacement() NavPlacement {
	if len(l.Links) == 0 {
		return NavPlacement{}
	}
	first := l.Links[0]
	p := NavPlacement{X: first.X, Y: first.Y, ItemWidth: first.W, ItemHeight: first.H}
	for i, link := range l.Links[1:] {
		p.X = min(p.X, link.X)
		p.ItemWidth = max(p.ItemWidth, link.W)
		p.ItemHeight = max(p.ItemHeight, link.H)

		prev := l.Links[i]
		gap := max(link.Y-(prev.Y+prev.H), 0)
		if i == 0 || gap < p.Spacing {
			p.Spacing = gap
		}
	}
	return p
}
