package pagedata

import (
	"os"
	"strings"
	"testing"
	"testing/fstest"
)

const minimalPage = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="20" tilewidth="32" tileheight="32" infinite="0">
 <properties>
  <property name="textures" value="images/a.png, images/b.png"/>
 </properties>
 <objectgroup id="1" name="nav">
  <object id="1" name="second" x="0" y="80" width="100" height="40">
   <properties>
    <property name="label" value="Second"/>
    <property name="texture" type="int" value="1"/>
   </properties>
  </object>
  <object id="2" name="first" x="0" y="20" width="100" height="40">
   <properties>
    <property name="label" value="First"/>
    <property name="texture" type="int" value="0"/>
   </properties>
  </object>
  <object id="3" name="third" x="0" y="140" width="100" height="40">
   <properties>
    <property name="label" value="Third"/>
    <property name="texture" type="int" value="5"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="2" name="sections">
  <object id="4" name="lower" x="10" y="300" width="200" height="100">
   <properties>
    <property name="title" value="Lower"/>
    <property name="body" value="below"/>
   </properties>
  </object>
  <object id="5" name="upper" x="10" y="10" width="200" height="100">
   <properties>
    <property name="title" value="Upper"/>
    <property name="body" value="above"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

func TestLoadMinimalPage(t *testing.T) {
	fsys := fstest.MapFS{"pages/mini.tmx": {Data: []byte(minimalPage)}}

	layout, err := Load(fsys, "pages/mini.tmx")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if layout.Name != "mini" {
		t.Errorf("Name = %q, want mini", layout.Name)
	}
	if layout.Width != 320 || layout.Height != 640 {
		t.Errorf("size = %dx%d, want 320x640", layout.Width, layout.Height)
	}
	if got := strings.Join(layout.Textures, "|"); got != "images/a.png|images/b.png" {
		t.Errorf("Textures = %q", got)
	}

	wantLabels := []string{"First", "Second", "Third"}
	if len(layout.Links) != len(wantLabels) {
		t.Fatalf("got %d links, want %d", len(layout.Links), len(wantLabels))
	}
	for i, want := range wantLabels {
		if layout.Links[i].Label != want || layout.Links[i].Index != i {
			t.Errorf("link %d = %+v, want label %q", i, layout.Links[i], want)
		}
	}

	if len(layout.Sections) != 2 || layout.Sections[0].Title != "Upper" {
		t.Errorf("sections not ordered top to bottom: %+v", layout.Sections)
	}

	wantNav := NavPlacement{X: 0, Y: 20, ItemWidth: 100, ItemHeight: 40, Spacing: 20}
	if got := layout.NavPlacement(); got != wantNav {
		t.Errorf("NavPlacement = %+v, want %+v", got, wantNav)
	}

	bad := layout.OutOfRangeLinks()
	if len(bad) != 1 || bad[0].Label != "Third" {
		t.Errorf("OutOfRangeLinks = %+v, want only Third", bad)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(fstest.MapFS{}, "pages/none.tmx"); err == nil {
		t.Fatal("expected error for missing page")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		layout  Layout
		wantErr bool
	}{
		{
			name:   "valid",
			layout: Layout{Width: 100, Height: 100, Links: []Link{{Label: "a"}}},
		},
		{
			name:    "no links",
			layout:  Layout{Width: 100, Height: 100},
			wantErr: true,
		},
		{
			name:    "empty page",
			layout:  Layout{Links: []Link{{Label: "a"}}},
			wantErr: true,
		},
		{
			name: "section past the bottom",
			layout: Layout{
				Width: 100, Height: 100,
				Links:    []Link{{Label: "a"}},
				Sections: []Section{{ID: 1, Y: 50, H: 80}},
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.layout.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadBundledPages(t *testing.T) {
	pages, names, err := LoadAll(os.DirFS("../../assets"), "pages")
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	home, ok := pages["home"]
	if !ok {
		t.Fatalf("home page missing, got %v", names)
	}
	if len(home.Textures) != 6 {
		t.Errorf("home has %d textures, want 6", len(home.Textures))
	}
	if len(home.Links) != 7 {
		t.Errorf("home has %d links, want 7", len(home.Links))
	}
	// The last link points past the texture list and must be reported.
	bad := home.OutOfRangeLinks()
	if len(bad) != 1 || bad[0].Index != 6 {
		t.Errorf("OutOfRangeLinks = %+v, want the seventh link", bad)
	}

	wantNav := NavPlacement{X: 64, Y: 200, ItemWidth: 220, ItemHeight: 44, Spacing: 12}
	if got := home.NavPlacement(); got != wantNav {
		t.Errorf("home NavPlacement = %+v, want %+v", got, wantNav)
	}
}

func TestNavPlacement(t *testing.T) {
	tests := []struct {
		name  string
		links []Link
		want  NavPlacement
	}{
		{name: "no links"},
		{
			name:  "single link",
			links: []Link{{X: 10, Y: 30, W: 80, H: 20}},
			want:  NavPlacement{X: 10, Y: 30, ItemWidth: 80, ItemHeight: 20},
		},
		{
			name: "uneven gaps take the smallest",
			links: []Link{
				{X: 20, Y: 0, W: 50, H: 10},
				{X: 10, Y: 30, W: 90, H: 10},
				{X: 20, Y: 45, W: 50, H: 12},
			},
			want: NavPlacement{X: 10, Y: 0, ItemWidth: 90, ItemHeight: 12, Spacing: 5},
		},
		{
			name: "overlapping links clamp the gap to zero",
			links: []Link{
				{Y: 0, W: 50, H: 40},
				{Y: 20, W: 50, H: 40},
			},
			want: NavPlacement{ItemWidth: 50, ItemHeight: 40},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout := Layout{Links: tt.links}
			if got := layout.NavPlacement(); got != tt.want {
				t.Errorf("NavPlacement = %+v, want %+v", got, tt.want)
			}
		})
	}
}
