package systems

import (
	"testing"

	"github.com/automoto/scrollfx/components"
	cfg "github.com/automoto/scrollfx/config"
	"github.com/automoto/scrollfx/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestSelectTexture(t *testing.T) {
	tests := []struct {
		name        string
		start       int
		index       int
		wantOK      bool
		wantTexture int
		wantSFX     int
	}{
		{name: "new texture", start: 0, index: 2, wantOK: true, wantTexture: 2, wantSFX: 1},
		{name: "same texture", start: 1, index: 1, wantOK: true, wantTexture: 1, wantSFX: 0},
		{name: "first texture", start: 2, index: 0, wantOK: true, wantTexture: 0, wantSFX: 1},
		{name: "past the end", start: 1, index: 3, wantOK: false, wantTexture: 1, wantSFX: 0},
		{name: "far past the end", start: 2, index: 5, wantOK: false, wantTexture: 2, wantSFX: 0},
		{name: "negative", start: 0, index: -1, wantOK: false, wantTexture: 0, wantSFX: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestWorld(t)
			_, hover := planeOf(t, e)
			hover.ActiveTexture = tt.start

			if ok := SelectTexture(e, tt.index); ok != tt.wantOK {
				t.Errorf("SelectTexture(%d) = %v, want %v", tt.index, ok, tt.wantOK)
			}
			if hover.ActiveTexture != tt.wantTexture {
				t.Errorf("ActiveTexture = %d, want %d", hover.ActiveTexture, tt.wantTexture)
			}
			if got := pendingSFX(e); got != tt.wantSFX {
				t.Errorf("queued %d sounds, want %d", got, tt.wantSFX)
			}
		})
	}
}

func TestEnterExitLinkOpacity(t *testing.T) {
	saved := cfg.Nav
	defer func() { cfg.Nav = saved }()
	cfg.Nav.HoveredOpacity = 0.7
	cfg.Nav.IdleOpacity = 0.3

	e := newTestWorld(t)
	if got := linkOpacity(t, e, 1); got != 1 {
		t.Fatalf("initial opacity = %v, want 1", got)
	}

	EnterLink(e, 1)
	if got := linkOpacity(t, e, 1); got != 0.7 {
		t.Errorf("opacity after enter = %v, want 0.7", got)
	}
	if got := linkOpacity(t, e, 0); got != 1 {
		t.Errorf("other link opacity = %v, want 1", got)
	}
	_, hover := planeOf(t, e)
	if hover.ActiveTexture != 1 {
		t.Errorf("ActiveTexture = %d, want 1", hover.ActiveTexture)
	}

	ExitLink(e, 1)
	if got := linkOpacity(t, e, 1); got != 0.3 {
		t.Errorf("opacity after exit = %v, want 0.3", got)
	}
}

func TestEnterLinkOutOfRangeTexture(t *testing.T) {
	e := newTestWorld(t)
	_, hover := planeOf(t, e)
	hover.ActiveTexture = 2

	// Link 3 selects texture 5 of 3.
	EnterLink(e, 3)

	if hover.ActiveTexture != 2 {
		t.Errorf("ActiveTexture = %d, want 2", hover.ActiveTexture)
	}
	if got := pendingSFX(e); got != 0 {
		t.Errorf("queued %d sounds, want 0", got)
	}
	if got := linkOpacity(t, e, 3); got != cfg.Nav.HoveredOpacity {
		t.Errorf("opacity = %v, want %v", got, cfg.Nav.HoveredOpacity)
	}
}

func TestEnterUnknownLink(t *testing.T) {
	e := newTestWorld(t)
	EnterLink(e, 42)
	ExitLink(e, -1)

	_, hover := planeOf(t, e)
	if hover.ActiveTexture != 0 {
		t.Errorf("ActiveTexture = %d, want 0", hover.ActiveTexture)
	}
}

func TestListHoverTogglesPlane(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreatePlane(e, nil)
	factory.CreateNav(e, testLayout())
	BindNav(e)

	navEntry, ok := components.Nav.First(e.World)
	if !ok {
		t.Fatal("no nav entity")
	}
	nav := components.Nav.Get(navEntry).UI
	_, hover := planeOf(t, e)

	steps := []struct {
		fire func()
		want bool
	}{
		{nav.OnListEnter, true},
		{nav.OnListExit, false},
		{nav.OnListEnter, true},
	}
	for i, step := range steps {
		step.fire()
		if hover.Hovered != step.want {
			t.Errorf("step %d: Hovered = %v, want %v", i, hover.Hovered, step.want)
		}
	}
}
