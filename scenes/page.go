package scenes

import (
	"fmt"
	"sync"

	"github.com/automoto/scrollfx/assets"
	cfg "github.com/automoto/scrollfx/config"
	"github.com/automoto/scrollfx/shared/motion"
	"github.com/automoto/scrollfx/systems"
	"github.com/automoto/scrollfx/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Cell size of the page-space grid used for section culling.
const spaceCellSize = 64

// PageScene is the smooth-scrolling page with the navigation list and the hover plane.
// Its world is the only owner of scroll, pointer and hover state.
type PageScene struct {
	ecs      *ecs.ECS
	pageName string
	once     sync.Once

	width, height int

	// The two frame loops. Stopping them freezes the page without tearing down the world.
	scrollTask *motion.Task
	renderTask *motion.Task
	disposed   bool
}

// NewPageScene creates a scene for the named page layout.
func NewPageScene(pageName string, width, height int) *PageScene {
	return &PageScene{
		pageName:   pageName,
		width:      width,
		height:     height,
		scrollTask: motion.NewTask("scroll", nil),
		renderTask: motion.NewTask("render", nil),
	}
}

func (ps *PageScene) Update() {
	ps.once.Do(ps.configure)
	if ps.disposed {
		return
	}
	ps.ecs.Update()

	if systems.QuitRequested(ps.ecs) {
		ps.Dispose()
	}
}

func (ps *PageScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Page.BackgroundColor)

	if ps.ecs == nil || ps.disposed {
		return
	}
	ps.ecs.Draw(screen)
}

// Resize reacts to a new window size. Only the projection and the scroll extent change.
func (ps *PageScene) Resize(width, height int) {
	ps.width, ps.height = width, height
	if ps.ecs == nil {
		return
	}
	systems.ResizeViewport(ps.ecs, width, height)
}

// Dispose stops both frame loops. The scene draws nothing afterwards.
func (ps *PageScene) Dispose() {
	ps.scrollTask.Stop()
	ps.renderTask.Stop()
	ps.disposed = true
}

// Disposed reports whether Dispose has been called.
func (ps *PageScene) Disposed() bool {
	return ps.disposed
}

func (ps *PageScene) configure() {
	// Preload assets to avoid lag on first use (important for WASM)
	systems.PreloadAllSFX()

	layout, err := assets.LoadPage(ps.pageName)
	if err != nil {
		panic(fmt.Sprintf("failed to load page %s: %v", ps.pageName, err))
	}
	textures, err := assets.LoadTextures(layout.Textures)
	if err != nil {
		panic(fmt.Sprintf("failed to load textures for page %s: %v", ps.pageName, err))
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first)
	ecs.AddSystem(systems.UpdateAudio)

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateIntro)

	// Scroll-smoothing loop
	ecs.AddSystem(systems.WithTask(ps.scrollTask,
		systems.UpdateScroll,
		systems.UpdateViewport,
	))

	// Scene-render loop. The nav fires the hover callbacks the plane reads.
	ecs.AddSystem(systems.WithTask(ps.renderTask,
		systems.UpdatePointer,
		systems.UpdateNav,
		systems.UpdatePlane,
	))

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawPage)
	ecs.AddRenderer(cfg.Default, systems.WithTaskRenderer(ps.renderTask, systems.DrawPlane))
	ecs.AddRenderer(cfg.Overlay, systems.DrawNav)
	ecs.AddRenderer(cfg.Overlay, systems.DrawDebug)

	ps.ecs = ecs

	// The space covers the whole page so every section can be culled against the viewport.
	factory.CreateSpace(ps.ecs, layout.Width, layout.Height, spaceCellSize, spaceCellSize)
	factory.CreateCamera(ps.ecs, ps.width, ps.height)
	factory.CreatePage(ps.ecs, layout, ps.height)
	for _, section := range layout.Sections {
		factory.CreateSection(ps.ecs, section)
	}
	factory.CreateViewport(ps.ecs, ps.width, ps.height)

	factory.CreatePointer(ps.ecs)
	factory.CreatePlane(ps.ecs, textures)
	factory.CreateNav(ps.ecs, layout)
	systems.BindNav(ps.ecs)
	factory.CreateIntro(ps.ecs)
	factory.CreateLoops(ps.ecs, ps.scrollTask, ps.renderTask)

	ps.scrollTask.Start()
	ps.renderTask.Start()
}
