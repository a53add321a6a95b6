package scenes

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tardionchain/tardi/assets"
	cfg "github.com/tardionchain/tardi/config"
	"github.com/tardionchain/tardi/systems"
	"github.com/tardionchain/tardi/ui"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LandingScene is the single page scene: sections, the brain animation and overlays
type LandingScene struct {
	ecs       *ecs.ECS
	landingUI *ui.LandingUI
	once      sync.Once
}

// NewLandingScene creates the landing scene. It is configured on the first update.
func NewLandingScene() *LandingScene {
	return &LandingScene{}
}

func (ls *LandingScene) Update() {
	ls.once.Do(ls.configure)

	ls.ecs.Update()
	ls.landingUI.Update()
}

func (ls *LandingScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Theme.Background)

	if ls.ecs == nil {
		return
	}

	ls.ecs.DrawLayer(cfg.Default, screen)
	ls.landingUI.Draw(screen)
	ls.ecs.DrawLayer(cfg.Overlay, screen)
}

// ShouldQuit reports whether the user asked to close the window
func (ls *LandingScene) ShouldQuit() bool {
	if ls.ecs == nil {
		return false
	}
	return systems.QuitRequested(ls.ecs)
}

// Close unmounts the brain so nothing runs after the window goes away
func (ls *LandingScene) Close() {
	if ls.ecs != nil {
		systems.UnmountBrain(ls.ecs)
	}
}

func (ls *LandingScene) configure() {
	// Synthesize sounds up front to avoid lag on first use
	systems.PreloadAllSFX()

	if assets.GlowShader == nil {
		if err := assets.LoadShaders(); err != nil {
			panic("failed to load shaders: " + err.Error())
		}
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first)
	ecs.AddSystem(systems.UpdateAudio)

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateNav)
	ecs.AddSystem(systems.UpdateBrain)
	ecs.AddSystem(systems.UpdateInspector)
	ecs.AddSystem(systems.UpdateFAQ)
	ecs.AddSystem(systems.UpdateCopy)
	ecs.AddSystem(systems.UpdateReveal)

	// Brain canvas under the page, overlays above it
	ecs.AddRenderer(cfg.Default, systems.DrawBrain)
	ecs.AddRenderer(cfg.Overlay, systems.DrawInspector)
	ecs.AddRenderer(cfg.Overlay, systems.DrawDebug)

	ls.ecs = ecs

	// Page singletons before the interface reads them
	systems.GetOrCreateSettings(ecs)
	systems.GetOrCreateAudio(ecs)
	systems.GetOrCreateNav(ecs)

	ls.landingUI = ui.NewLandingUI(ecs)
}
