package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tardionchain/tardi/components"
	cfg "github.com/tardionchain/tardi/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings applies the hotkey toggles: debug overlay, fullscreen, pause and quit
func UpdateSettings(e *ecs.ECS) {
	input := getOrCreateInput(e)
	s := GetOrCreateSettings(e)

	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		s.Debug = !s.Debug
	}
	if GetAction(input, cfg.ActionToggleFullscreen).JustPressed {
		s.Fullscreen = !s.Fullscreen
		ebiten.SetFullscreen(s.Fullscreen)
	}
	if GetAction(input, cfg.ActionTogglePause).JustPressed {
		s.Paused = !s.Paused
	}
	if GetAction(input, cfg.ActionQuit).JustPressed {
		s.Quit = true
	}

	if entry, ok := components.Brain.First(e.World); ok {
		components.Brain.Get(entry).Loop.SetPaused(s.Paused)
	}
}

// GetOrCreateSettings returns the settings singleton, seeded from the command line
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			Debug:      cfg.Debug.Overlay,
			Fullscreen: cfg.Debug.Fullscreen,
		})
	}
	return components.Settings.Get(entry)
}

// QuitRequested reports whether the user asked to close the window
func QuitRequested(e *ecs.ECS) bool {
	return GetOrCreateSettings(e).Quit
}
