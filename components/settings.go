package components

import "github.com/yohamta/donburi"

// SettingsData stores session toggles driven by hotkeys (singleton component)
type SettingsData struct {
	Debug      bool // Debug overlay visible
	Fullscreen bool
	Paused     bool // Brain simulation frozen
	Quit       bool // Set once the user asked to close the window
}

var Settings = donburi.NewComponentType[SettingsData]()
