package components

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tardionchain/tardi/brain"
	"github.com/yohamta/donburi"
)

// BrainData is the mounted matrix brain. The trail image persists between frames so the
// fade leaves motion trails; it is sized in device pixels.
type BrainData struct {
	Loop  *brain.Loop
	Trail *ebiten.Image

	// Viewport the field and trail were last sized for
	Width, Height int     // Logical pixels
	Scale         float64 // Device pixels per logical pixel

	// Offset of the canvas inside the window, logical pixels
	X, Y int

	Started time.Time
}

var Brain = donburi.NewComponentType[BrainData]()
