package main

import (
	"flag"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tardionchain/tardi/config"
	"github.com/tardionchain/tardi/fonts"
	"github.com/tardionchain/tardi/scenes"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	ShouldQuit() bool
	Close()
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame() *Game {
	if err := fonts.LoadAll(config.UI.DebugFontSize, config.UI.HUDFontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewLandingScene(),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.scene.ShouldQuit() {
		g.scene.Close()
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout keeps the logical screen equal to the window size and records the device
// scale so the brain canvas renders at full resolution
func (g *Game) Layout(width, height int) (int, int) {
	config.C.Width, config.C.Height = width, height
	if m := ebiten.Monitor(); m != nil {
		config.C.DPR = m.DeviceScaleFactor()
	}
	g.bounds = image.Rect(0, 0, width, height)
	return width, height
}

func main() {
	debug := flag.Bool("debug", config.Debug.Overlay, "show the debug overlay")
	seed := flag.Int64("seed", config.Debug.Seed, "random seed for the brain (0 = from clock)")
	points := flag.Int("points", config.Brain.NumPoints, "number of neurons")
	tab := flag.String("tab", config.Debug.StartTab.String(), "section shown at start")
	fullscreen := flag.Bool("fullscreen", config.Debug.Fullscreen, "start in fullscreen")
	volume := flag.Float64("volume", config.Audio.DefaultSFXVol, "sound effect volume (0-1)")
	flag.Parse()

	startTab, err := config.ParseTab(*tab)
	if err != nil {
		log.Fatalf("Invalid -tab: %v", err)
	}
	if *points < 1 {
		log.Fatalf("Invalid -points %d: need at least one neuron", *points)
	}

	config.Debug.Overlay = *debug
	config.Debug.Seed = *seed
	config.Debug.StartTab = startTab
	config.Debug.Fullscreen = *fullscreen
	config.Brain.NumPoints = *points
	config.Audio.DefaultSFXVol = min(max(*volume, 0), 1)

	ebiten.SetWindowTitle(config.Window.Title)
	ebiten.SetWindowSize(config.Window.DefaultWidth, config.Window.DefaultHeight)
	ebiten.SetWindowSizeLimits(config.Window.MinWidth, config.Window.MinHeight, -1, -1)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(config.Debug.Fullscreen)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
