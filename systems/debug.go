package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tardionchain/tardi/brain"
	"github.com/tardionchain/tardi/components"
	cfg "github.com/tardionchain/tardi/config"
	"github.com/tardionchain/tardi/fonts"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug shows frame timing and brain state in the top left corner
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	var loop *brain.Loop
	scale := cfg.C.DPR
	if entry, ok := components.Brain.First(ecs.World); ok {
		b := components.Brain.Get(entry)
		loop = b.Loop
		scale = b.Scale
	}
	lines := debugLines(ebiten.ActualFPS(), ebiten.ActualTPS(), scale, loop)

	face := fonts.Mono.Get()
	lineHeight := face.Metrics().Height.Ceil()
	x, y := cfg.UI.Padding, cfg.UI.NavHeight+cfg.UI.Padding

	vector.FillRect(screen, float32(x-4), float32(y-4), 220, float32(lineHeight*len(lines)+8), cfg.BlackOverlay, false)
	for i, l := range lines {
		var clr color.Color = cfg.Green
		if i == 0 {
			clr = cfg.Yellow
		}
		text.Draw(screen, l, face, x, y+lineHeight*(i+1)-lineHeight/4, clr)
	}
}

// debugLines formats the overlay. loop is nil while no brain is mounted.
func debugLines(fps, tps, scale float64, loop *brain.Loop) []string {
	lines := []string{
		fmt.Sprintf("FPS %.1f  TPS %.1f", fps, tps),
		fmt.Sprintf("DPR %.2f", scale),
	}
	if loop == nil {
		return append(lines, "brain: unmounted")
	}

	f := loop.Field
	state := "running"
	if loop.Paused() {
		state = "paused"
	}
	return append(lines,
		fmt.Sprintf("brain: %s", state),
		fmt.Sprintf("points %d  edges %d", len(f.Points), len(f.Edges)),
		fmt.Sprintf("signals %d", f.SignalCount()),
		fmt.Sprintf("rotation %.2f", f.Rotation),
		fmt.Sprintf("radius %.1f", f.Radius),
		fmt.Sprintf("canvas %.0fx%.0f", f.Width, f.Height),
	)
}
