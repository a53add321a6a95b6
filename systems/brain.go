package systems

import (
	"image"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tardionchain/tardi/components"
	cfg "github.com/tardionchain/tardi/config"
	"github.com/tardionchain/tardi/systems/factory"
	"github.com/tardionchain/tardi/tags"
	"github.com/yohamta/donburi/ecs"
)

// BrainRect is the logical area the brain canvas covers: the window between the
// navigation bar and the footer
func BrainRect(width, height int) image.Rectangle {
	top := cfg.UI.NavHeight
	bottom := max(height-cfg.UI.FooterHeight, top)
	return image.Rect(0, top, max(width, 0), bottom)
}

// MountBrain creates the brain and its hover inspector for the current viewport.
// It does nothing when a brain is already mounted.
func MountBrain(e *ecs.ECS) {
	if _, ok := components.Brain.First(e.World); ok {
		return
	}

	seed := cfg.Debug.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	rect := BrainRect(cfg.C.Width, cfg.C.Height)
	entry := factory.CreateBrain(e, rect, cfg.C.DPR, rng)
	b := components.Brain.Get(entry)
	b.Loop.SetPaused(GetOrCreateSettings(e).Paused)

	factory.CreateInspector(e, len(b.Loop.Field.Points), cfg.C.Width, cfg.C.Height)

	if cfg.Debug.Overlay {
		log.Printf("Brain mounted: %d points, %dx%d at scale %.2f, seed %d",
			len(b.Loop.Field.Points), rect.Dx(), rect.Dy(), cfg.C.DPR, seed)
	}
}

// UnmountBrain stops the loop and releases the trail image. No frame is stepped or
// drawn after this returns.
func UnmountBrain(e *ecs.ECS) {
	if entry, ok := tags.Brain.First(e.World); ok {
		b := components.Brain.Get(entry)
		b.Loop.Stop()
		if b.Trail != nil {
			b.Trail.Deallocate()
			b.Trail = nil
		}
		e.World.Remove(entry.Entity())
	}
	if entry, ok := tags.Inspector.First(e.World); ok {
		e.World.Remove(entry.Entity())
	}
}

// UpdateBrain follows viewport changes and advances the simulation one frame
func UpdateBrain(e *ecs.ECS) {
	entry, ok := components.Brain.First(e.World)
	if !ok {
		return
	}
	b := components.Brain.Get(entry)
	if !b.Loop.Running() {
		return
	}

	syncViewport(b, BrainRect(cfg.C.Width, cfg.C.Height), cfg.C.DPR)
	b.Loop.Tick(time.Since(b.Started))
}

// syncViewport resizes the field and trail when the window size or scale changed
func syncViewport(b *components.BrainData, rect image.Rectangle, scale float64) {
	b.X, b.Y = rect.Min.X, rect.Min.Y
	if rect.Dx() == b.Width && rect.Dy() == b.Height && scale == b.Scale {
		return
	}

	dw, dh := factory.DeviceSize(rect.Dx(), rect.Dy(), scale)
	b.Loop.Field.Resize(float64(dw), float64(dh))
	b.Loop.Renderer.SetPixelRatio(scale)

	if b.Trail != nil {
		b.Trail.Deallocate()
	}
	b.Trail = factory.NewTrail(dw, dh)
	b.Loop.Invalidate()
	b.Width, b.Height, b.Scale = rect.Dx(), rect.Dy(), scale
}

// DrawBrain renders a stepped frame into the trail image and composites the trail onto
// the page. Extra draws between updates reuse the trail unchanged.
func DrawBrain(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Brain.First(e.World)
	if !ok {
		return
	}
	b := components.Brain.Get(entry)
	if b.Trail == nil {
		return
	}
	if !b.Loop.Draw(newImageCanvas(b.Trail)) {
		return
	}

	op := &ebiten.DrawImageOptions{}
	if b.Scale > 0 {
		op.GeoM.Scale(1/b.Scale, 1/b.Scale)
	}
	op.GeoM.Translate(float64(b.X), float64(b.Y))
	op.ColorScale.ScaleAlpha(cfg.UI.BrainOpacity)
	op.Blend = ebiten.BlendLighter
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(b.Trail, op)
}
