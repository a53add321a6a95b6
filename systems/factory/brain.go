package factory

import (
	"image"
	"math"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tardionchain/tardi/archetypes"
	"github.com/tardionchain/tardi/brain"
	"github.com/tardionchain/tardi/components"
	cfg "github.com/tardionchain/tardi/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBrain mounts the matrix brain on the logical rect of the window. The field and
// trail image work in device pixels, scale device pixels per logical pixel.
func CreateBrain(ecs *ecs.ECS, rect image.Rectangle, scale float64, rng *rand.Rand) *donburi.Entry {
	entry := archetypes.Brain.Spawn(ecs)

	dw, dh := DeviceSize(rect.Dx(), rect.Dy(), scale)
	field := brain.NewField(cfg.Brain, float64(dw), float64(dh), rng)
	renderer := brain.NewRenderer(cfg.Brain, rng)
	renderer.SetPixelRatio(scale)

	components.Brain.SetValue(entry, components.BrainData{
		Loop:    brain.NewLoop(field, renderer),
		Trail:   NewTrail(dw, dh),
		Width:   rect.Dx(),
		Height:  rect.Dy(),
		Scale:   scale,
		X:       rect.Min.X,
		Y:       rect.Min.Y,
		Started: time.Now(),
	})

	return entry
}

// NewTrail allocates the persistent trail image, nil for an empty canvas
func NewTrail(width, height int) *ebiten.Image {
	if width <= 0 || height <= 0 {
		return nil
	}
	return ebiten.NewImage(width, height)
}

// DeviceSize converts a logical size to device pixels
func DeviceSize(width, height int, scale float64) (int, int) {
	if scale <= 0 || math.IsNaN(scale) {
		scale = 1
	}
	dw := int(math.Round(float64(width) * scale))
	dh := int(math.Round(float64(height) * scale))
	return max(dw, 0), max(dh, 0)
}
