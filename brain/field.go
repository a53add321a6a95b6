package brain

import (
	"math"
	"math/rand"
	"slices"
	"sort"

	"github.com/tardionchain/tardi/config"
)

// Field owns all mutable animation state. It lives exactly as long as the mounted
// brain and is only touched from the frame loop, so it carries no locks.
type Field struct {
	cfg config.BrainConfig
	rng *rand.Rand

	Points []Point
	Edges  []Edge
	Order  []int // Point indices, back to front

	degree []int

	BaseRadius float64 // Radius the points were generated on
	Radius     float64 // Current radius, follows the canvas size
	Width      float64
	Height     float64

	Rotation float64
	Clock    float64 // Accumulated frame time in ms
}

// RadiusFor returns the sphere radius for a canvas size
func RadiusFor(cfg config.BrainConfig, width, height float64) float64 {
	r := math.Min(width, height) * cfg.RadiusFactor
	if r < 0 || math.IsNaN(r) {
		return 0
	}
	return r
}

// NewField generates the point set for a canvas of the given size. A zero-sized
// canvas defers generation to the first Resize that gives it room.
func NewField(cfg config.BrainConfig, width, height float64, rng *rand.Rand) *Field {
	f := &Field{
		cfg:    cfg,
		rng:    rng,
		Width:  width,
		Height: height,
	}
	f.generate(RadiusFor(cfg, width, height))
	return f
}

// generate places the points on a sphere of the given radius and drops all edges
func (f *Field) generate(radius float64) {
	f.Points = GeneratePoints(f.cfg.NumPoints, radius, f.rng)
	f.Edges = nil
	f.BaseRadius = radius
	f.Radius = radius
	f.degree = make([]int, len(f.Points))
	f.Order = make([]int, len(f.Points))
	for i := range f.Order {
		f.Order[i] = i
	}

	// Screen positions are valid before the first step
	f.projectPoints()
	f.sortByDepth()
}

// Resize updates the canvas size and sphere radius. Points are kept; projection
// rescales them from the radius they were generated on. Points generated on an
// empty canvas all sit at the origin, so the first real size generates them anew.
func (f *Field) Resize(width, height float64) {
	f.Width = width
	f.Height = height
	radius := RadiusFor(f.cfg, width, height)
	if f.BaseRadius == 0 && radius > 0 {
		f.generate(radius)
		return
	}
	f.Radius = radius
}

// Config returns the tunables the field was created with
func (f *Field) Config() config.BrainConfig {
	return f.cfg
}

// Degree returns the number of live edges touching point i on either side
func (f *Field) Degree(i int) int {
	if i < 0 || i >= len(f.degree) {
		return 0
	}
	return f.degree[i]
}

// SignalCount returns the number of traveling signals across all edges
func (f *Field) SignalCount() int {
	n := 0
	for i := range f.Edges {
		n += len(f.Edges[i].Signals)
	}
	return n
}

// ProjectPoint projects a model-space position with the current rotation and size
func (f *Field) ProjectPoint(pos Vec3) Projected {
	if f.BaseRadius > 0 && f.Radius != f.BaseRadius {
		pos = pos.Scale(f.Radius / f.BaseRadius)
	}
	return Project(pos, f.Rotation, f.Width, f.Height, f.Radius, f.cfg.Perspective)
}

// Step advances the simulation by dt milliseconds: rotation, point projection and
// pulse, depth sort, connection attempts, then signal travel and edge decay.
func (f *Field) Step(dt float64) {
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	}
	if f.cfg.MaxFrameDeltaMs > 0 && dt > f.cfg.MaxFrameDeltaMs {
		dt = f.cfg.MaxFrameDeltaMs
	}
	f.Clock += dt

	f.Rotation += f.cfg.RotationSpeed * dt

	f.projectPoints()
	for i := range f.Points {
		p := &f.Points[i]
		p.Pulse += f.cfg.NeuronType(p.Kind).PulseSpeed * dt * f.cfg.PulseScale
	}

	f.sortByDepth()

	for _, i := range f.Order {
		f.maybeConnect(i, dt)
	}

	f.updateEdges(dt)
}

func (f *Field) projectPoints() {
	for i := range f.Points {
		p := &f.Points[i]
		pr := f.ProjectPoint(p.Pos)
		p.ScreenX = pr.X
		p.ScreenY = pr.Y
		p.Depth = pr.Z
	}
}

// sortByDepth orders points far to near so nearer points draw on top
func (f *Field) sortByDepth() {
	sort.SliceStable(f.Order, func(a, b int) bool {
		return f.Points[f.Order[a]].Depth > f.Points[f.Order[b]].Depth
	})
}

// updateEdges walks edges newest first so removals don't disturb the iteration
func (f *Field) updateEdges(dt float64) {
	for i := len(f.Edges) - 1; i >= 0; i-- {
		e := &f.Edges[i]
		f.advanceSignals(e, dt)

		e.Life -= f.cfg.LifeDecay * dt
		if e.Life <= 0 {
			f.removeEdge(i)
		}
	}
}

func (f *Field) advanceSignals(e *Edge, dt float64) {
	for j := len(e.Signals) - 1; j >= 0; j-- {
		e.Signals[j].Progress += e.Signals[j].Speed * dt * f.cfg.SignalAdvanceScale
		if e.Signals[j].Progress <= 1 {
			continue
		}

		e.Signals = slices.Delete(e.Signals, j, j+1)
		if f.rng.Float64() < f.cfg.SignalRespawnChance && len(e.Signals) < f.cfg.MaxSignals {
			e.Signals = append(e.Signals, f.newSignal())
		}
	}
}

func (f *Field) removeEdge(i int) {
	e := f.Edges[i]
	f.degree[e.From]--
	f.degree[e.To]--
	f.Edges = slices.Delete(f.Edges, i, i+1)
}

func (f *Field) newSignal() Signal {
	return Signal{
		Progress:  0,
		Speed:     f.cfg.SignalSpeedMin + f.rng.Float64()*f.cfg.SignalSpeedRange,
		Intensity: f.cfg.SignalIntensityMin + f.rng.Float64()*f.cfg.SignalIntensityRange,
	}
}
