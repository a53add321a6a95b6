package brain

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/tardionchain/tardi/config"
)

// Canvas is the drawing surface the renderer paints on. Coordinates are in canvas
// pixels. Implementations blend glows, discs, lines and glyphs additively.
type Canvas interface {
	// Fade paints black over the whole canvas at the given opacity, leaving trails
	Fade(alpha float64)
	// Glow draws a radial gradient: inner at the center, mid halfway, transparent at radius
	Glow(x, y, radius float64, inner, mid color.NRGBA)
	// Disc fills a circle
	Disc(x, y, radius float64, clr color.NRGBA)
	// Line strokes a segment with a three-stop gradient from start through mid to end
	Line(x0, y0, x1, y1, width float64, from, mid, to color.NRGBA)
	// Glyph draws text centered on (x, y) at the given pixel size
	Glyph(s string, x, y, size float64, clr color.NRGBA)
}

// Renderer turns field state into canvas calls. Its rng only drives cosmetic choices
// (matrix glyphs on signals), never simulation state.
type Renderer struct {
	cfg        config.BrainConfig
	rng        *rand.Rand
	pixelRatio float64
}

// NewRenderer creates a renderer drawing at a pixel ratio of 1
func NewRenderer(cfg config.BrainConfig, rng *rand.Rand) *Renderer {
	return &Renderer{cfg: cfg, rng: rng, pixelRatio: 1}
}

// SetPixelRatio scales point, line and glyph sizes for high density displays
func (r *Renderer) SetPixelRatio(ratio float64) {
	if ratio <= 0 || math.IsNaN(ratio) {
		ratio = 1
	}
	r.pixelRatio = ratio
}

// Render draws one frame: trail fade, points back to front, then edges and signals.
// A zero-sized field produces no canvas calls.
func (r *Renderer) Render(f *Field, c Canvas) {
	if f.Width <= 0 || f.Height <= 0 {
		return
	}

	c.Fade(r.cfg.FadeAlpha)

	for _, i := range f.Order {
		r.drawPoint(f, &f.Points[i], c)
	}

	for i := len(f.Edges) - 1; i >= 0; i-- {
		r.drawEdge(f, &f.Edges[i], c)
	}
}

func (r *Renderer) drawPoint(f *Field, p *Point, c Canvas) {
	style := r.cfg.NeuronType(p.Kind)

	depth := DepthOf(p.Depth, f.Radius)
	depthScale := 0.5 + depth*0.5
	pulseScale := 1 + math.Sin(p.Pulse)*0.15
	size := style.Size * pulseScale * depthScale * r.pixelRatio
	intensity := (math.Sin(p.Pulse) + 1) * 0.5
	opacity := 0.2 + depth*0.5

	c.Glow(p.ScreenX, p.ScreenY, size*r.cfg.GlowRadiusScale,
		withAlpha(style.Color, opacity*style.GlowIntensity*0.7),
		withAlpha(style.Color, opacity*style.GlowIntensity*0.3),
	)
	c.Disc(p.ScreenX, p.ScreenY, size, withAlpha(style.Color, opacity*(0.4+intensity*0.6)))

	glyphSize := r.cfg.GlyphBaseSize * pulseScale * depthScale * r.pixelRatio
	c.Glyph(style.Glyph, p.ScreenX, p.ScreenY, glyphSize, withAlpha(r.cfg.GlyphColor, opacity*intensity*0.9))
}

func (r *Renderer) drawEdge(f *Field, e *Edge, c Canvas) {
	start := f.ProjectPoint(e.Start)
	end := f.ProjectPoint(e.End)

	depth := 0.0
	if f.Radius > 0 {
		depth = (start.Z + end.Z + 2*f.Radius) / (4 * f.Radius)
	}
	alpha := depth * e.Life * e.Strength

	c.Line(start.X, start.Y, end.X, end.Y, 1.5*e.Strength*depth*r.pixelRatio,
		withAlpha(r.cfg.NeuronType(e.StartKind).Color, alpha*0.6),
		withAlpha(r.cfg.SignalColor, alpha*0.3),
		withAlpha(r.cfg.NeuronType(e.EndKind).Color, alpha*0.6),
	)

	glow := withAlpha(r.cfg.SignalColor, depth*0.15)
	c.Line(start.X, start.Y, end.X, end.Y, 3*e.Strength*depth*r.pixelRatio, glow, glow, glow)

	for j := range e.Signals {
		r.drawSignal(f, e, &e.Signals[j], c)
	}
}

func (r *Renderer) drawSignal(f *Field, e *Edge, s *Signal, c Canvas) {
	pr := f.ProjectPoint(e.Start.Lerp(e.End, s.Progress))
	depth := DepthOf(pr.Z, f.Radius)
	size := r.cfg.SignalBaseSize * s.Intensity * (0.5 + depth*0.5) * r.pixelRatio
	base := depth * e.Life * s.Intensity

	c.Glow(pr.X, pr.Y, size*3,
		withAlpha(r.cfg.SignalColor, base*0.7),
		withAlpha(r.cfg.SignalColor, base*0.3),
	)
	c.Disc(pr.X, pr.Y, size, withAlpha(r.cfg.SignalCoreColor, base))

	if len(r.cfg.MatrixChars) > 0 && r.rng.Float64() < r.cfg.SignalGlyphChance {
		ch := r.cfg.MatrixChars[r.rng.Intn(len(r.cfg.MatrixChars))]
		c.Glyph(string(ch), pr.X, pr.Y, size*2, withAlpha(r.cfg.GlyphColor, base*0.9))
	}
}

// withAlpha converts an opaque palette color to a straight-alpha color with opacity a
func withAlpha(c color.RGBA, a float64) color.NRGBA {
	if a < 0 || math.IsNaN(a) {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(a * 255))}
}
