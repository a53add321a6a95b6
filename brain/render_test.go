package brain

import (
	"image/color"
	"math"
	"math/rand"
	"testing"

	"github.com/tardionchain/tardi/config"
)

type discCall struct {
	x, y, radius float64
	clr          color.NRGBA
}

// recordingCanvas counts draw calls instead of painting
type recordingCanvas struct {
	fades  []float64
	glows  int
	discs  []discCall
	lines  int
	glyphs []string
}

func (c *recordingCanvas) Fade(alpha float64) { c.fades = append(c.fades, alpha) }

func (c *recordingCanvas) Glow(x, y, radius float64, inner, mid color.NRGBA) { c.glows++ }

func (c *recordingCanvas) Disc(x, y, radius float64, clr color.NRGBA) {
	c.discs = append(c.discs, discCall{x, y, radius, clr})
}

func (c *recordingCanvas) Line(x0, y0, x1, y1, width float64, from, mid, to color.NRGBA) {
	c.lines++
}

func (c *recordingCanvas) Glyph(s string, x, y, size float64, clr color.NRGBA) {
	c.glyphs = append(c.glyphs, s)
}

func (c *recordingCanvas) calls() int {
	return len(c.fades) + c.glows + len(c.discs) + c.lines + len(c.glyphs)
}

func TestRenderPointsOnly(t *testing.T) {
	cfg := quietConfig()
	cfg.NumPoints = 10
	f := NewField(cfg, 800, 600, rand.New(rand.NewSource(1)))
	f.Step(16)

	c := &recordingCanvas{}
	NewRenderer(cfg, rand.New(rand.NewSource(1))).Render(f, c)

	if len(c.fades) != 1 || c.fades[0] != cfg.FadeAlpha {
		t.Errorf("Expected one fade at %v, got %v", cfg.FadeAlpha, c.fades)
	}
	if c.glows != 10 || len(c.discs) != 10 || len(c.glyphs) != 10 {
		t.Errorf("Expected 10 glows, discs and glyphs, got %d %d %d", c.glows, len(c.discs), len(c.glyphs))
	}
	if c.lines != 0 {
		t.Errorf("Expected no lines, got %d", c.lines)
	}
}

func TestRenderEdgeAndSignal(t *testing.T) {
	tests := []struct {
		name       string
		glyphOdds  float64
		wantGlyphs int
	}{
		{"No signal glyph", 0, 2},
		{"Signal glyph", 1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := quietConfig()
			cfg.SignalGlyphChance = tt.glyphOdds
			f := pairField(cfg, Vec3{}, Vec3{X: 10})
			if !f.Connect(0, 1) {
				t.Fatal("Expected connection")
			}
			f.Step(0)

			c := &recordingCanvas{}
			NewRenderer(cfg, rand.New(rand.NewSource(1))).Render(f, c)

			// Two points plus one signal
			if c.glows != 3 || len(c.discs) != 3 {
				t.Errorf("Expected 3 glows and discs, got %d and %d", c.glows, len(c.discs))
			}
			// Gradient stroke plus glow stroke
			if c.lines != 2 {
				t.Errorf("Expected 2 lines, got %d", c.lines)
			}
			if len(c.glyphs) != tt.wantGlyphs {
				t.Errorf("Expected %d glyphs, got %d", tt.wantGlyphs, len(c.glyphs))
			}
		})
	}
}

func TestRenderPointGlyphs(t *testing.T) {
	cfg := quietConfig()
	f := pairField(cfg, Vec3{}, Vec3{X: 10})
	f.Points[1].Kind = config.NeuronSensory
	f.Step(0)

	c := &recordingCanvas{}
	NewRenderer(cfg, rand.New(rand.NewSource(1))).Render(f, c)

	seen := map[string]bool{}
	for _, g := range c.glyphs {
		seen[g] = true
	}
	if !seen["I"] || !seen["S"] {
		t.Errorf("Expected interneuron and sensory glyphs, got %v", c.glyphs)
	}
}

func TestRenderZeroSizedField(t *testing.T) {
	f := NewField(quietConfig(), 0, 0, rand.New(rand.NewSource(1)))
	f.Step(16)

	c := &recordingCanvas{}
	NewRenderer(quietConfig(), rand.New(rand.NewSource(1))).Render(f, c)

	if c.calls() != 0 {
		t.Errorf("Expected no draw calls on a zero-sized canvas, got %d", c.calls())
	}
}

func TestRenderPixelRatio(t *testing.T) {
	cfg := quietConfig()
	f := pairField(cfg, Vec3{}, Vec3{X: 10})
	f.Step(0)

	r := NewRenderer(cfg, rand.New(rand.NewSource(1)))
	base := &recordingCanvas{}
	r.Render(f, base)

	r.SetPixelRatio(2)
	scaled := &recordingCanvas{}
	r.Render(f, scaled)

	for i := range base.discs {
		if math.Abs(scaled.discs[i].radius-2*base.discs[i].radius) > 1e-9 {
			t.Errorf("disc %d: expected radius %v, got %v", i, 2*base.discs[i].radius, scaled.discs[i].radius)
		}
	}

	r.SetPixelRatio(0)
	reset := &recordingCanvas{}
	r.Render(f, reset)
	if math.Abs(reset.discs[0].radius-base.discs[0].radius) > 1e-9 {
		t.Errorf("Expected invalid ratio to fall back to 1")
	}
}

func TestWithAlpha(t *testing.T) {
	c := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	tests := []struct {
		a    float64
		want uint8
	}{
		{0, 0},
		{1, 255},
		{0.5, 128},
		{2, 255},
		{-1, 0},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		got := withAlpha(c, tt.a)
		if got.A != tt.want || got.R != 10 || got.G != 20 || got.B != 30 {
			t.Errorf("withAlpha(%v): expected alpha %d, got %v", tt.a, tt.want, got)
		}
	}
}
