package systems

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tardionchain/tardi/assets"
	cfg "github.com/tardionchain/tardi/config"
	"github.com/tardionchain/tardi/fonts"
)

// imageCanvas paints brain frames onto the persistent trail image.
// The fade is source-over so trails decay; everything else blends additively.
type imageCanvas struct {
	dst   *ebiten.Image
	glyph *text.GoTextFace
}

var glyphFace *text.GoTextFace

func newImageCanvas(dst *ebiten.Image) *imageCanvas {
	if glyphFace == nil {
		glyphFace = fonts.Glyph(cfg.UI.GlyphFontSize)
	}
	return &imageCanvas{dst: dst, glyph: glyphFace}
}

func (c *imageCanvas) Fade(alpha float64) {
	if alpha <= 0 {
		return
	}
	b := c.dst.Bounds()
	clr := color.NRGBA{A: uint8(math.Round(math.Min(alpha, 1) * 255))}
	vector.FillRect(c.dst, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()), clr, false)
}

func (c *imageCanvas) Glow(x, y, radius float64, inner, mid color.NRGBA) {
	if radius <= 0 || (inner.A == 0 && mid.A == 0) || assets.GlowShader == nil {
		return
	}
	size := int(math.Ceil(radius * 2))
	op := &ebiten.DrawRectShaderOptions{}
	op.GeoM.Translate(x-radius, y-radius)
	op.Blend = ebiten.BlendLighter
	op.Uniforms = map[string]any{
		"Center": []float32{float32(x), float32(y)},
		"Radius": float32(radius),
		"Inner":  premultiplied(inner),
		"Mid":    premultiplied(mid),
	}
	c.dst.DrawRectShader(size, size, assets.GlowShader, op)
}

func (c *imageCanvas) Disc(x, y, radius float64, clr color.NRGBA) {
	if radius <= 0 || clr.A == 0 || assets.DiscShader == nil {
		return
	}
	// One extra pixel on each side for the antialiased edge
	size := int(math.Ceil(radius*2)) + 2
	op := &ebiten.DrawRectShaderOptions{}
	op.GeoM.Translate(x-radius-1, y-radius-1)
	op.Blend = ebiten.BlendLighter
	op.Uniforms = map[string]any{
		"Center": []float32{float32(x), float32(y)},
		"Radius": float32(radius),
		"Fill":   premultiplied(clr),
	}
	c.dst.DrawRectShader(size, size, assets.DiscShader, op)
}

func (c *imageCanvas) Line(x0, y0, x1, y1, width float64, from, mid, to color.NRGBA) {
	if width <= 0 || (from.A == 0 && mid.A == 0 && to.A == 0) {
		return
	}
	vs, is := lineVertices(x0, y0, x1, y1, width, from, mid, to)
	if vs == nil {
		return
	}
	op := &ebiten.DrawTrianglesOptions{}
	op.ColorScaleMode = ebiten.ColorScaleModeStraightAlpha
	op.Blend = ebiten.BlendLighter
	op.AntiAlias = true
	c.dst.DrawTriangles(vs, is, assets.WhitePixel(), op)
}

func (c *imageCanvas) Glyph(s string, x, y, size float64, clr color.NRGBA) {
	if s == "" || size <= 0 || clr.A == 0 {
		return
	}
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	scale := size / c.glyph.Size
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.Blend = ebiten.BlendLighter
	text.Draw(c.dst, s, c.glyph, op)
}

// lineIndices splits the segment into two quads, start to mid and mid to end
var lineIndices = []uint16{0, 1, 2, 1, 3, 2, 2, 3, 4, 3, 5, 4}

// lineVertices builds a width-thick strip from (x0, y0) to (x1, y1) with the colour
// interpolated through three stops. A zero-length segment yields nil.
func lineVertices(x0, y0, x1, y1, width float64, from, mid, to color.NRGBA) ([]ebiten.Vertex, []uint16) {
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 {
		return nil, nil
	}
	nx, ny := -dy/length*width/2, dx/length*width/2
	mx, my := (x0+x1)/2, (y0+y1)/2

	vs := make([]ebiten.Vertex, 0, 6)
	for _, stop := range []struct {
		x, y float64
		clr  color.NRGBA
	}{{x0, y0, from}, {mx, my, mid}, {x1, y1, to}} {
		for _, side := range []float64{1, -1} {
			vs = append(vs, vertex(stop.x+nx*side, stop.y+ny*side, stop.clr))
		}
	}
	return vs, lineIndices
}

func vertex(x, y float64, clr color.NRGBA) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   float32(x),
		DstY:   float32(y),
		SrcX:   1.5,
		SrcY:   1.5,
		ColorR: float32(clr.R) / 255,
		ColorG: float32(clr.G) / 255,
		ColorB: float32(clr.B) / 255,
		ColorA: float32(clr.A) / 255,
	}
}

// premultiplied converts a straight alpha colour to the premultiplied vec4 shaders take
func premultiplied(clr color.NRGBA) []float32 {
	a := float32(clr.A) / 255
	return []float32{
		float32(clr.R) / 255 * a,
		float32(clr.G) / 255 * a,
		float32(clr.B) / 255 * a,
		a,
	}
}
