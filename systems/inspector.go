package systems

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tardionchain/tardi/components"
	cfg "github.com/tardionchain/tardi/config"
	"github.com/tardionchain/tardi/fonts"
	"github.com/tardionchain/tardi/systems/factory"
	"github.com/tardionchain/tardi/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInspector mirrors neuron positions into the hover space and finds the neuron
// under the cursor
func UpdateInspector(e *ecs.ECS) {
	brainEntry, ok := components.Brain.First(e.World)
	if !ok {
		return
	}
	insEntry, ok := components.Inspector.First(e.World)
	if !ok {
		return
	}
	b := components.Brain.Get(brainEntry)
	ins := components.Inspector.Get(insEntry)
	field := b.Loop.Field

	if ins.Width != cfg.C.Width || ins.Height != cfg.C.Height || len(ins.Objects) != len(field.Points) {
		*ins = factory.NewInspectorSpace(len(field.Points), cfg.C.Width, cfg.C.Height)
	}

	scale := b.Scale
	if scale <= 0 {
		scale = 1
	}
	half := cfg.Inspector.HitSize / 2
	for i, obj := range ins.Objects {
		x, y := neuronScreenPos(b, field.Points[i].ScreenX, field.Points[i].ScreenY, scale)
		obj.X, obj.Y = x-half, y-half
		obj.Update()
	}

	input := getOrCreateInput(e)
	ins.Hovered = -1
	cursor := CursorPoint(input)
	if !cursor.In(BrainRect(cfg.C.Width, cfg.C.Height)) {
		return
	}
	ins.Cursor.X, ins.Cursor.Y = float64(cursor.X), float64(cursor.Y)
	ins.Cursor.Update()

	check := ins.Cursor.Check(0, 0, tags.ResolvNeuron)
	if check == nil {
		return
	}
	best := math.Inf(1)
	for _, obj := range check.ObjectsByTags(tags.ResolvNeuron) {
		idx, ok := obj.Data.(int)
		if !ok {
			continue
		}
		// Shared cells are not enough, the cursor must be inside the box
		if ins.Cursor.X < obj.X || ins.Cursor.X >= obj.X+obj.W || ins.Cursor.Y < obj.Y || ins.Cursor.Y >= obj.Y+obj.H {
			continue
		}
		cx, cy := obj.X+half, obj.Y+half
		if d := math.Hypot(cx-ins.Cursor.X, cy-ins.Cursor.Y); d < best {
			best = d
			ins.Hovered = idx
		}
	}
}

// DrawInspector outlines the hovered neuron and shows its kind and degree
func DrawInspector(e *ecs.ECS, screen *ebiten.Image) {
	brainEntry, ok := components.Brain.First(e.World)
	if !ok {
		return
	}
	insEntry, ok := components.Inspector.First(e.World)
	if !ok {
		return
	}
	b := components.Brain.Get(brainEntry)
	ins := components.Inspector.Get(insEntry)
	field := b.Loop.Field
	if ins.Hovered < 0 || ins.Hovered >= len(field.Points) {
		return
	}

	p := field.Points[ins.Hovered]
	scale := b.Scale
	if scale <= 0 {
		scale = 1
	}
	x, y := neuronScreenPos(b, p.ScreenX, p.ScreenY, scale)
	brainCfg := field.Config()
	nt := brainCfg.NeuronType(p.Kind)
	vector.StrokeCircle(screen, float32(x), float32(y), float32(cfg.Inspector.OutlineSize), 1, nt.Color, true)

	lines := tooltipLines(p.Kind, ins.Hovered, field.Degree(ins.Hovered), nt.MaxConnections)
	face := fonts.MonoSmall.Get()
	lineHeight := face.Metrics().Height.Ceil()
	width := 0
	for _, l := range lines {
		width = max(width, text.BoundString(face, l).Dx())
	}

	pad := 6
	boxW, boxH := width+pad*2, lineHeight*len(lines)+pad*2
	bx := int(x) + 12
	by := int(y) - boxH - 12
	// Keep the box on screen
	if bx+boxW > cfg.C.Width {
		bx = int(x) - 12 - boxW
	}
	if by < cfg.UI.NavHeight {
		by = int(y) + 12
	}

	vector.FillRect(screen, float32(bx), float32(by), float32(boxW), float32(boxH), cfg.BlackOverlay, false)
	vector.StrokeRect(screen, float32(bx), float32(by), float32(boxW), float32(boxH), 1, cfg.Theme.CardBorder, false)
	for i, l := range lines {
		clr := cfg.Theme.Text
		if i == 0 {
			clr = nt.Color
		}
		text.Draw(screen, l, face, bx+pad, by+pad+lineHeight*(i+1)-lineHeight/4, clr)
	}
}

// neuronScreenPos converts a position on the trail image to logical window pixels
func neuronScreenPos(b *components.BrainData, sx, sy, scale float64) (float64, float64) {
	return float64(b.X) + sx/scale, float64(b.Y) + sy/scale
}

// tooltipLines describes neuron index of the given kind
func tooltipLines(kind cfg.NeuronKind, index, degree, maxConnections int) []string {
	return []string{
		fmt.Sprintf("%s #%d", kind, index),
		fmt.Sprintf("links %d/%d", degree, maxConnections),
	}
}
