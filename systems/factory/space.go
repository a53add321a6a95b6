package factory

import (
	"github.com/solarlune/resolv"
	"github.com/tardionchain/tardi/archetypes"
	"github.com/tardionchain/tardi/components"
	cfg "github.com/tardionchain/tardi/config"
	"github.com/tardionchain/tardi/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateInspector builds the hover space for n neurons over a width x height window
func CreateInspector(ecs *ecs.ECS, n, width, height int) *donburi.Entry {
	entry := archetypes.Inspector.Spawn(ecs)
	components.Inspector.SetValue(entry, NewInspectorSpace(n, width, height))
	return entry
}

// NewInspectorSpace creates a resolv space holding one hit box per neuron plus the cursor.
// Each neuron object carries its point index in Data.
func NewInspectorSpace(n, width, height int) components.InspectorData {
	cell := cfg.Inspector.CellSize
	space := resolv.NewSpace(max(width, cell), max(height, cell), cell, cell)

	size := cfg.Inspector.HitSize
	objects := make([]*resolv.Object, n)
	for i := range objects {
		obj := resolv.NewObject(0, 0, size, size, tags.ResolvNeuron)
		obj.Data = i
		objects[i] = obj
		space.Add(obj)
	}

	cursor := resolv.NewObject(0, 0, 1, 1, tags.ResolvCursor)
	space.Add(cursor)

	return components.InspectorData{
		Space:   space,
		Objects: objects,
		Cursor:  cursor,
		Hovered: -1,
		Width:   width,
		Height:  height,
	}
}
