package archetypes

import (
	"github.com/tardionchain/tardi/components"
	cfg "github.com/tardionchain/tardi/config"
	"github.com/tardionchain/tardi/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Brain = newArchetype(
		tags.Brain,
		components.Brain,
	)
	Inspector = newArchetype(
		tags.Inspector,
		components.Inspector,
	)
	Page = newArchetype(
		tags.Page,
		components.Nav,
		components.FAQ,
		components.Copy,
	)
	Cards = newArchetype(
		tags.Cards,
		components.Reveal,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
