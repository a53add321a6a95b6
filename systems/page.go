package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	cfg "github.com/tardionchain/tardi/config"
	"github.com/tardionchain/tardi/systems/factory"
	"github.com/tardionchain/tardi/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// frameSeconds is the tween step per update; the game runs at the default tick rate
const frameSeconds = float32(1) / float32(ebiten.DefaultTPS)

func getOrCreatePage(e *ecs.ECS) *donburi.Entry {
	entry, ok := tags.Page.First(e.World)
	if !ok {
		entry = factory.CreatePage(e, cfg.Debug.StartTab)
	}
	return entry
}
