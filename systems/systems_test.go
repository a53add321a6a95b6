package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

// runFrames calls update n times
func runFrames(e *ecs.ECS, n int, update func(*ecs.ECS)) {
	for i := 0; i < n; i++ {
		update(e)
	}
}
