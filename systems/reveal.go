package systems

import (
	"github.com/tardionchain/tardi/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateReveal advances the feature card fade-up while the cards are on screen
func UpdateReveal(e *ecs.ECS) {
	entry, ok := components.Reveal.First(e.World)
	if !ok {
		return
	}
	r := components.Reveal.Get(entry)
	if r.Done {
		return
	}

	done := true
	for i, seq := range r.Steps {
		v, _, seqDone := seq.Update(frameSeconds)
		r.Opacity[i] = v
		if !seqDone {
			done = false
		}
	}
	r.Done = done
}

// CardOpacity returns the fade-up opacity of card i, 1 when no reveal is running
func CardOpacity(e *ecs.ECS, i int) float32 {
	entry, ok := components.Reveal.First(e.World)
	if !ok {
		return 1
	}
	r := components.Reveal.Get(entry)
	if i < 0 || i >= len(r.Opacity) {
		return 1
	}
	return r.Opacity[i]
}
