package systems

import (
	"github.com/tardionchain/tardi/components"
	cfg "github.com/tardionchain/tardi/config"
	"github.com/tardionchain/tardi/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// RequestTab asks for a section change. It is applied by the next UpdateNav.
func RequestTab(e *ecs.ECS, tab cfg.TabID) {
	nav := GetOrCreateNav(e)
	nav.Pending = &tab
}

// UpdateNav applies tab requests and hotkeys. The brain is mounted exactly while the
// brain section is visible.
func UpdateNav(e *ecs.ECS) {
	nav := GetOrCreateNav(e)
	input := getOrCreateInput(e)

	next := nav.Active
	if nav.Pending != nil {
		next = *nav.Pending
		nav.Pending = nil
	}
	if GetAction(input, cfg.ActionNextTab).JustPressed {
		next = stepTab(next, 1)
	}
	if GetAction(input, cfg.ActionPrevTab).JustPressed {
		next = stepTab(next, -1)
	}

	if next != nav.Active {
		nav.Active = next
		nav.Changed = true
	}

	_, mounted := components.Brain.First(e.World)
	switch {
	case nav.Active == cfg.TabBrain && !mounted:
		MountBrain(e)
		restartReveal(e)
	case nav.Active != cfg.TabBrain && mounted:
		UnmountBrain(e)
	}
}

// ConsumeNavChange reports whether the active tab changed since the last call
func ConsumeNavChange(e *ecs.ECS) bool {
	nav := GetOrCreateNav(e)
	changed := nav.Changed
	nav.Changed = false
	return changed
}

// ActiveTab returns the visible section
func ActiveTab(e *ecs.ECS) cfg.TabID {
	return GetOrCreateNav(e).Active
}

// stepTab moves delta tabs from t, wrapping at both ends
func stepTab(t cfg.TabID, delta int) cfg.TabID {
	n := int(cfg.TabCount)
	return cfg.TabID(((int(t)+delta)%n + n) % n)
}

func restartReveal(e *ecs.ECS) {
	n := len(cfg.Content.BrainLeftFeatures) + len(cfg.Content.BrainRightFeatures)
	if entry, ok := components.Reveal.First(e.World); ok {
		components.Reveal.SetValue(entry, factory.NewReveal(n))
		return
	}
	factory.CreateCards(e, n)
}

// GetOrCreateNav returns the page singleton's navigation state
func GetOrCreateNav(e *ecs.ECS) *components.NavData {
	return components.Nav.Get(getOrCreatePage(e))
}
