package systems

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tardionchain/tardi/components"
	cfg "github.com/tardionchain/tardi/config"
	"github.com/yohamta/donburi/ecs"
)

// Scratch buffers reused across frames
var (
	gamepadIDs []ebiten.GamepadID
	touchIDs   []ebiten.TouchID
)

// UpdateInput snapshots the bound keys and buttons into the page's action state and
// records where the pointer is. Every system reading actions runs after it.
func UpdateInput(e *ecs.ECS) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	for id, binding := range cfg.Input.Bindings {
		input.Current[id] = bindingHeld(binding, gamepadIDs)
	}

	input.CursorX, input.CursorY = pointerPosition()
}

// bindingHeld reports whether any key or standard-layout button of the binding is down
func bindingHeld(binding cfg.InputBinding, pads []ebiten.GamepadID) bool {
	for _, key := range binding.Keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	for _, pad := range pads {
		if !ebiten.IsStandardGamepadLayoutAvailable(pad) {
			continue
		}
		for _, btn := range binding.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(pad, btn) {
				return true
			}
		}
	}
	return false
}

// pointerPosition prefers the first active touch so tapping a neuron inspects it
func pointerPosition() (int, int) {
	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
	if len(touchIDs) > 0 {
		return ebiten.TouchPosition(touchIDs[0])
	}
	return ebiten.CursorPosition()
}

// CursorPoint returns the pointer in logical window pixels
func CursorPoint(input *components.InputData) image.Point {
	return image.Pt(input.CursorX, input.CursorY)
}

func getOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction derives the action's edges from this frame and the last
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	return actionState(input.Current[id], input.Previous[id])
}

func actionState(now, before bool) components.ActionState {
	return components.ActionState{
		Pressed:      now,
		JustPressed:  now && !before,
		JustReleased: !now && before,
	}
}
