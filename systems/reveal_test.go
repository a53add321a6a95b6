package systems

import (
	"testing"

	"github.com/tardionchain/tardi/components"
	"github.com/tardionchain/tardi/systems/factory"
)

func TestUpdateReveal(t *testing.T) {
	e := newTestECS()

	if got := CardOpacity(e, 0); got != 1 {
		t.Errorf("Expected full opacity without a reveal, got %v", got)
	}

	entry := factory.CreateCards(e, 3)
	r := components.Reveal.Get(entry)

	UpdateReveal(e)
	if r.Opacity[0] <= 0 {
		t.Errorf("Expected the first card to start immediately, got %v", r.Opacity[0])
	}
	if r.Opacity[2] != 0 {
		t.Errorf("Expected the last card to wait for its stagger, got %v", r.Opacity[2])
	}

	runFrames(e, 120, UpdateReveal)
	if !r.Done {
		t.Fatal("Expected the reveal to finish")
	}
	for i := 0; i < 3; i++ {
		if got := CardOpacity(e, i); got != 1 {
			t.Errorf("card %d: expected opacity 1, got %v", i, got)
		}
	}
	if got := CardOpacity(e, 9); got != 1 {
		t.Errorf("Expected out of range cards to be opaque, got %v", got)
	}
}
