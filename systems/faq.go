package systems

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/tardionchain/tardi/components"
	cfg "github.com/tardionchain/tardi/config"
	"github.com/yohamta/donburi/ecs"
)

// ToggleFAQ opens item i, or closes it when it is already open. Opening one item
// closes any other.
func ToggleFAQ(e *ecs.ECS, i int) {
	faq := GetOrCreateFAQ(e)
	next := toggleOpen(faq.Open, i, len(cfg.Content.FAQ))
	if next == faq.Open {
		return
	}
	faq.Open = next
	if faq.Open < 0 {
		faq.Fade = nil
		faq.Opacity = 0
		return
	}
	faq.Opacity = 0
	faq.Fade = gween.New(0, 1, cfg.Reveal.FAQFadeSeconds, ease.OutQuad)
}

// UpdateFAQ advances the answer fade
func UpdateFAQ(e *ecs.ECS) {
	faq := GetOrCreateFAQ(e)
	if faq.Fade == nil {
		return
	}
	v, done := faq.Fade.Update(frameSeconds)
	faq.Opacity = v
	if done {
		faq.Fade = nil
	}
}

// GetOrCreateFAQ returns the page singleton's accordion state
func GetOrCreateFAQ(e *ecs.ECS) *components.FAQData {
	return components.FAQ.Get(getOrCreatePage(e))
}

// toggleOpen returns the open index after clicking item i of n. Clicks outside the
// list change nothing.
func toggleOpen(open, i, n int) int {
	if i < 0 || i >= n {
		return open
	}
	if i == open {
		return -1
	}
	return i
}
