package factory

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/tardionchain/tardi/archetypes"
	"github.com/tardionchain/tardi/components"
	cfg "github.com/tardionchain/tardi/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePage creates the page singleton: navigation, FAQ accordion and copy state
func CreatePage(ecs *ecs.ECS, start cfg.TabID) *donburi.Entry {
	page := archetypes.Page.Spawn(ecs)

	components.Nav.SetValue(page, components.NavData{Active: start, Changed: true})
	components.FAQ.SetValue(page, components.FAQData{Open: -1})
	components.Copy.SetValue(page, components.CopyData{Text: cfg.Content.ContractAddress})

	return page
}

// CreateCards creates the fade-up state for n feature cards
func CreateCards(ecs *ecs.ECS, n int) *donburi.Entry {
	cards := archetypes.Cards.Spawn(ecs)
	components.Reveal.SetValue(cards, NewReveal(n))
	return cards
}

// NewReveal builds one sequence per card: a hold at zero opacity staggered by index,
// then the fade in. The first card starts immediately.
func NewReveal(n int) components.RevealData {
	steps := make([]*gween.Sequence, n)
	for i := range steps {
		seq := gween.NewSequence()
		if i > 0 {
			seq.Add(gween.New(0, 0, cfg.Reveal.CardStagger*float32(i), ease.Linear))
		}
		seq.Add(gween.New(0, 1, cfg.Reveal.CardFadeSeconds, ease.OutCubic))
		steps[i] = seq
	}
	return components.RevealData{
		Steps:   steps,
		Opacity: make([]float32, n),
	}
}
