package components

import (
	"github.com/tanema/gween"
	cfg "github.com/tardionchain/tardi/config"
	"github.com/yohamta/donburi"
)

// NavData tracks the visible page section (singleton component)
type NavData struct {
	Active  cfg.TabID
	Pending *cfg.TabID // Requested by a click or hotkey, applied by UpdateNav
	Changed bool       // Active changed this frame
}

var Nav = donburi.NewComponentType[NavData]()

// FAQData is the accordion state. Open is -1 when every item is collapsed.
type FAQData struct {
	Open    int
	Fade    *gween.Tween
	Opacity float32 // Opacity of the open answer
}

var FAQ = donburi.NewComponentType[FAQData]()

// CopyData is the contract address copy state
type CopyData struct {
	Text      string
	Requested bool
	Pending   chan error // Result of the clipboard write in flight, nil when idle

	Copied     bool // Indicator showing
	FramesLeft int
	Fade       *gween.Tween
	Opacity    float32 // Indicator opacity
}

var Copy = donburi.NewComponentType[CopyData]()

// RevealData fades a group of cards in one after another
type RevealData struct {
	Steps   []*gween.Sequence
	Opacity []float32
	Done    bool
}

var Reveal = donburi.NewComponentType[RevealData]()
