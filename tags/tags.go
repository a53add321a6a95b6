package tags

import "github.com/yohamta/donburi"

var (
	Brain     = donburi.NewTag().SetName("Brain")
	Inspector = donburi.NewTag().SetName("Inspector")
	Page      = donburi.NewTag().SetName("Page")
	Cards     = donburi.NewTag().SetName("Cards")
)

// Resolv tags for hover checks
const (
	ResolvNeuron = "neuron"
	ResolvCursor = "cursor"
)
