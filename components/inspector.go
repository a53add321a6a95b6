package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// InspectorData mirrors neuron screen positions into a resolv space for hover checks
type InspectorData struct {
	Space   *resolv.Space
	Objects []*resolv.Object // Indexed by point
	Cursor  *resolv.Object

	Width, Height int // Logical window size the space covers

	Hovered int // Point index under the cursor, -1 when none
}

var Inspector = donburi.NewComponentType[InspectorData]()
