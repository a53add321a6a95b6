package assets

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

var whiteImage *ebiten.Image

// WhitePixel returns a 1x1 white sub-image used as the source of vertex-colored
// triangles. The surrounding pixels keep linear filtering from sampling the edge.
func WhitePixel() *ebiten.Image {
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
	}
	return whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}
