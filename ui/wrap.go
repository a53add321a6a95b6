package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// wrapText breaks s into lines no wider than maxWidth. Explicit newlines are kept and a
// single word wider than maxWidth gets a line of its own.
func wrapText(s string, face text.Face, maxWidth float64) string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			candidate := line + " " + w
			if width, _ := text.Measure(candidate, face, 0); width > maxWidth {
				lines = append(lines, line)
				line = w
				continue
			}
			line = candidate
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// withOpacity returns c with its alpha scaled by a, clamped to [0, 1]
func withOpacity(c color.RGBA, a float32) color.NRGBA {
	a = min(max(a, 0), 1)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float32(c.A)*a + 0.5)}
}
