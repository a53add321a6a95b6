package assets

import (
	"embed"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// GlowShader draws the radial glow around neurons and signals
	GlowShader *ebiten.Shader
	// DiscShader draws antialiased neuron and signal cores
	DiscShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	var err error

	if GlowShader, err = loadShader("shaders/glow.kage"); err != nil {
		return err
	}
	if DiscShader, err = loadShader("shaders/disc.kage"); err != nil {
		return err
	}

	return nil
}

func loadShader(path string) (*ebiten.Shader, error) {
	src, err := shaderFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read shader %s: %w", path, err)
	}
	shader, err := ebiten.NewShader(src)
	if err != nil {
		return nil, fmt.Errorf("failed to compile shader %s: %w", path, err)
	}
	return shader, nil
}
