package config

import "image/color"

// NeuronKind identifies one of the four neuron categories
type NeuronKind int

const (
	NeuronSensory NeuronKind = iota
	NeuronMotor
	NeuronInterneuron
	NeuronMuscle
	NeuronKindCount // Must be last - used for array sizing
)

// String returns the display name used in tooltips and the debug overlay
func (k NeuronKind) String() string {
	switch k {
	case NeuronSensory:
		return "SENSORY"
	case NeuronMotor:
		return "MOTOR"
	case NeuronInterneuron:
		return "INTERNEURON"
	case NeuronMuscle:
		return "MUSCLE"
	}
	return "UNKNOWN"
}

// NeuronTypeConfig holds the fixed visual and behavioral constants of a neuron kind
type NeuronTypeConfig struct {
	Color                 color.RGBA
	Glyph                 string
	ConnectionProbability float64 // Chance per 16ms of attempting a new connection
	PulseSpeed            float64
	Size                  float64
	MaxConnections        int
	GlowIntensity         float64
}

// BrainConfig contains the matrix brain animation tunables
type BrainConfig struct {
	NumPoints    int
	RadiusFactor float64 // Sphere radius as a fraction of min(canvas width, height)
	Perspective  float64 // Focal distance of the projection

	RotationSpeed float64 // Radians per millisecond
	PulseScale    float64 // Phase advance = PulseSpeed * dt * PulseScale

	// Connections
	ConnectCooldownMs     float64 // Minimum time between new connections from one point
	ConnectFrameMs        float64 // Frame duration the connection probability is expressed in
	ConnectDistanceFactor float64 // Max edge length as a fraction of the radius
	MinStrength           float64
	LifeDecay             float64 // Life lost per millisecond

	// Traveling signals
	SignalSpeedMin       float64
	SignalSpeedRange     float64
	SignalIntensityMin   float64
	SignalIntensityRange float64
	SignalAdvanceScale   float64 // Progress advance = speed * dt * SignalAdvanceScale
	SignalRespawnChance  float64
	MaxSignals           int

	// Frame timing
	MaxFrameDeltaMs float64 // Clamp for long stalls (window hidden, debugger)

	// Rendering
	FadeAlpha         float64 // Opacity of the trail fade painted each frame
	GlowRadiusScale   float64 // Glow radius as a multiple of the core size
	GlyphBaseSize     float64
	SignalBaseSize    float64
	SignalGlyphChance float64
	MatrixChars       string
	SignalColor       color.RGBA
	SignalCoreColor   color.RGBA
	GlyphColor        color.RGBA

	Types [NeuronKindCount]NeuronTypeConfig
}

// Brain is the global matrix brain configuration
var Brain BrainConfig

func init() {
	Brain = BrainConfig{
		NumPoints:    180,
		RadiusFactor: 0.3,
		Perspective:  1000,

		RotationSpeed: 0.0004,
		PulseScale:    0.05,

		ConnectCooldownMs:     800,
		ConnectFrameMs:        16,
		ConnectDistanceFactor: 0.5,
		MinStrength:           0.3,
		LifeDecay:             0.0008, // ~1.25s lifetime

		SignalSpeedMin:       0.03,
		SignalSpeedRange:     0.04,
		SignalIntensityMin:   0.6,
		SignalIntensityRange: 0.4,
		SignalAdvanceScale:   0.05,
		SignalRespawnChance:  0.3,
		MaxSignals:           2,

		MaxFrameDeltaMs: 250,

		FadeAlpha:         0.15,
		GlowRadiusScale:   3.5,
		GlyphBaseSize:     12,
		SignalBaseSize:    2.5,
		SignalGlyphChance: 0.08,
		MatrixChars:       "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ",
		SignalColor:       color.RGBA{R: 28, G: 255, B: 179, A: 255},
		SignalCoreColor:   color.RGBA{R: 0, G: 255, B: 70, A: 255},
		GlyphColor:        color.RGBA{R: 255, G: 255, B: 255, A: 255},

		Types: [NeuronKindCount]NeuronTypeConfig{
			NeuronSensory: {
				Color:                 color.RGBA{R: 28, G: 255, B: 179, A: 255}, // Soft teal green
				Glyph:                 "S",
				ConnectionProbability: 0.04,
				PulseSpeed:            0.08,
				Size:                  3.8,
				MaxConnections:        6,
				GlowIntensity:         0.6,
			},
			NeuronMotor: {
				Color:                 color.RGBA{R: 20, G: 184, B: 166, A: 255}, // Darker teal
				Glyph:                 "M",
				ConnectionProbability: 0.03,
				PulseSpeed:            0.06,
				Size:                  3.5,
				MaxConnections:        5,
				GlowIntensity:         0.5,
			},
			NeuronInterneuron: {
				Color:                 color.RGBA{R: 94, G: 234, B: 212, A: 255}, // Light teal
				Glyph:                 "I",
				ConnectionProbability: 0.05,
				PulseSpeed:            0.07,
				Size:                  3.2,
				MaxConnections:        7,
				GlowIntensity:         0.4,
			},
			NeuronMuscle: {
				Color:                 color.RGBA{R: 17, G: 94, B: 89, A: 255}, // Deep teal
				Glyph:                 "C",
				ConnectionProbability: 0.03,
				PulseSpeed:            0.05,
				Size:                  3.6,
				MaxConnections:        4,
				GlowIntensity:         0.5,
			},
		},
	}
}

// NeuronType returns the constants for a kind, falling back to interneuron for unknown kinds
func (c *BrainConfig) NeuronType(k NeuronKind) NeuronTypeConfig {
	if k < 0 || k >= NeuronKindCount {
		return c.Types[NeuronInterneuron]
	}
	return c.Types[k]
}
