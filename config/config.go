package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Render layers
const (
	Default ecs.LayerID = iota
	Overlay
)

// Config holds the live viewport. Width and Height are logical window pixels;
// DPR is the device scale factor of the monitor the window is on.
type Config struct {
	Width  int
	Height int
	DPR    float64
}

// WindowConfig contains window creation settings
type WindowConfig struct {
	Title         string
	DefaultWidth  int
	DefaultHeight int
	MinWidth      int
	MinHeight     int
}

// ThemeConfig contains the page palette
type ThemeConfig struct {
	Background   color.RGBA
	NavBar       color.RGBA
	Panel        color.RGBA
	Card         color.RGBA
	CardBorder   color.RGBA
	Footer       color.RGBA
	Title        color.RGBA
	Text         color.RGBA
	MutedText    color.RGBA
	Accent       color.RGBA
	Success      color.RGBA
	PhaseActive  color.RGBA
	PhasePending color.RGBA

	ButtonIdle    color.RGBA
	ButtonHover   color.RGBA
	ButtonPressed color.RGBA
	TabActive     color.RGBA
}

// UIConfig contains layout and typography values
type UIConfig struct {
	NavHeight    int
	FooterHeight int
	Padding      int
	Spacing      int

	TitleFontSize   float64
	HeadingFontSize float64
	BodyFontSize    float64
	SmallFontSize   float64
	GlyphFontSize   float64 // Base face size for neuron glyphs; drawn sizes scale from it

	ParagraphWidth float64 // Wrap width for body text
	CardWidth      float64 // Wrap width inside feature cards
	BrainGap       int     // Free width between the two feature card columns
	BrainOpacity   float32 // Opacity the brain canvas is composited with

	HUDFontSize   float64
	DebugFontSize float64
}

// CopyConfig contains the clipboard indicator timing
type CopyConfig struct {
	IndicatorFrames int     // Frames the "copied" state stays visible
	FadeSeconds     float32 // Indicator fade in/out duration
}

// RevealConfig contains fade timings for page elements
type RevealConfig struct {
	FAQFadeSeconds  float32 // Answer fade in
	CardFadeSeconds float32 // Feature card fade up
	CardStagger     float32 // Delay between consecutive feature cards
}

// InspectorConfig contains neuron hover settings
type InspectorConfig struct {
	CellSize    int     // resolv cell size in logical pixels
	HitSize     float64 // Side of the square hit box around a neuron
	OutlineSize float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay    bool  // Show the debug overlay from the start
	Seed       int64 // Random seed; 0 picks one from the clock
	StartTab   TabID
	Fullscreen bool
}

// Global configuration instances
var C *Config
var Window WindowConfig
var Theme ThemeConfig
var UI UIConfig
var Copy CopyConfig
var Reveal RevealConfig
var Inspector InspectorConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	Window = WindowConfig{
		Title:         "Tardionchain",
		DefaultWidth:  1280,
		DefaultHeight: 800,
		MinWidth:      800,
		MinHeight:     560,
	}

	C = &Config{
		Width:  Window.DefaultWidth,
		Height: Window.DefaultHeight,
		DPR:    1,
	}

	Theme = ThemeConfig{
		Background:   color.RGBA{R: 0, G: 0, B: 0, A: 255},
		NavBar:       color.RGBA{R: 10, G: 10, B: 10, A: 255},
		Panel:        color.RGBA{R: 23, G: 23, B: 23, A: 255},
		Card:         color.RGBA{R: 0, G: 0, B: 0, A: 128},
		CardBorder:   color.RGBA{R: 38, G: 38, B: 38, A: 255},
		Footer:       color.RGBA{R: 10, G: 10, B: 10, A: 255},
		Title:        color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Text:         color.RGBA{R: 212, G: 212, B: 212, A: 255},
		MutedText:    color.RGBA{R: 163, G: 163, B: 163, A: 255},
		Accent:       color.RGBA{R: 28, G: 255, B: 179, A: 255},
		Success:      color.RGBA{R: 34, G: 197, B: 94, A: 255},
		PhaseActive:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
		PhasePending: color.RGBA{R: 82, G: 82, B: 82, A: 255},

		ButtonIdle:    color.RGBA{R: 28, G: 25, B: 23, A: 255},
		ButtonHover:   color.RGBA{R: 41, G: 37, B: 36, A: 255},
		ButtonPressed: color.RGBA{R: 12, G: 10, B: 9, A: 255},
		TabActive:     color.RGBA{R: 38, G: 38, B: 38, A: 255},
	}

	UI = UIConfig{
		NavHeight:    44,
		FooterHeight: 96,
		Padding:      16,
		Spacing:      10,

		TitleFontSize:   40,
		HeadingFontSize: 24,
		BodyFontSize:    16,
		SmallFontSize:   13,
		GlyphFontSize:   32,

		ParagraphWidth: 520,
		CardWidth:      300,
		BrainGap:       420,
		BrainOpacity:   0.7,

		HUDFontSize:   14,
		DebugFontSize: 12,
	}

	Copy = CopyConfig{
		IndicatorFrames: 120, // 2s at 60 TPS
		FadeSeconds:     0.3,
	}

	Reveal = RevealConfig{
		FAQFadeSeconds:  0.3,
		CardFadeSeconds: 0.5,
		CardStagger:     0.2,
	}

	Inspector = InspectorConfig{
		CellSize:    16,
		HitSize:     12,
		OutlineSize: 9,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Overlay:    false,
		Seed:       0,
		StartTab:   TabHome,
		Fullscreen: false,
	}
}
