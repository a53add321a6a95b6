package systems

import (
	"image"
	"math/rand"
	"strings"
	"testing"

	"github.com/tardionchain/tardi/brain"
	cfg "github.com/tardionchain/tardi/config"
)

func TestBrainRect(t *testing.T) {
	nav, footer := cfg.UI.NavHeight, cfg.UI.FooterHeight
	tests := []struct {
		name string
		w, h int
		want image.Rectangle
	}{
		{"default window", 1280, 800, image.Rect(0, nav, 1280, 800-footer)},
		{"too short", 640, nav + footer - 10, image.Rect(0, nav, 640, nav)},
		{"zero", 0, 0, image.Rect(0, nav, 0, nav)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BrainRect(tt.w, tt.h)
			if got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestTooltipLines(t *testing.T) {
	lines := tooltipLines(cfg.NeuronMotor, 7, 2, 3)
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "MOTOR #7" || lines[1] != "links 2/3" {
		t.Errorf("Unexpected tooltip %q", lines)
	}
}

func TestDebugLines(t *testing.T) {
	lines := debugLines(60, 60, 2, nil)
	if !strings.Contains(strings.Join(lines, "\n"), "unmounted") {
		t.Errorf("Expected an unmounted brain line, got %q", lines)
	}

	rng := rand.New(rand.NewSource(1))
	field := brain.NewField(cfg.Brain, 800, 600, rng)
	loop := brain.NewLoop(field, brain.NewRenderer(cfg.Brain, rng))
	loop.SetPaused(true)

	joined := strings.Join(debugLines(59.9, 60, 1, loop), "\n")
	for _, want := range []string{"FPS 59.9", "paused", "canvas 800x600", "edges 0"} {
		if !strings.Contains(joined, want) {
			t.Errorf("Expected %q in overlay:\n%s", want, joined)
		}
	}
}
