package systems

import (
	"testing"

	cfg "github.com/tardionchain/tardi/config"
)

func TestToggleOpen(t *testing.T) {
	tests := []struct {
		name       string
		open, item int
		want       int
	}{
		{"open from closed", -1, 0, 0},
		{"close open item", 1, 1, -1},
		{"switch item", 0, 2, 2},
		{"out of range keeps open item", 0, 3, 0},
		{"negative keeps open item", 1, -1, 1},
		{"out of range while closed", -1, 5, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := toggleOpen(tt.open, tt.item, 3); got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestFAQFade(t *testing.T) {
	e := newTestECS()

	faq := GetOrCreateFAQ(e)
	if faq.Open != -1 {
		t.Fatalf("Expected all items closed, got %d", faq.Open)
	}

	ToggleFAQ(e, 1)
	if faq.Open != 1 || faq.Opacity != 0 {
		t.Fatalf("Expected item 1 open at opacity 0, got %d at %v", faq.Open, faq.Opacity)
	}

	UpdateFAQ(e)
	if faq.Opacity <= 0 || faq.Opacity >= 1 {
		t.Errorf("Expected a partial fade after one frame, got %v", faq.Opacity)
	}

	runFrames(e, 60, UpdateFAQ)
	if faq.Opacity != 1 || faq.Fade != nil {
		t.Errorf("Expected the fade to finish at 1, got %v", faq.Opacity)
	}

	ToggleFAQ(e, 1)
	if faq.Open != -1 || faq.Opacity != 0 {
		t.Errorf("Expected the item to close, got %d at %v", faq.Open, faq.Opacity)
	}
}

func TestToggleFAQIgnoresUnknownItem(t *testing.T) {
	e := newTestECS()
	faq := GetOrCreateFAQ(e)

	ToggleFAQ(e, 0)
	runFrames(e, 60, UpdateFAQ)

	ToggleFAQ(e, len(cfg.Content.FAQ))
	ToggleFAQ(e, -1)
	if faq.Open != 0 || faq.Opacity != 1 || faq.Fade != nil {
		t.Errorf("Expected item 0 to stay open and fully shown, got %d at %v", faq.Open, faq.Opacity)
	}
}
