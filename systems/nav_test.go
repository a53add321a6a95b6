package systems

import (
	"testing"

	cfg "github.com/tardionchain/tardi/config"
)

func TestStepTab(t *testing.T) {
	tests := []struct {
		name  string
		from  cfg.TabID
		delta int
		want  cfg.TabID
	}{
		{"next", cfg.TabHome, 1, cfg.TabOverview},
		{"previous", cfg.TabBrain, -1, cfg.TabOverview},
		{"wrap forward", cfg.TabFAQ, 1, cfg.TabHome},
		{"wrap backward", cfg.TabHome, -1, cfg.TabFAQ},
		{"full cycle", cfg.TabRoadmap, int(cfg.TabCount), cfg.TabRoadmap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stepTab(tt.from, tt.delta); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestRequestTab(t *testing.T) {
	e := newTestECS()

	if got := ActiveTab(e); got != cfg.Debug.StartTab {
		t.Fatalf("Expected start tab %v, got %v", cfg.Debug.StartTab, got)
	}
	UpdateNav(e)
	if !ConsumeNavChange(e) {
		t.Error("Expected the first frame to report a change")
	}

	RequestTab(e, cfg.TabFAQ)
	UpdateNav(e)
	if got := ActiveTab(e); got != cfg.TabFAQ {
		t.Errorf("Expected %v, got %v", cfg.TabFAQ, got)
	}
	if !ConsumeNavChange(e) {
		t.Error("Expected a change after the request")
	}
	if ConsumeNavChange(e) {
		t.Error("Expected the change to be consumed")
	}

	// Requesting the visible tab is not a change
	RequestTab(e, cfg.TabFAQ)
	UpdateNav(e)
	if ConsumeNavChange(e) {
		t.Error("Expected no change when requesting the active tab")
	}
	if GetOrCreateNav(e).Pending != nil {
		t.Error("Expected the request to be cleared")
	}
}
