package systems

import (
	"os/exec"
	"testing"
)

func TestCommandClipboard(t *testing.T) {
	if _, err := exec.LookPath("cat"); err != nil {
		t.Skip("cat not available")
	}

	tests := []struct {
		name     string
		commands [][]string
		wantErr  bool
	}{
		{"first command works", [][]string{{"cat"}}, false},
		{"falls through missing tools", [][]string{{"tardi-no-such-clipboard"}, {}, {"cat"}}, false},
		{"nothing available", [][]string{{"tardi-no-such-clipboard"}}, true},
		{"empty chain", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := commandClipboard{commands: tt.commands}.WriteText("DTTL")
			if (err != nil) != tt.wantErr {
				t.Errorf("Expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}
