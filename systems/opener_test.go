package systems

import (
	"slices"
	"testing"
)

func TestResolveURL(t *testing.T) {
	tests := []struct {
		base, ref string
		want      string
	}{
		{"https://tardionchain.xyz", "/careers", "https://tardionchain.xyz/careers"},
		{"https://tardionchain.xyz/", "research", "https://tardionchain.xyz/research"},
		{"https://tardionchain.xyz", "https://x.com/tardionchain", "https://x.com/tardionchain"},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			got, err := ResolveURL(tt.base, tt.ref)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}

	if _, err := ResolveURL("https://tardionchain.xyz", "http://[::1"); err == nil {
		t.Error("Expected an error for a malformed link")
	}
}

func TestOpenCommand(t *testing.T) {
	const target = "https://tardionchain.xyz"
	tests := []struct {
		goos     string
		wantName string
		wantArgs []string
		wantErr  bool
	}{
		{"linux", "xdg-open", []string{target}, false},
		{"darwin", "open", []string{target}, false},
		{"windows", "rundll32", []string{"url.dll,FileProtocolHandler", target}, false},
		{"plan9", "", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			name, args, err := openCommand(tt.goos, target)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Expected error %v, got %v", tt.wantErr, err)
			}
			if name != tt.wantName || !slices.Equal(args, tt.wantArgs) {
				t.Errorf("Expected %s %v, got %s %v", tt.wantName, tt.wantArgs, name, args)
			}
		})
	}
}
