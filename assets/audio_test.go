package assets

import (
	"encoding/binary"
	"testing"

	cfg "github.com/tardionchain/tardi/config"
)

func TestToneLength(t *testing.T) {
	tests := []struct {
		name       string
		durationMs int
		wantBytes  int
	}{
		{"Copy tick", 90, 44100 * 90 / 1000 * 4},
		{"One second", 1000, 44100 * 4},
		{"Empty", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tone(44100, cfg.ToneConfig{Frequency: 440, DurationMs: tt.durationMs, Decay: 10, Volume: 1})
			if len(got) != tt.wantBytes {
				t.Errorf("Expected %d bytes, got %d", tt.wantBytes, len(got))
			}
		})
	}
}

func TestToneChannelsMatchAndFadeOut(t *testing.T) {
	pcm := Tone(44100, cfg.Sound.Tones[cfg.SoundCopied])
	if len(pcm) == 0 {
		t.Fatal("Expected samples")
	}

	for i := 0; i+3 < len(pcm); i += 4 {
		left := binary.LittleEndian.Uint16(pcm[i:])
		right := binary.LittleEndian.Uint16(pcm[i+2:])
		if left != right {
			t.Fatalf("frame %d: left %d != right %d", i/4, left, right)
		}
	}

	last := int16(binary.LittleEndian.Uint16(pcm[len(pcm)-4:]))
	if last > 1000 || last < -1000 {
		t.Errorf("Expected the tone to end near silence, got %d", last)
	}
}
