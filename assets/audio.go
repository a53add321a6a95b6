package assets

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
	cfg "github.com/tardionchain/tardi/config"
)

// AudioLoader synthesizes and caches sound effects
type AudioLoader struct {
	sfxCache map[cfg.SoundID][]byte // PCM bytes per sound
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX synthesizes a sound effect and caches it without creating a player
func (l *AudioLoader) PreloadSFX(id cfg.SoundID) error {
	if _, ok := l.sfxCache[id]; ok {
		return nil
	}
	tone, ok := cfg.Sound.Tones[id]
	if !ok {
		return fmt.Errorf("no tone configured for sound %d", id)
	}
	l.sfxCache[id] = Tone(l.context.SampleRate(), tone)
	return nil
}

// LoadSFX returns a new player for a sound effect each time
func (l *AudioLoader) LoadSFX(id cfg.SoundID) (*audio.Player, error) {
	if err := l.PreloadSFX(id); err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(l.sfxCache[id]))
}

// Tone renders a decaying sine as 16-bit little-endian stereo PCM, the format
// audio.Context players expect
func Tone(sampleRate int, t cfg.ToneConfig) []byte {
	n := sampleRate * t.DurationMs / 1000
	if n <= 0 {
		return nil
	}
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		secs := float64(i) / float64(sampleRate)
		env := math.Exp(-t.Decay * secs)
		// Short linear release so the cut at the end doesn't click
		if rest := n - i; rest < 64 {
			env *= float64(rest) / 64
		}
		v := math.Sin(2*math.Pi*t.Frequency*secs) * env * t.Volume
		s := int16(math.Max(-1, math.Min(1, v)) * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(s))
	}
	return buf
}
