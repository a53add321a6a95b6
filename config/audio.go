package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundCopied
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// ToneConfig describes a synthesized sound: a sine at Frequency with an exponential
// decay, lasting DurationMs
type ToneConfig struct {
	Frequency  float64
	DurationMs int
	Decay      float64 // Per-second decay rate of the envelope
	Volume     float64
}

// SoundConfig maps sound IDs to their tones
type SoundConfig struct {
	Tones map[SoundID]ToneConfig
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.6,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]ToneConfig{
			SoundCopied: {
				Frequency:  1320,
				DurationMs: 90,
				Decay:      40,
				Volume:     0.5,
			},
		},
	}
}
