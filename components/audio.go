package components

import (
	cfg "github.com/tardionchain/tardi/config"
	"github.com/yohamta/donburi"
)

// AudioData stores pending sound effects (singleton component)
type AudioData struct {
	SFXVolume  float64 // 0.0 - 1.0
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
