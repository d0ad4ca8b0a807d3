package components

import (
	cfg "github.com/automoto/scrollfx/config"
	"github.com/yohamta/donburi"
)

// AudioData queues the sound effects requested this frame (singleton component)
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
