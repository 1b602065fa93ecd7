//go:build audio

package audio

import (
	"time"

	"github.com/gopxl/beep/speaker"
)

// Player routes a Crackle to the system speaker.
type Player struct {
	crackle *Crackle
}

// NewPlayer initialises the speaker and starts streaming the crackle at the
// given linear volume.
func NewPlayer(volume float64) (*Player, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return nil, err
	}
	c := NewCrackle(SampleRate, uint64(time.Now().UnixNano()))
	speaker.Play(withVolume(c, volume))
	return &Player{crackle: c}, nil
}

// SetFire updates the crackle intensity.
func (p *Player) SetFire(count int) {
	if p == nil {
		return
	}
	p.crackle.SetFire(count)
}

// Close stops playback and releases the audio device.
func (p *Player) Close() {
	if p == nil {
		return
	}
	speaker.Clear()
	speaker.Close()
}
