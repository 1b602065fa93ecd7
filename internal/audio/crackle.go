package audio

import (
	"math"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SampleRate is the output rate used for every stream in this package.
const SampleRate = beep.SampleRate(44100)

// FullFire is the number of burning cells at which the crackle saturates.
const FullFire = 400

const (
	maxPopsPerSecond = 90.0
	popLength        = 6 * time.Millisecond
)

// Crackle is an endless noise streamer whose pop density follows the amount
// of fire on the grid. SetFire may be called from any goroutine while the
// speaker is streaming.
type Crackle struct {
	intensity atomic.Uint64 // math.Float64bits in [0, 1]

	rng     *rand.Rand
	rate    beep.SampleRate
	popLen  int
	popLeft int
	popGain float64
}

// NewCrackle returns a silent crackle generator.
func NewCrackle(rate beep.SampleRate, seed uint64) *Crackle {
	return &Crackle{
		rng:    rand.New(rand.NewPCG(seed, 0x5a4d)),
		rate:   rate,
		popLen: max(rate.N(popLength), 1),
	}
}

// SetFire maps a burning-cell count onto the crackle intensity.
func (c *Crackle) SetFire(count int) {
	v := math.Min(math.Max(float64(count)/FullFire, 0), 1)
	c.intensity.Store(math.Float64bits(v))
}

// Intensity reports the current intensity in [0, 1].
func (c *Crackle) Intensity() float64 {
	return math.Float64frombits(c.intensity.Load())
}

// Stream fills samples with mono crackle; it never ends.
func (c *Crackle) Stream(samples [][2]float64) (n int, ok bool) {
	level := c.Intensity()
	popChance := level * maxPopsPerSecond / float64(c.rate)
	for i := range samples {
		if c.popLeft == 0 && level > 0 && c.rng.Float64() < popChance {
			c.popLeft = c.popLen
			c.popGain = 0.3 + 0.7*c.rng.Float64()
		}
		var val float64
		if c.popLeft > 0 {
			env := float64(c.popLeft) / float64(c.popLen)
			val = (c.rng.Float64()*2 - 1) * env * c.popGain
			c.popLeft--
		}
		samples[i][0] = val
		samples[i][1] = val
	}
	return len(samples), true
}

// Err always returns nil.
func (c *Crackle) Err() error { return nil }

// withVolume scales s linearly; a non-positive volume silences it.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
