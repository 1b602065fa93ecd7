package core

import "time"

// FixedStep decouples simulation ticks from the render loop: the frontend
// polls ShouldStep every frame and advances the sim only when a full tick
// interval has accumulated.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	return newFixedStepClock(tps, time.Now)
}

func newFixedStepClock(tps int, now func() time.Time) *FixedStep {
	fs := &FixedStep{now: now}
	fs.SetTPS(tps)
	// First poll steps immediately.
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. Non-positive rates fall back to 60.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Interval reports the duration of one tick.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		// Drop backlog after a stall instead of fast-forwarding.
		if f.accumulator > 4*f.step {
			f.accumulator = 0
		}
		return true
	}
	return false
}
