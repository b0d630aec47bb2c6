package app

import "time"

// FixedStep paces generation updates at a steady rate, decoupling the
// simulation speed from however often the render loop runs.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a controller targeting the given generations
// per second.
func NewFixedStep(tps int) *FixedStep {
	if tps <= 0 {
		tps = 20
	}
	fs := &FixedStep{}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the generation rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 20
	}
	f.step = time.Second / time.Duration(tps)
}

// ShouldStep reports whether the simulation is due to advance by one
// generation. Call it once per frame; the result must be consumed even
// while paused so the accumulator stays bounded.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
