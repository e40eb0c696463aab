package game

import "time"

// DefaultMaxStep caps a single frame's delta after stalls such as window drags.
const DefaultMaxStep = 0.1

// DeltaTime measures seconds between frames.
type DeltaTime struct {
	MaxStep float32

	last time.Time
	now  func() time.Time
}

// NewDeltaTime starts a frame timer.
func NewDeltaTime() *DeltaTime {
	d := &DeltaTime{MaxStep: DefaultMaxStep, now: time.Now}
	d.last = d.now()
	return d
}

// Tick returns the seconds since the previous Tick, clamped to [0, MaxStep].
func (d *DeltaTime) Tick() float32 {
	now := d.now()
	dt := float32(now.Sub(d.last).Seconds())
	d.last = now
	if dt < 0 {
		return 0
	}
	if d.MaxStep > 0 && dt > d.MaxStep {
		return d.MaxStep
	}
	return dt
}
