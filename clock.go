package fontdemo

import "time"

// Clock reports the current time. SystemClock readings carry Go's
// monotonic component, so differences are immune to wall-clock steps.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time { return time.Now() }

// FrameClock measures elapsed time from the epoch captured when rendering starts.
type FrameClock struct {
	clock   Clock
	epoch   time.Time
	now     time.Time
	elapsed time.Duration
	started bool
}

// NewFrameClock creates a clock reading from c.
func NewFrameClock(c Clock) *FrameClock {
	if c == nil {
		c = SystemClock{}
	}
	return &FrameClock{clock: c}
}

// Start captures the epoch. Later calls are ignored.
func (fc *FrameClock) Start() {
	if fc.started {
		return
	}
	fc.epoch = fc.clock.Now()
	fc.now = fc.epoch
	fc.started = true
}

// Tick captures now and returns the elapsed time since the epoch.
// The result never decreases from one tick to the next.
func (fc *FrameClock) Tick() time.Duration {
	fc.now = fc.clock.Now()
	if d := fc.now.Sub(fc.epoch); d > fc.elapsed {
		fc.elapsed = d
	}
	return fc.elapsed
}

// Epoch returns the captured start time.
func (fc *FrameClock) Epoch() time.Time { return fc.epoch }

// Elapsed returns the elapsed time computed by the last Tick.
func (fc *FrameClock) Elapsed() time.Duration { return fc.elapsed }

// Seconds returns the last elapsed time in seconds, as the shader sees it.
func (fc *FrameClock) Seconds() float32 { return float32(fc.elapsed.Seconds()) }

// FrameInterval returns the tick period for a target rate in Hz.
func FrameInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = DefaultFrameRate
	}
	return time.Second / time.Duration(rate)
}
