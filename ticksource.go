package fontdemo

import (
	"context"
	"time"
)

// TimerSource ticks from a fixed-interval timer. Each timer fire pumps
// pending events and then ticks unless an exit was requested. Fires that
// arrive while a tick is still running are dropped.
type TimerSource struct {
	Events   Events
	Interval time.Duration
}

// NewTimerSource creates a timer-driven source at rate Hz.
func NewTimerSource(events Events, rate int) *TimerSource {
	return &TimerSource{Events: events, Interval: FrameInterval(rate)}
}

// Run implements TickSource. A non-positive Interval runs at DefaultFrameRate.
func (s *TimerSource) Run(ctx context.Context, tick func() error) error {
	t := time.NewTicker(interval(s.Interval))
	defer t.Stop()

	for {
		if s.Events.ExitRequested() {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			s.Events.Poll()
			if s.Events.ExitRequested() {
				return nil
			}
			if err := tick(); err != nil {
				return err
			}
		}
	}
}

// WaitSource drains pending events and then blocks on the event queue
// with a timeout running up to the next tick deadline. A tick happens only
// once the deadline has passed; if the loop falls more than one interval
// behind, the deadline is re-based instead of catching up.
type WaitSource struct {
	Events   Events
	Interval time.Duration
	Clock    Clock
}

// NewWaitSource creates a wait-driven source at rate Hz.
func NewWaitSource(events Events, rate int) *WaitSource {
	return &WaitSource{Events: events, Interval: FrameInterval(rate), Clock: SystemClock{}}
}

// Run implements TickSource. A non-positive Interval runs at DefaultFrameRate.
func (s *WaitSource) Run(ctx context.Context, tick func() error) error {
	clock := s.Clock
	if clock == nil {
		clock = SystemClock{}
	}
	period := interval(s.Interval)
	next := clock.Now().Add(period)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.Events.Poll()
		if s.Events.ExitRequested() {
			return nil
		}

		now := clock.Now()
		if remaining := next.Sub(now); remaining > 0 {
			s.Events.Wait(remaining)
			continue
		}

		if err := tick(); err != nil {
			return err
		}
		next = next.Add(period)
		if !next.After(now) {
			next = now.Add(period)
		}
	}
}

func interval(d time.Duration) time.Duration {
	if d <= 0 {
		return FrameInterval(DefaultFrameRate)
	}
	return d
}
