package fontdemo

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"
)

// State is the lifecycle state of a Scheduler.
type State int32

const (
	StateIdle State = iota
	StateRunning
	StateTerminated
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Events is the host window's event queue.
type Events interface {
	// Poll processes pending events without blocking.
	Poll()
	// Wait blocks until an event arrives or timeout elapses.
	Wait(timeout time.Duration)
	// ExitRequested reports whether a processed event asked to stop.
	ExitRequested() bool
}

// Surface presents the rendered frame.
type Surface interface {
	SwapBuffers() error
}

// TickSource decides when ticks happen. Run calls tick on the calling
// goroutine once per frame interval until an exit is requested (nil),
// ctx is done (ctx.Err()) or tick fails (that error).
type TickSource interface {
	Run(ctx context.Context, tick func() error) error
}

// TickObserver is called after each presented frame.
type TickObserver func(Frame)

// errStop ends a run from inside a tick without reporting an error.
var errStop = errors.New("stop")

// Scheduler drives a RenderContext from a TickSource: each tick captures
// the time, pushes uniforms, draws the quad and presents.
type Scheduler struct {
	rc        *RenderContext
	source    TickSource
	surface   Surface
	clock     *FrameClock
	state     atomic.Int32
	tick      uint64
	maxTicks  uint64
	observers []TickObserver
}

// SchedulerOption configures a Scheduler.
type SchedulerOption func(*Scheduler)

// WithClock sets the clock elapsed time is read from.
func WithClock(c Clock) SchedulerOption {
	return func(s *Scheduler) { s.clock = NewFrameClock(c) }
}

// WithTickObserver registers fn to be called after every presented frame.
func WithTickObserver(fn TickObserver) SchedulerOption {
	return func(s *Scheduler) { s.observers = append(s.observers, fn) }
}

// WithMaxTicks ends the run after n ticks. Zero means no limit.
func WithMaxTicks(n uint64) SchedulerOption {
	return func(s *Scheduler) { s.maxTicks = n }
}

// NewScheduler creates an idle scheduler.
func NewScheduler(rc *RenderContext, source TickSource, surface Surface, opts ...SchedulerOption) *Scheduler {
	s := &Scheduler{
		rc:      rc,
		source:  source,
		surface: surface,
		clock:   NewFrameClock(SystemClock{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current lifecycle state.
func (s *Scheduler) State() State { return State(s.state.Load()) }

// Ticks returns the number of ticks run so far.
func (s *Scheduler) Ticks() uint64 { return s.tick }

// Clock returns the frame clock.
func (s *Scheduler) Clock() *FrameClock { return s.clock }

// Run captures the epoch and ticks until the source stops. It can only be
// called once; the scheduler is terminated when Run returns.
func (s *Scheduler) Run(ctx context.Context) error {
	if !s.state.CompareAndSwap(int32(StateIdle), int32(StateRunning)) {
		return ErrSchedulerState
	}
	defer s.state.Store(int32(StateTerminated))

	s.clock.Start()
	s.rc.Logger.Info("rendering",
		"width", s.rc.Viewport.Width,
		"height", s.rc.Viewport.Height,
		"rate", s.rc.Config.FrameRate)

	err := s.source.Run(ctx, s.step)
	if errors.Is(err, errStop) {
		err = nil
	}
	s.rc.Logger.Info("stopped", "ticks", s.tick, "elapsed", s.clock.Elapsed())
	return err
}

func (s *Scheduler) step() error {
	s.tick++
	elapsed := s.clock.Tick()
	f := s.rc.Frame(s.tick, float32(elapsed.Seconds()))

	if err := s.rc.Render(f); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := s.surface.SwapBuffers(); err != nil {
		return fmt.Errorf("present tick %d: %w", f.Tick, err)
	}
	for _, fn := range s.observers {
		fn(f)
	}
	if s.maxTicks > 0 && s.tick >= s.maxTicks {
		return errStop
	}
	return nil
}
