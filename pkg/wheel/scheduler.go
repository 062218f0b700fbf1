package wheel

import (
	goerrors "errors"
	"time"

	"github.com/go-drift/flipclock/pkg/animation"
	"github.com/go-drift/flipclock/pkg/errors"
)

// Source selects what a scheduler tracks.
type Source int

const (
	// SourceClock tracks the current wall-clock time.
	SourceClock Source = iota
	// SourceCountdown tracks the time remaining until a target.
	SourceCountdown
)

func (s Source) String() string {
	if s == SourceCountdown {
		return "countdown"
	}
	return "clock"
}

const (
	// DefaultTickIntervalFrames is how many display frames pass between
	// work ticks when the host does not configure a cadence. The time
	// source does not need sampling at full refresh rate.
	DefaultTickIntervalFrames = 12

	// DefaultCompletionEarly is the completion threshold applied when
	// seconds are hidden. Without it a countdown would hold a stale
	// "00" minute display for up to a full extra minute.
	DefaultCompletionEarly = time.Minute
)

var errNoTarget = goerrors.New("countdown source with no target; completion will never fire")

// Config is the scheduler's construction surface.
type Config struct {
	// Source selects clock or countdown tracking.
	Source Source

	// Target is the countdown deadline. Required when Source is
	// SourceCountdown. A missing target is diagnosed and leaves the
	// countdown permanently incomplete, displaying zeros.
	Target *time.Time

	// IncludeSeconds adds a seconds unit to the display.
	IncludeSeconds bool

	// TwelveHour displays clock hours as 1..12 instead of 0..23.
	TwelveHour bool

	// TickIntervalFrames throttles work ticks: only every Nth display
	// frame recomputes time and updates trackers.
	// Zero means DefaultTickIntervalFrames.
	TickIntervalFrames int

	// StartDelay postpones the first frame of the tick loop.
	StartDelay time.Duration

	// CompletionEarly declares a countdown complete while this much
	// signed time still remains. Only consulted when seconds are hidden;
	// with seconds visible the threshold is always zero.
	// Zero means DefaultCompletionEarly.
	CompletionEarly time.Duration

	// Labels overrides the display label per unit. The strings are
	// opaque to the core.
	Labels map[Unit]string

	// OnComplete fires at most once, when a countdown completes.
	OnComplete func()

	// Transition configures every tracker's digit roll.
	Transition TrackerOptions
}

func (c Config) withDefaults() Config {
	if c.TickIntervalFrames <= 0 {
		c.TickIntervalFrames = DefaultTickIntervalFrames
	}
	if c.CompletionEarly <= 0 {
		c.CompletionEarly = DefaultCompletionEarly
	}
	return c
}

// Scheduler owns one tracker per displayed time unit and keeps them
// synchronized with the time source.
//
// The scheduler registers with the frame loop (see animation.StepTickers)
// after Config.StartDelay. Every frame increments a counter; every
// TickIntervalFrames-th frame is a work tick that computes a fresh
// [Breakdown] and forwards each unit's value to its tracker, in fixed
// breakdown order, before control returns to the loop.
//
// Destroying the scheduler destroys every tracker exactly once,
// synchronously, before returning. No tracker outlives its scheduler.
type Scheduler struct {
	cfg        Config
	mode       Mode
	surface    Surface
	trackers   map[Unit]*Tracker
	units      []Unit
	frames     int
	completed  bool
	destroyed  bool
	loop       *animation.Ticker
	startTimer *animation.FrameTimer
}

// NewScheduler builds trackers from the first computed breakdown and
// arms the tick loop. The initial values render immediately; animation
// begins once the loop starts.
func NewScheduler(surface Surface, cfg Config) *Scheduler {
	cfg = cfg.withDefaults()
	s := &Scheduler{
		cfg:      cfg,
		surface:  surface,
		trackers: make(map[Unit]*Tracker),
	}
	if cfg.Source == SourceCountdown {
		s.mode = ModeCountdown
		if cfg.Target == nil {
			errors.Reportf("wheel.NewScheduler", errors.KindConfig, errNoTarget)
		}
	}

	b := s.breakdown()
	for _, unit := range unitOrder {
		v, ok := b.Value(unit)
		if !ok {
			continue
		}
		label := unit.DefaultLabel()
		if l, ok := cfg.Labels[unit]; ok {
			label = l
		}
		view := surface.AttachUnit(unit, label)
		s.trackers[unit] = NewTracker(view, unit, s.mode, v, cfg.Transition)
		s.units = append(s.units, unit)
	}

	s.loop = animation.NewTicker(s.step)
	s.startTimer = animation.NewFrameTimer(cfg.StartDelay, func() {
		s.startTimer = nil
		if s.destroyed {
			return
		}
		s.loop.Start()
	})
	s.startTimer.Start()
	return s
}

// Mode returns the mode shared by every tracker.
func (s *Scheduler) Mode() Mode { return s.mode }

// Units returns the tracked units in update order.
func (s *Scheduler) Units() []Unit { return s.units }

// Tracker returns the tracker for a unit, or nil if the unit is not
// displayed.
func (s *Scheduler) Tracker(unit Unit) *Tracker { return s.trackers[unit] }

// Completed reports whether countdown completion has latched.
func (s *Scheduler) Completed() bool { return s.completed }

// Destroy tears the scheduler down: the pending start timer and the
// frame loop are cancelled, every tracker is destroyed exactly once, and
// the surface is detached. Idempotent; ticks scheduled before Destroy
// observe the destroyed flag and do nothing.
func (s *Scheduler) Destroy() {
	if s.destroyed {
		return
	}
	s.destroyed = true
	if s.startTimer != nil {
		s.startTimer.Stop()
		s.startTimer = nil
	}
	s.loop.Stop()
	for _, unit := range s.units {
		s.trackers[unit].Destroy()
	}
	s.surface.Detach()
}

func (s *Scheduler) step(elapsed time.Duration) {
	if s.destroyed {
		return
	}
	s.frames++
	if s.frames%s.cfg.TickIntervalFrames != 0 {
		return
	}
	s.workTick()
}

func (s *Scheduler) workTick() {
	b := s.breakdown()

	if s.mode == ModeCountdown && !s.completed {
		// An invalid breakdown (unknown target) never completes.
		if b.Valid && b.TotalMs < s.completionThresholdMs() {
			s.complete()
			return
		}
	}
	if s.completed {
		return
	}

	for _, unit := range s.units {
		v, ok := b.Value(unit)
		if !ok {
			continue
		}
		s.trackers[unit].Update(v)
	}
}

// complete latches the completed flag, forces every tracker to zero, and
// fires the completion callback. The latch never resets, so the callback
// fires at most once no matter how many later ticks are also "complete".
func (s *Scheduler) complete() {
	s.completed = true
	for _, unit := range s.units {
		s.trackers[unit].Update(0)
	}
	if s.cfg.OnComplete != nil {
		s.cfg.OnComplete()
	}
	s.loop.Stop()
}

func (s *Scheduler) completionThresholdMs() int64 {
	if s.cfg.IncludeSeconds {
		return 0
	}
	return s.cfg.CompletionEarly.Milliseconds()
}

func (s *Scheduler) breakdown() Breakdown {
	now := animation.Now()
	if s.mode == ModeCountdown {
		if s.cfg.Target == nil {
			return Breakdown{HasDays: true, HasSeconds: s.cfg.IncludeSeconds}
		}
		return Remaining(now, *s.cfg.Target, s.cfg.IncludeSeconds)
	}
	return CurrentTime(now, s.cfg.TwelveHour, s.cfg.IncludeSeconds)
}
