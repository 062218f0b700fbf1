package animation

import (
	"fmt"
	"time"
)

// Status represents the current state of a controller.
type Status int

const (
	// StatusIdle means the controller has not started.
	StatusIdle Status = iota
	// StatusRunning means the controller is advancing toward 1.0.
	StatusRunning
	// StatusCompleted means the controller reached 1.0.
	StatusCompleted
	// StatusCancelled means the controller was stopped before reaching 1.0.
	StatusCancelled
)

// String returns a human-readable representation of the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusCompleted:
		return "completed"
	case StatusCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Controller drives a single time-bounded transition by producing values
// over time.
//
// The controller advances Value from 0.0 to 1.0 over Duration, applying
// Curve to ease the progression. It runs exactly once: Start arms it,
// and it either runs to completion (invoking OnComplete) or is cancelled
// via Stop. A cancelled controller never invokes OnComplete.
//
// Controllers are single-shot by design: the wheel allocates one per
// digit transition and drops it on completion or cancellation, so a
// stale handle can never resurrect a finished animation.
type Controller struct {
	// Value is the current progress, ranging from 0.0 to 1.0.
	Value float64

	// Duration is the length of the transition.
	Duration time.Duration

	// Curve transforms linear progress (optional).
	Curve func(float64) float64

	// OnComplete fires exactly once, when Value reaches 1.0 naturally.
	// It never fires after Stop.
	OnComplete func()

	status    Status
	ticker    *Ticker
	listeners map[int]func()
	nextID    int
}

// NewController creates a controller with the given duration.
func NewController(duration time.Duration) *Controller {
	return &Controller{
		Duration:  duration,
		Curve:     LinearCurve,
		status:    StatusIdle,
		listeners: make(map[int]func()),
	}
}

// Start begins the transition. Starting a controller that is already
// running or finished is a no-op.
func (c *Controller) Start() {
	if c.status != StatusIdle {
		return
	}
	c.status = StatusRunning
	c.ticker = NewTicker(func(elapsed time.Duration) {
		c.tick(elapsed)
	})
	c.ticker.Start()
}

func (c *Controller) tick(elapsed time.Duration) {
	if c.Duration <= 0 {
		c.Value = 1
		c.notifyListeners()
		c.finish()
		return
	}

	progress := float64(elapsed) / float64(c.Duration)
	if progress >= 1.0 {
		progress = 1.0
	}

	eased := progress
	if c.Curve != nil {
		eased = c.Curve(progress)
	}
	c.Value = eased
	c.notifyListeners()

	if progress >= 1.0 {
		c.finish()
	}
}

func (c *Controller) finish() {
	c.releaseTicker()
	c.status = StatusCompleted
	if c.OnComplete != nil {
		c.OnComplete()
	}
}

// Stop cancels the transition at its current value. The completion
// callback will not fire. Stop is idempotent and safe on any status.
func (c *Controller) Stop() {
	if c.status == StatusRunning {
		c.status = StatusCancelled
	}
	c.releaseTicker()
}

func (c *Controller) releaseTicker() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
}

// Status returns the current controller status.
func (c *Controller) Status() Status {
	return c.status
}

// IsRunning returns true while the transition is in flight.
func (c *Controller) IsRunning() bool {
	return c.status == StatusRunning
}

// AddListener adds a callback that fires whenever the value changes.
// Returns an unsubscribe function.
func (c *Controller) AddListener(fn func()) func() {
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	return func() {
		delete(c.listeners, id)
	}
}

func (c *Controller) notifyListeners() {
	for _, listener := range c.listeners {
		listener()
	}
}

// Dispose stops the controller and releases its listeners.
func (c *Controller) Dispose() {
	c.Stop()
	c.listeners = nil
	c.OnComplete = nil
}
