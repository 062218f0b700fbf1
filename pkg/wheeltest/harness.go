package wheeltest

import (
	"testing"
	"time"

	"github.com/go-drift/flipclock/pkg/animation"
)

// Harness couples a FakeClock to the animation frame loop so tests can
// pump frames under controlled time. It installs the fake clock as the
// package-level animation clock and restores the previous clock on
// cleanup.
type Harness struct {
	Clock *FakeClock
	prev  animation.Clock
}

// NewHarness creates a harness that auto-restores the animation clock
// via t.Cleanup. This is the recommended constructor for tests.
func NewHarness(t *testing.T) *Harness {
	t.Helper()
	h := &Harness{Clock: NewFakeClock()}
	h.prev = animation.SetClock(h.Clock)
	t.Cleanup(h.Cleanup)
	return h
}

// Cleanup restores the previous animation clock.
func (h *Harness) Cleanup() {
	animation.SetClock(h.prev)
}

// Frame advances the clock by d and steps the frame loop once.
func (h *Harness) Frame(d time.Duration) {
	h.Clock.Advance(d)
	animation.StepTickers()
}

// PumpFrames steps the frame loop frames times, advancing the clock by
// perFrame before each step.
func (h *Harness) PumpFrames(frames int, perFrame time.Duration) {
	for i := 0; i < frames; i++ {
		h.Frame(perFrame)
	}
}

// Pump advances total time split evenly across the given number of
// frames. Useful for driving a transition from start to finish.
func (h *Harness) Pump(total time.Duration, frames int) {
	if frames <= 0 {
		frames = 1
	}
	h.PumpFrames(frames, total/time.Duration(frames))
}
