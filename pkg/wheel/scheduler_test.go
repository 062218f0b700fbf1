package wheel_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/flipclock/pkg/animation"
	flperrors "github.com/go-drift/flipclock/pkg/errors"
	"github.com/go-drift/flipclock/pkg/wheel"
	"github.com/go-drift/flipclock/pkg/wheeltest"
)

// countdownConfig returns a fast test config targeting d from the
// harness epoch.
func countdownConfig(h *wheeltest.Harness, d time.Duration, includeSeconds bool) wheel.Config {
	target := h.Clock.Now().Add(d)
	return wheel.Config{
		Source:             wheel.SourceCountdown,
		Target:             &target,
		IncludeSeconds:     includeSeconds,
		TickIntervalFrames: 1,
		Transition:         wheel.TrackerOptions{Duration: 100 * time.Millisecond},
	}
}

func TestScheduler_ClockUnits(t *testing.T) {
	_ = wheeltest.NewHarness(t)
	surface := wheeltest.NewSurface()

	s := wheel.NewScheduler(surface, wheel.Config{
		Source:             wheel.SourceClock,
		IncludeSeconds:     true,
		TickIntervalFrames: 1,
	})
	defer s.Destroy()

	assert.Equal(t, wheel.ModeClock, s.Mode())
	assert.Equal(t, []wheel.Unit{wheel.UnitHours, wheel.UnitMinutes, wheel.UnitSeconds}, s.Units())
	assert.Nil(t, s.Tracker(wheel.UnitDays))
	assert.Equal(t, "Minutes", surface.View(wheel.UnitMinutes).Label)
}

func TestScheduler_CountdownUnitsAndLabels(t *testing.T) {
	h := wheeltest.NewHarness(t)
	surface := wheeltest.NewSurface()

	cfg := countdownConfig(h, 48*time.Hour, true)
	cfg.Labels = map[wheel.Unit]string{wheel.UnitDays: "Tage"}
	s := wheel.NewScheduler(surface, cfg)
	defer s.Destroy()

	assert.Equal(t, wheel.ModeCountdown, s.Mode())
	assert.Equal(t,
		[]wheel.Unit{wheel.UnitDays, wheel.UnitHours, wheel.UnitMinutes, wheel.UnitSeconds},
		s.Units())
	assert.Equal(t, "Tage", surface.View(wheel.UnitDays).Label)
	assert.Equal(t, "Hours", surface.View(wheel.UnitHours).Label)
	assert.Equal(t, 2.0, s.Tracker(wheel.UnitDays).Value())
}

func TestScheduler_WorkTickForwardsValues(t *testing.T) {
	h := wheeltest.NewHarness(t)
	surface := wheeltest.NewSurface()

	s := wheel.NewScheduler(surface, wheel.Config{
		Source:             wheel.SourceClock,
		IncludeSeconds:     true,
		TickIntervalFrames: 1,
	})
	defer s.Destroy()

	// First frame fires the start timer; the loop ticks from the next
	// frame on.
	h.Frame(time.Second)
	assert.Equal(t, 0.0, s.Tracker(wheel.UnitSeconds).Value())

	h.Frame(time.Second)
	assert.Equal(t, 2.0, s.Tracker(wheel.UnitSeconds).Value())
}

func TestScheduler_ThrottlesWorkTicks(t *testing.T) {
	h := wheeltest.NewHarness(t)
	surface := wheeltest.NewSurface()

	s := wheel.NewScheduler(surface, wheel.Config{
		Source:             wheel.SourceClock,
		IncludeSeconds:     true,
		TickIntervalFrames: 5,
	})
	defer s.Destroy()

	h.Frame(time.Second) // start timer
	seconds := s.Tracker(wheel.UnitSeconds)

	// Four loop frames pass without a work tick.
	h.PumpFrames(4, time.Second)
	assert.Equal(t, 0.0, seconds.Value())

	// The fifth loop frame does the work.
	h.Frame(time.Second)
	assert.Equal(t, 6.0, seconds.Value())
}

func TestScheduler_StartDelay(t *testing.T) {
	h := wheeltest.NewHarness(t)
	surface := wheeltest.NewSurface()

	s := wheel.NewScheduler(surface, wheel.Config{
		Source:             wheel.SourceClock,
		IncludeSeconds:     true,
		TickIntervalFrames: 1,
		StartDelay:         2500 * time.Millisecond,
	})
	defer s.Destroy()

	seconds := s.Tracker(wheel.UnitSeconds)

	h.PumpFrames(2, time.Second)
	assert.Equal(t, 0.0, seconds.Value(), "no work before the start delay")

	h.Frame(time.Second) // delay elapsed, loop starts
	assert.Equal(t, 0.0, seconds.Value())

	h.Frame(time.Second) // first loop frame works
	assert.Equal(t, 4.0, seconds.Value())
}

func TestScheduler_CompletionLatchesOnce(t *testing.T) {
	h := wheeltest.NewHarness(t)
	surface := wheeltest.NewSurface()

	completions := 0
	cfg := countdownConfig(h, -time.Second, true)
	cfg.OnComplete = func() { completions++ }
	s := wheel.NewScheduler(surface, cfg)
	defer s.Destroy()

	h.Frame(100 * time.Millisecond) // start timer
	h.Frame(100 * time.Millisecond) // first work tick completes
	require.True(t, s.Completed())
	assert.Equal(t, 1, completions)
	for _, unit := range s.Units() {
		assert.Equal(t, 0.0, s.Tracker(unit).Value(), "%s forced to zero", unit)
	}

	// Completion stops the work loop; many more frames never re-fire.
	h.PumpFrames(50, time.Second)
	assert.Equal(t, 1, completions)
	assert.Equal(t, 0, animation.ActiveTickerCount())
}

func TestScheduler_EarlyCompletionWithoutSeconds(t *testing.T) {
	h := wheeltest.NewHarness(t)
	surface := wheeltest.NewSurface()

	completions := 0
	cfg := countdownConfig(h, 45*time.Second, false)
	cfg.OnComplete = func() { completions++ }
	s := wheel.NewScheduler(surface, cfg)
	defer s.Destroy()

	// 45s remain, under the default one-minute threshold applied when
	// seconds are hidden: complete while the total is still positive.
	h.Frame(100 * time.Millisecond)
	h.Frame(100 * time.Millisecond)
	assert.True(t, s.Completed())
	assert.Equal(t, 1, completions)
}

func TestScheduler_NoEarlyCompletionWithSeconds(t *testing.T) {
	h := wheeltest.NewHarness(t)
	surface := wheeltest.NewSurface()

	cfg := countdownConfig(h, 45*time.Second, true)
	s := wheel.NewScheduler(surface, cfg)
	defer s.Destroy()

	// Same 45s total, but with seconds visible the threshold is zero.
	h.Frame(100 * time.Millisecond)
	h.Frame(100 * time.Millisecond)
	assert.False(t, s.Completed())

	// It completes only once the target is actually crossed.
	h.PumpFrames(46, time.Second)
	assert.True(t, s.Completed())
}

func TestScheduler_MissingTargetNeverCompletes(t *testing.T) {
	diags := captureDiagnostics(t)
	h := wheeltest.NewHarness(t)
	surface := wheeltest.NewSurface()

	completions := 0
	s := wheel.NewScheduler(surface, wheel.Config{
		Source:             wheel.SourceCountdown,
		IncludeSeconds:     true,
		TickIntervalFrames: 1,
		OnComplete:         func() { completions++ },
	})
	defer s.Destroy()

	require.NotEmpty(t, diags.errs)
	assert.Equal(t, flperrors.KindConfig, diags.errs[0].Kind)

	// The invalid total is never "complete"; the display degrades to
	// zeros instead.
	h.PumpFrames(10, time.Second)
	assert.False(t, s.Completed())
	assert.Equal(t, 0, completions)
	assert.Equal(t, 0.0, s.Tracker(wheel.UnitSeconds).Value())
}

func TestScheduler_DestroyTearsEverythingDown(t *testing.T) {
	h := wheeltest.NewHarness(t)
	surface := wheeltest.NewSurface()

	s := wheel.NewScheduler(surface, countdownConfig(h, 90*time.Second, true))

	// Get transitions in flight, then destroy mid-animation.
	h.Frame(time.Second)
	h.Frame(time.Second)
	h.Frame(10 * time.Millisecond)

	s.Destroy()
	s.Destroy()

	for _, unit := range s.Units() {
		assert.Equal(t, 1, surface.View(unit).Detached, "%s detached exactly once", unit)
	}
	assert.Equal(t, 1, surface.DetachCount())
	assert.Equal(t, 0, animation.ActiveTickerCount(), "no timer or animation handle survives Destroy")

	// Frames after destruction change nothing.
	before := len(surface.Ops())
	h.PumpFrames(10, time.Second)
	assert.Len(t, surface.Ops(), before)
}

func TestScheduler_DestroyBeforeStartDelayCancelsTimer(t *testing.T) {
	h := wheeltest.NewHarness(t)
	surface := wheeltest.NewSurface()

	s := wheel.NewScheduler(surface, wheel.Config{
		Source:             wheel.SourceClock,
		StartDelay:         time.Minute,
		TickIntervalFrames: 1,
	})
	s.Destroy()

	assert.Equal(t, 0, animation.ActiveTickerCount())
	h.PumpFrames(120, time.Second)
	assert.Equal(t, 0, animation.ActiveTickerCount())
}

func TestScheduler_EndToEndCountdown(t *testing.T) {
	h := wheeltest.NewHarness(t)
	surface := wheeltest.NewSurface()

	completions := 0
	cfg := countdownConfig(h, 90*time.Second, true)
	cfg.OnComplete = func() { completions++ }
	s := wheel.NewScheduler(surface, cfg)
	defer s.Destroy()

	// The initial breakdown renders 1 minute, 30 seconds.
	assert.Equal(t, 1.0, s.Tracker(wheel.UnitMinutes).Value())
	assert.Equal(t, 30.0, s.Tracker(wheel.UnitSeconds).Value())

	// Half a second in, the first work tick moves seconds 30 -> 29:
	// the unit value is decreasing with no wrap, so both slots roll
	// down (3->2 and 0->9).
	h.Frame(250 * time.Millisecond)
	h.Frame(250 * time.Millisecond)
	assert.Equal(t, 29.0, s.Tracker(wheel.UnitSeconds).Value())

	view := surface.View(wheel.UnitSeconds)
	require.NotNil(t, view.LastTransition)
	assert.Equal(t, wheel.DirectionDown, view.LastTransition[wheel.SlotTens].Direction)
	assert.Equal(t, wheel.DirectionDown, view.LastTransition[wheel.SlotOnes].Direction)

	// Run past the target: everything forced to zero, the callback
	// fires exactly once, and the loop goes quiet.
	h.PumpFrames(95, time.Second)
	require.True(t, s.Completed())
	assert.Equal(t, 1, completions)
	for _, unit := range s.Units() {
		assert.Equal(t, 0.0, s.Tracker(unit).Value())
	}

	h.PumpFrames(10, time.Second)
	assert.Equal(t, 1, completions)
}
