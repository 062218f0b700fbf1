package wheel

import (
	"fmt"
	"math"
	"time"

	"github.com/go-drift/flipclock/pkg/animation"
	"github.com/go-drift/flipclock/pkg/errors"
)

const (
	// DefaultTransitionDuration is the length of a digit roll when the
	// host does not configure one.
	DefaultTransitionDuration = 600 * time.Millisecond

	// MaxTrackedValue is the top of the supported value range. Values
	// outside [0, MaxTrackedValue] are diagnosed but still applied.
	MaxTrackedValue = 9999
)

// TrackerOptions configures a tracker's transitions.
type TrackerOptions struct {
	// Duration is the length of one digit roll.
	// Zero means DefaultTransitionDuration.
	Duration time.Duration

	// Curve eases the roll. Nil means animation.EaseInOut.
	Curve func(float64) float64

	// LegacyResolver picks roll direction purely from the tracker mode
	// instead of the unit value history. See [ResolveByMode] for the
	// fidelity trade-off.
	LegacyResolver bool
}

func (o TrackerOptions) withDefaults() TrackerOptions {
	if o.Duration <= 0 {
		o.Duration = DefaultTransitionDuration
	}
	if o.Curve == nil {
		o.Curve = animation.EaseInOut
	}
	return o
}

// trackerSlot holds one digit position's resting digit and its in-flight
// animation handle, nil while idle.
type trackerSlot struct {
	digit int
	anim  *animation.Controller
}

// Tracker owns the animated display of one time unit's two-digit value.
//
// A tracker is created with an initial value (rendered immediately, no
// animation), mutated only through [Tracker.Update], and torn down with
// [Tracker.Destroy]. Each digit slot runs at most one transition at a
// time: an update that lands mid-roll cancels the old transition before
// the new one starts, so no frame ever shows two competing digits.
type Tracker struct {
	unit      Unit
	mode      Mode
	view      UnitView
	opts      TrackerOptions
	value     float64
	slots     [2]trackerSlot
	destroyed bool
}

// NewTracker creates a tracker showing initial, without animation.
func NewTracker(view UnitView, unit Unit, mode Mode, initial float64, opts TrackerOptions) *Tracker {
	t := &Tracker{
		unit: unit,
		mode: mode,
		view: view,
		opts: opts.withDefaults(),
	}
	t.value = initial
	tens, ones := DigitPair(initial)
	t.slots[SlotTens].digit = tens
	t.slots[SlotOnes].digit = ones
	view.SetDigit(SlotTens, digitRune(tens))
	view.SetDigit(SlotOnes, digitRune(ones))
	return t
}

// Unit returns the time unit this tracker displays.
func (t *Tracker) Unit() Unit { return t.unit }

// Mode returns the tracker's fixed mode.
func (t *Tracker) Mode() Mode { return t.mode }

// Value returns the last value applied through Update.
func (t *Tracker) Value() float64 { return t.value }

// ActiveTransitions returns how many slots are currently mid-roll.
func (t *Tracker) ActiveTransitions() int {
	n := 0
	for i := range t.slots {
		if t.slots[i].anim != nil {
			n++
		}
	}
	return n
}

// Update applies a new unit value.
//
// Values that are non-finite or outside [0, MaxTrackedValue] emit a
// diagnostic but are still applied; they render as the "00" sentinel
// rather than failing. Updating with the current value is a no-op, as is
// any update after Destroy.
func (t *Tracker) Update(value float64) {
	if t.destroyed {
		return
	}
	if !trackable(value) {
		errors.Reportf("wheel.Tracker.Update", errors.KindInput,
			fmt.Errorf("%s value %v outside [0, %d]", t.unit, value, MaxTrackedValue))
	}
	if value == t.value {
		return
	}

	oldValue := t.value
	t.value = value
	oldTens, oldOnes := DigitPair(oldValue)
	newTens, newOnes := DigitPair(value)
	t.updateSlot(SlotTens, oldTens, newTens, oldValue, value)
	t.updateSlot(SlotOnes, oldOnes, newOnes, oldValue, value)
}

// Destroy cancels any in-flight transitions and detaches the view.
// Idempotent; all later Update calls are no-ops.
func (t *Tracker) Destroy() {
	if t.destroyed {
		return
	}
	t.destroyed = true
	t.cancelSlot(SlotTens)
	t.cancelSlot(SlotOnes)
	t.view.Detach()
}

func (t *Tracker) resolve(oldDigit, newDigit int, oldValue, newValue float64) Transition {
	if t.opts.LegacyResolver {
		return ResolveByMode(oldDigit, newDigit, t.mode)
	}
	return Resolve(oldDigit, newDigit, oldValue, newValue, t.unit.Wrap())
}

func (t *Tracker) updateSlot(slot Slot, oldDigit, newDigit int, oldValue, newValue float64) {
	tr := t.resolve(oldDigit, newDigit, oldValue, newValue)
	if !tr.Changed {
		return
	}

	// Cancel happens-before restart: the old roll's completion must be
	// a guaranteed no-op before the new roll begins.
	t.cancelSlot(slot)

	s := &t.slots[slot]
	from := digitRune(s.digit)
	to := digitRune(newDigit)
	dir := tr.Direction
	target := newDigit

	ctrl := animation.NewController(t.opts.Duration)
	ctrl.Curve = t.opts.Curve
	ctrl.AddListener(func() {
		t.view.ShowTransition(slot, from, to, dir, ctrl.Value)
	})
	ctrl.OnComplete = func() {
		s.digit = target
		s.anim = nil
		t.view.SetDigit(slot, to)
	}
	s.anim = ctrl
	ctrl.Start()
}

func (t *Tracker) cancelSlot(slot Slot) {
	s := &t.slots[slot]
	if s.anim != nil {
		s.anim.Stop()
		s.anim = nil
	}
}

func trackable(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0 && v <= MaxTrackedValue
}
