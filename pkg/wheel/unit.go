// Package wheel implements the animated odometer-style digit display:
// per-unit trackers that roll a pair of digit wheels up or down on value
// changes, the direction resolver that decides which way a wheel turns,
// and the scheduler that keeps a set of trackers synchronized with a
// clock or countdown time source.
//
// The package never touches a concrete rendering technology. Renderers
// implement [Surface] and [UnitView]; the core owns every animation
// handle and tells the view what to draw each frame.
package wheel

// Unit names one tracked time unit.
type Unit string

const (
	// UnitDays is the day count (unbounded, countdown only).
	UnitDays Unit = "days"
	// UnitHours is the hour field (wraps at 24).
	UnitHours Unit = "hours"
	// UnitMinutes is the minute field (wraps at 60).
	UnitMinutes Unit = "minutes"
	// UnitSeconds is the second field (wraps at 60).
	UnitSeconds Unit = "seconds"
)

// unitOrder is the fixed order in which the scheduler creates and
// updates trackers within a work tick.
var unitOrder = []Unit{UnitDays, UnitHours, UnitMinutes, UnitSeconds}

// Wrap returns the unit's modulus: the value at which it rolls over to
// zero. Zero means the unit is unbounded (days).
func (u Unit) Wrap() int {
	switch u {
	case UnitSeconds, UnitMinutes:
		return 60
	case UnitHours:
		return 24
	default:
		return 0
	}
}

// DefaultLabel returns the built-in display label for the unit. Hosts
// override labels via [Config.Labels]; the string is opaque to the core.
func (u Unit) DefaultLabel() string {
	switch u {
	case UnitDays:
		return "Days"
	case UnitHours:
		return "Hours"
	case UnitMinutes:
		return "Minutes"
	case UnitSeconds:
		return "Seconds"
	default:
		return string(u)
	}
}

// Slot identifies one of the two digit positions within a tracker.
type Slot int

const (
	// SlotTens is the left (tens) digit position.
	SlotTens Slot = iota
	// SlotOnes is the right (ones) digit position.
	SlotOnes
)

// Direction is the visual roll direction of a digit transition.
type Direction int

const (
	// DirectionUp rolls forward, the way a clock advances.
	DirectionUp Direction = iota
	// DirectionDown rolls backward, the way a countdown regresses.
	DirectionDown
)

func (d Direction) String() string {
	if d == DirectionDown {
		return "down"
	}
	return "up"
}

// Mode selects the tracker's default roll behavior. It is fixed at
// tracker creation and never changes.
type Mode int

const (
	// ModeClock tracks wall-clock time; digits roll up by default.
	ModeClock Mode = iota
	// ModeCountdown tracks time remaining; digits roll down by default.
	ModeCountdown
)

func (m Mode) String() string {
	if m == ModeCountdown {
		return "countdown"
	}
	return "clock"
}
