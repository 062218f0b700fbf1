package wheel

import "time"

// Breakdown is an immutable snapshot of the tracked time, produced fresh
// on every work tick. Displayed fields are clamped to zero even when the
// signed total has gone negative (countdown overshoot).
type Breakdown struct {
	// TotalMs is the signed total in milliseconds: wall-clock millis for
	// a clock source, millis until the target for a countdown. Negative
	// once a countdown overshoots.
	TotalMs int64

	// Valid is false when the total could not be computed (unknown or
	// unparseable countdown target). An invalid breakdown never declares
	// completion; its displayed fields are all zero.
	Valid bool

	// Days is the whole-day count. Present only for countdowns.
	Days    int
	HasDays bool

	// Hours is 0..23, or 1..12 in twelve-hour clock display.
	Hours int

	// Minutes is 0..59.
	Minutes int

	// Seconds is 0..59. Present only when the display includes seconds.
	Seconds    int
	HasSeconds bool
}

// Value returns the named unit's value and whether that unit is present
// in this breakdown.
func (b Breakdown) Value(u Unit) (float64, bool) {
	switch u {
	case UnitDays:
		if !b.HasDays {
			return 0, false
		}
		return float64(b.Days), true
	case UnitHours:
		return float64(b.Hours), true
	case UnitMinutes:
		return float64(b.Minutes), true
	case UnitSeconds:
		if !b.HasSeconds {
			return 0, false
		}
		return float64(b.Seconds), true
	default:
		return 0, false
	}
}

// CurrentTime computes the breakdown for a wall-clock display.
func CurrentTime(now time.Time, twelveHour, includeSeconds bool) Breakdown {
	hours := now.Hour()
	if twelveHour {
		hours = hours % 12
		if hours == 0 {
			hours = 12
		}
	}
	return Breakdown{
		TotalMs:    now.UnixMilli(),
		Valid:      true,
		Hours:      hours,
		Minutes:    now.Minute(),
		Seconds:    now.Second(),
		HasSeconds: includeSeconds,
	}
}

// Remaining computes the breakdown for a countdown toward target. The
// signed total may be negative; the displayed fields are clamped to zero.
func Remaining(now, target time.Time, includeSeconds bool) Breakdown {
	diff := target.Sub(now)
	clamped := diff
	if clamped < 0 {
		clamped = 0
	}
	return Breakdown{
		TotalMs:    diff.Milliseconds(),
		Valid:      true,
		Days:       int(clamped / (24 * time.Hour)),
		HasDays:    true,
		Hours:      int(clamped/time.Hour) % 24,
		Minutes:    int(clamped/time.Minute) % 60,
		Seconds:    int(clamped/time.Second) % 60,
		HasSeconds: includeSeconds,
	}
}
