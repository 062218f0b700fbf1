package wheel

// Transition is the resolver's verdict for one digit slot.
type Transition struct {
	// Changed reports whether the slot's digit differs. When false,
	// Direction is meaningless.
	Changed bool
	// Direction is the visual roll direction for the change.
	Direction Direction
}

// Resolve decides whether a digit slot changed and which way it should
// roll, given the digit values and the whole unit values on either side
// of the change. wrap is the unit's modulus (60 for seconds and minutes,
// 24 for hours, 0 for unbounded units).
//
// Direction is decided in priority order:
//
//  1. Unit-level wraparound. The wrap pair max→0 always rolls up
//     (forward progression) and 0→max always rolls down (countdown
//     regression), regardless of which digit is being resolved. A
//     digit-level 9→0 or 0→9 is ambiguous without this unit context:
//     59→00 on a clock and 00→59 on an overshooting countdown cross the
//     same digit boundary in opposite visual directions.
//
//  2. Digit-level rollover: 9→0 while the unit value is not decreasing
//     rolls up; 0→9 while the unit value is not increasing rolls down.
//
//  3. Unit value direction: a decreasing unit rolls down, an increasing
//     unit rolls up. This is what makes a countdown's 10→09 roll down
//     even though the tens digit alone looks like a plain decrement.
//
//  4. Digit magnitude, reachable only when the caller passes equal unit
//     values with differing digits: the larger digit rolls up.
func Resolve(oldDigit, newDigit int, oldUnit, newUnit float64, wrap int) Transition {
	if oldDigit == newDigit {
		return Transition{}
	}

	if wrap > 0 {
		top := float64(wrap - 1)
		switch {
		case oldUnit == top && newUnit == 0:
			return Transition{Changed: true, Direction: DirectionUp}
		case oldUnit == 0 && newUnit == top:
			return Transition{Changed: true, Direction: DirectionDown}
		}
	}

	switch {
	case oldDigit == 9 && newDigit == 0 && newUnit >= oldUnit:
		return Transition{Changed: true, Direction: DirectionUp}
	case oldDigit == 0 && newDigit == 9 && newUnit <= oldUnit:
		return Transition{Changed: true, Direction: DirectionDown}
	case newUnit < oldUnit:
		return Transition{Changed: true, Direction: DirectionDown}
	case newUnit > oldUnit:
		return Transition{Changed: true, Direction: DirectionUp}
	case newDigit > oldDigit:
		return Transition{Changed: true, Direction: DirectionUp}
	default:
		return Transition{Changed: true, Direction: DirectionDown}
	}
}

// ResolveByMode is the legacy mode-only resolver: countdown trackers
// roll down, clock trackers roll up, with no regard for unit history.
//
// It is kept as an opt-in fallback ([TrackerOptions.LegacyResolver]) for
// hosts that matched the old behavior. Within a single 0-9 decade it
// agrees with [Resolve], but at decade and wraparound boundaries it can
// mis-animate (a clock's 59→00 and a countdown's 00→59 both cross 9↔0,
// which mode alone cannot disambiguate), so Resolve is the default.
func ResolveByMode(oldDigit, newDigit int, mode Mode) Transition {
	if oldDigit == newDigit {
		return Transition{}
	}
	dir := DirectionUp
	if mode == ModeCountdown {
		dir = DirectionDown
	}
	return Transition{Changed: true, Direction: dir}
}
