package wheeltest

import (
	"fmt"

	"github.com/go-drift/flipclock/pkg/wheel"
)

// Op records one call made against a recording surface.
type Op struct {
	// Kind is one of "attach", "set", "transition", "detach-unit",
	// "detach-surface".
	Kind      string
	Unit      wheel.Unit
	Label     string
	Slot      wheel.Slot
	From      rune
	To        rune
	Digit     rune
	Direction wheel.Direction
	Progress  float64
}

// String renders the op in a compact, diffable form.
func (o Op) String() string {
	switch o.Kind {
	case "attach":
		return fmt.Sprintf("attach %s %q", o.Unit, o.Label)
	case "set":
		return fmt.Sprintf("set %s[%d]=%c", o.Unit, o.Slot, o.Digit)
	case "transition":
		return fmt.Sprintf("transition %s[%d] %c->%c %s %.2f",
			o.Unit, o.Slot, o.From, o.To, o.Direction, o.Progress)
	case "detach-unit":
		return fmt.Sprintf("detach %s", o.Unit)
	default:
		return o.Kind
	}
}

// Surface is a recording wheel.Surface. It keeps per-unit views with
// their last known state plus a chronological op log, so tests can
// assert both "what is displayed now" and "what happened in what order".
type Surface struct {
	ops      []Op
	views    map[wheel.Unit]*UnitView
	order    []wheel.Unit
	detached int
}

// NewSurface creates an empty recording surface.
func NewSurface() *Surface {
	return &Surface{views: make(map[wheel.Unit]*UnitView)}
}

// AttachUnit records the attach and returns a recording view.
func (s *Surface) AttachUnit(unit wheel.Unit, label string) wheel.UnitView {
	v := &UnitView{
		surface: s,
		Unit:    unit,
		Label:   label,
		Digits:  make(map[wheel.Slot]rune),
	}
	s.views[unit] = v
	s.order = append(s.order, unit)
	s.record(Op{Kind: "attach", Unit: unit, Label: label})
	return v
}

// Detach records the surface detach.
func (s *Surface) Detach() {
	s.detached++
	s.record(Op{Kind: "detach-surface"})
}

// DetachCount returns how many times Detach was called.
func (s *Surface) DetachCount() int { return s.detached }

// View returns the recording view for a unit, or nil.
func (s *Surface) View(unit wheel.Unit) *UnitView { return s.views[unit] }

// AttachedUnits returns units in attach order.
func (s *Surface) AttachedUnits() []wheel.Unit { return s.order }

// Ops returns the chronological op log.
func (s *Surface) Ops() []Op { return s.ops }

// OpLog returns the op log rendered as strings, for golden-style
// comparisons.
func (s *Surface) OpLog() []string {
	log := make([]string, len(s.ops))
	for i, op := range s.ops {
		log[i] = op.String()
	}
	return log
}

func (s *Surface) record(op Op) {
	s.ops = append(s.ops, op)
}

// UnitView is the recording view for one unit.
type UnitView struct {
	surface *Surface
	Unit    wheel.Unit
	Label   string

	// Digits holds the last resting digit per slot.
	Digits map[wheel.Slot]rune

	// Transitions counts ShowTransition calls per slot.
	Transitions map[wheel.Slot]int

	// LastTransition holds the most recent transition op per slot.
	LastTransition map[wheel.Slot]Op

	// Detached counts Detach calls; the contract allows exactly one.
	Detached int
}

// SetDigit records a resting digit.
func (v *UnitView) SetDigit(slot wheel.Slot, d rune) {
	v.Digits[slot] = d
	v.surface.record(Op{Kind: "set", Unit: v.Unit, Slot: slot, Digit: d})
}

// ShowTransition records one frame of a roll.
func (v *UnitView) ShowTransition(slot wheel.Slot, from, to rune, dir wheel.Direction, progress float64) {
	op := Op{
		Kind:      "transition",
		Unit:      v.Unit,
		Slot:      slot,
		From:      from,
		To:        to,
		Direction: dir,
		Progress:  progress,
	}
	if v.Transitions == nil {
		v.Transitions = make(map[wheel.Slot]int)
	}
	if v.LastTransition == nil {
		v.LastTransition = make(map[wheel.Slot]Op)
	}
	v.Transitions[slot]++
	v.LastTransition[slot] = op
	v.surface.record(op)
}

// Detach records the view detach.
func (v *UnitView) Detach() {
	v.Detached++
	v.surface.record(Op{Kind: "detach-unit", Unit: v.Unit})
}
