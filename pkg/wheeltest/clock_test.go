package wheeltest

import (
	"testing"
	"time"

	"github.com/go-drift/flipclock/pkg/wheel"
)

// TestFakeClock_Advance verifies time only moves when told to.
func TestFakeClock_Advance(t *testing.T) {
	c := NewFakeClock()
	start := c.Now()

	if c.Now() != start {
		t.Error("fake clock moved on its own")
	}

	c.Advance(3 * time.Second)
	if got := c.Now().Sub(start); got != 3*time.Second {
		t.Errorf("advanced %v, want 3s", got)
	}

	moment := time.Date(2025, 5, 5, 5, 5, 5, 0, time.UTC)
	c.Set(moment)
	if !c.Now().Equal(moment) {
		t.Errorf("Set did not take, got %v", c.Now())
	}
}

// TestSurface_RecordsOps verifies the recording surface keeps the
// op log in call order.
func TestSurface_RecordsOps(t *testing.T) {
	s := NewSurface()
	view := s.AttachUnit(wheel.UnitSeconds, "Seconds")
	view.SetDigit(wheel.SlotTens, '3')
	view.ShowTransition(wheel.SlotOnes, '0', '9', wheel.DirectionDown, 0.25)
	view.Detach()
	s.Detach()

	ops := s.Ops()
	if len(ops) != 5 {
		t.Fatalf("expected 5 ops, got %d: %v", len(ops), ops)
	}
	wantKinds := []string{"attach", "set", "transition", "detach-unit", "detach-surface"}
	for i, kind := range wantKinds {
		if ops[i].Kind != kind {
			t.Errorf("op %d: got kind %q, want %q", i, ops[i].Kind, kind)
		}
	}

	rec := s.View(wheel.UnitSeconds)
	if rec == nil {
		t.Fatal("view not recorded")
	}
	if rec.Digits[wheel.SlotTens] != '3' {
		t.Errorf("digit not recorded: %q", rec.Digits[wheel.SlotTens])
	}
	last := rec.LastTransition[wheel.SlotOnes]
	if last.From != '0' || last.To != '9' || last.Progress != 0.25 {
		t.Errorf("transition not recorded: %+v", last)
	}
	if rec.Detached != 1 || s.DetachCount() != 1 {
		t.Error("detach counts wrong")
	}
}
