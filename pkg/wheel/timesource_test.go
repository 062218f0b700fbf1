package wheel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCurrentTime(t *testing.T) {
	now := time.Date(2024, 3, 15, 13, 45, 30, 0, time.UTC)

	b := CurrentTime(now, false, true)
	assert.True(t, b.Valid)
	assert.False(t, b.HasDays)
	assert.True(t, b.HasSeconds)
	assert.Equal(t, 13, b.Hours)
	assert.Equal(t, 45, b.Minutes)
	assert.Equal(t, 30, b.Seconds)
	assert.Equal(t, now.UnixMilli(), b.TotalMs)
}

func TestCurrentTime_TwelveHour(t *testing.T) {
	tests := []struct {
		hour24 int
		want   int
	}{
		{0, 12},
		{1, 1},
		{11, 11},
		{12, 12},
		{13, 1},
		{23, 11},
	}
	for _, tt := range tests {
		now := time.Date(2024, 3, 15, tt.hour24, 0, 0, 0, time.UTC)
		b := CurrentTime(now, true, false)
		assert.Equal(t, tt.want, b.Hours, "hour %d", tt.hour24)
		assert.False(t, b.HasSeconds)
	}
}

func TestRemaining(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	target := now.Add(2*24*time.Hour + 3*time.Hour + 4*time.Minute + 5*time.Second)

	b := Remaining(now, target, true)
	assert.True(t, b.Valid)
	assert.True(t, b.HasDays)
	assert.Equal(t, 2, b.Days)
	assert.Equal(t, 3, b.Hours)
	assert.Equal(t, 4, b.Minutes)
	assert.Equal(t, 5, b.Seconds)
	assert.Equal(t, target.Sub(now).Milliseconds(), b.TotalMs)
}

func TestRemaining_NinetySeconds(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	b := Remaining(now, now.Add(90*time.Second), true)
	assert.Equal(t, 0, b.Days)
	assert.Equal(t, 0, b.Hours)
	assert.Equal(t, 1, b.Minutes)
	assert.Equal(t, 30, b.Seconds)
}

func TestRemaining_OvershootClampsDisplay(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	b := Remaining(now, now.Add(-5*time.Second), true)

	// The signed total keeps the overshoot; displayed fields clamp.
	assert.Equal(t, int64(-5000), b.TotalMs)
	assert.Equal(t, 0, b.Days)
	assert.Equal(t, 0, b.Hours)
	assert.Equal(t, 0, b.Minutes)
	assert.Equal(t, 0, b.Seconds)
}

func TestBreakdown_Value(t *testing.T) {
	b := Breakdown{
		Valid:      true,
		Days:       7,
		HasDays:    true,
		Hours:      8,
		Minutes:    9,
		Seconds:    10,
		HasSeconds: true,
	}

	days, ok := b.Value(UnitDays)
	assert.True(t, ok)
	assert.Equal(t, 7.0, days)

	seconds, ok := b.Value(UnitSeconds)
	assert.True(t, ok)
	assert.Equal(t, 10.0, seconds)

	clock := Breakdown{Valid: true, Hours: 8, Minutes: 9}
	_, ok = clock.Value(UnitDays)
	assert.False(t, ok)
	_, ok = clock.Value(UnitSeconds)
	assert.False(t, ok)
}

func TestUnitWrap(t *testing.T) {
	assert.Equal(t, 60, UnitSeconds.Wrap())
	assert.Equal(t, 60, UnitMinutes.Wrap())
	assert.Equal(t, 24, UnitHours.Wrap())
	assert.Equal(t, 0, UnitDays.Wrap())
}
