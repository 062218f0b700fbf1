package wheel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"single digit pads", 5, "05"},
		{"zero pads", 0, "00"},
		{"two digits pass through", 59, "59"},
		{"three digits keep full width", 123, "123"},
		{"four digits keep full width", 9999, "9999"},
		{"fraction truncates", 29.9, "29"},
		{"negative is sentinel", -1, "00"},
		{"NaN is sentinel", math.NaN(), "00"},
		{"+Inf is sentinel", math.Inf(1), "00"},
		{"-Inf is sentinel", math.Inf(-1), "00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatValue(tt.in))
		})
	}
}

func TestDigitPair(t *testing.T) {
	tests := []struct {
		name       string
		in         float64
		tens, ones int
	}{
		{"padded single digit", 5, 0, 5},
		{"plain two digits", 42, 4, 2},
		{"last two chars of longer value", 123, 2, 3},
		{"day count window", 365, 6, 5},
		{"negative sentinel", -1, 0, 0},
		{"NaN sentinel", math.NaN(), 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tens, ones := DigitPair(tt.in)
			assert.Equal(t, tt.tens, tens, "tens")
			assert.Equal(t, tt.ones, ones, "ones")
		})
	}
}
