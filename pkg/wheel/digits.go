package wheel

import (
	"math"
	"strconv"
)

// FormatValue renders a unit value as the zero-padded decimal string the
// wheel displays. Values below 10 gain a leading zero; values of 100 and
// above keep their full width (the wheel only ever shows the last two
// characters, so a day count of 123 still rolls the "23" window).
// Negative, NaN, and infinite values format to the "00" sentinel.
func FormatValue(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return "00"
	}
	s := strconv.FormatInt(int64(v), 10)
	if len(s) < 2 {
		s = "0" + s
	}
	return s
}

// DigitPair extracts the (tens, ones) digits from a unit value: the last
// two characters of its formatted string, each 0-9.
func DigitPair(v float64) (tens, ones int) {
	s := FormatValue(v)
	tail := s[len(s)-2:]
	return int(tail[0] - '0'), int(tail[1] - '0')
}

// digitRune converts a single digit 0-9 to its display rune.
func digitRune(d int) rune {
	return rune('0' + d)
}
