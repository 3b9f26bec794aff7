package value

import (
	"math"
	"strconv"
	"strings"
)

// NumberOr returns v as a float64 when v is a finite number of any builtin
// numeric type, and fallback otherwise. Strings are never parsed here; use
// Numberize for that.
func NumberOr(v any, fallback float64) float64 {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	default:
		return fallback
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fallback
	}
	return f
}

// ClampInt interprets v as a base-10 integer and clamps it into [min, max].
// Strings parse after whitespace trimming, floats truncate toward zero, and
// anything non-numeric counts as min. Truncation applies to float values
// only; a fractional string such as "3.5" is non-numeric here. The max bound
// applies before the min bound, so an inverted range resolves to min.
func ClampInt(v any, min, max int) int {
	n := min
	switch s := v.(type) {
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			n = i
		}
	default:
		if f := NumberOr(v, math.NaN()); !math.IsNaN(f) {
			n = int(f)
		}
	}
	if n > max {
		n = max
	}
	if n < min {
		n = min
	}
	return n
}
