package temporal

import "time"

// Shift adds offset (any signed magnitude) to the single field addressed by
// p. Overflowing values carry into coarser fields per standard calendar
// rollover (Month +1 from December rolls the year; Day +1 from Jan 31 lands
// on Feb 1). That carry is specified behavior, not an error.
//
// Fields finer than p are NOT re-zeroed - only the addressed field changes.
// Callers needing a normalized result truncate separately.
//
// Shift is total: PrecisionNone or an out-of-range ordinal returns the input
// unchanged (in UTC). The input is never mutated.
func Shift(t time.Time, p Precision, offset int) time.Time {
	u := t.UTC()
	switch p {
	case Year:
		return u.AddDate(offset, 0, 0)
	case Month:
		return u.AddDate(0, offset, 0)
	case Day:
		return u.AddDate(0, 0, offset)
	case Hour:
		return u.Add(time.Duration(offset) * time.Hour)
	case Minute:
		return u.Add(time.Duration(offset) * time.Minute)
	case Second:
		return u.Add(time.Duration(offset) * time.Second)
	case Millisecond:
		return u.Add(time.Duration(offset) * time.Millisecond)
	}
	return u
}

// Clamp constrains t into [min, max] by pure instant comparison: later than
// max yields max, earlier than min yields min, otherwise t unchanged.
//
// The max check runs first and the min check runs on the running value, so an
// inverted range (max earlier than min) resolves to min. Neither bound is
// validated - ordering is the caller's responsibility.
func Clamp(t, min, max time.Time) time.Time {
	out := t
	if out.After(max) {
		out = max
	}
	if out.Before(min) {
		out = min
	}
	return out
}
