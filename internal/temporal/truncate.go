package temporal

import "time"

// Truncate returns t with every field strictly finer than p set to its zero
// point: month -> January, day -> 1, hour/minute/second -> 0, and
// sub-millisecond nanoseconds -> 0 at Millisecond precision. Fields at or
// coarser than p are preserved exactly.
//
// Passing PrecisionNone clears every field, year included, yielding the
// calendar origin 0000-01-01T00:00:00Z. There are no error conditions: every
// instant and every precision is valid input.
//
// The result is built in a single time.Date construction from the extracted
// fields, so zeroing a coarse field never disturbs a finer one. t itself is
// never modified.
func Truncate(t time.Time, p Precision) time.Time {
	u := t.UTC()
	year, month, day := u.Date()
	hour, minute, sec := u.Clock()
	nsec := u.Nanosecond()

	if p < Year {
		year = 0
	}
	if p < Month {
		month = time.January
	}
	if p < Day {
		day = 1
	}
	if p < Hour {
		hour = 0
	}
	if p < Minute {
		minute = 0
	}
	if p < Second {
		sec = 0
	}
	if p < Millisecond {
		nsec = 0
	} else {
		// Millisecond is the finest addressable field; anything below it is
		// always sub-precision and gets cleared.
		nsec -= nsec % int(time.Millisecond)
	}

	return time.Date(year, month, day, hour, minute, sec, nsec, time.UTC)
}
