package temporal

import (
	"strconv"
	"strings"
	"time"
)

// Parse reads a delimiter-separated date string into a normalized UTC instant
// at precision p. The rules, in order:
//
//  1. A leading "-" marks the year negative (BC-style) and is stripped
//     before segment splitting.
//  2. The remainder splits on the delimiter into [year, month?, day?], each
//     read as a base-10 integer.
//  3. The year segment is mandatory; a missing or non-integer year is the
//     sole parse failure and returns *MalformedDateError.
//  4. A missing (or non-integer) month defaults to 1, likewise day.
//  5. Segments beyond day are silently discarded: "2345-6-7-99" parses as if
//     "99" were absent.
//  6. The assembled instant is truncated to p, so segments finer than the
//     requested precision are dropped from the result even when present in
//     the input.
//
// Out-of-range month or day values carry per calendar rollover, the same
// normalization Shift applies ("2024-13" lands in January 2025).
//
// Round-trip: Format(Parse(s, p), p) == s for any canonical padded s at
// precision p.
func Parse(s string, p Precision, opts ...Option) (time.Time, error) {
	o := applyOptions(opts)

	raw := s
	negative := strings.HasPrefix(raw, "-")
	if negative {
		raw = raw[1:]
	}

	parts := strings.Split(raw, o.delimiter)

	// strings.Split never returns an empty slice, so parts[0] always exists;
	// an empty input surfaces here as an unparseable year.
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		reason := "year segment is not an integer"
		if parts[0] == "" {
			reason = "year segment is missing"
		}
		return time.Time{}, &MalformedDateError{Input: s, Reason: reason}
	}
	if negative {
		year = -year
	}

	month := 1
	if len(parts) > 1 {
		if m, err := strconv.Atoi(parts[1]); err == nil {
			month = m
		}
	}

	day := 1
	if len(parts) > 2 {
		if d, err := strconv.Atoi(parts[2]); err == nil {
			day = d
		}
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return Truncate(t, p), nil
}
