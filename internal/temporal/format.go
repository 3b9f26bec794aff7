package temporal

import (
	"fmt"
	"strings"
	"time"
)

// DefaultDelimiter separates year/month/day segments in formatted output and
// is the split token for Parse.
const DefaultDelimiter = "-"

type options struct {
	delimiter string
}

// Option configures Format, FormatRange, and Parse.
type Option func(*options)

// WithDelimiter overrides the segment delimiter (default "-").
//
// Note that a delimiter of "-" is also the negative-year marker; Parse
// disambiguates by treating only a leading "-" as the sign.
func WithDelimiter(d string) Option {
	return func(o *options) {
		o.delimiter = d
	}
}

func applyOptions(opts []Option) options {
	o := options{delimiter: DefaultDelimiter}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Format renders t as delimiter-joined year/month/day segments, including
// only the segments at or coarser than p. String rendering is defined down to
// Day: precisions finer than Day still render year-month-day.
//
//	Format(t, Year)  -> "2024"
//	Format(t, Month) -> "2024-03"
//	Format(t, Day)   -> "2024-03-07"
//
// Month and day are zero-padded to 2 digits, month 1-indexed. Years pad to at
// least 4 digits; negative years render as a leading "-" with the magnitude
// padded to 6 digits ("-000099"), the extended ISO 8601 convention.
func Format(t time.Time, p Precision, opts ...Option) string {
	o := applyOptions(opts)
	u := t.UTC()

	segs := make([]string, 0, 3)
	segs = append(segs, formatYear(u.Year()))
	if p >= Month {
		segs = append(segs, fmt.Sprintf("%02d", int(u.Month())))
	}
	if p >= Day {
		segs = append(segs, fmt.Sprintf("%02d", u.Day()))
	}
	return strings.Join(segs, o.delimiter)
}

// FormatRange renders a start/end pair as "<start> - <end>" with each
// endpoint formatted at p. Both endpoints absent yields the empty string; a
// single absent endpoint renders as empty on its side. Ordering of the
// endpoints is not validated.
func FormatRange(p Precision, start, end *time.Time, opts ...Option) string {
	if start == nil && end == nil {
		return ""
	}
	var s, e string
	if start != nil {
		s = Format(*start, p, opts...)
	}
	if end != nil {
		e = Format(*end, p, opts...)
	}
	return s + " - " + e
}

// formatYear pads non-negative years to 4 digits and renders negative years
// as "-" plus a 6-digit magnitude, matching what Parse round-trips.
func formatYear(year int) string {
	if year < 0 {
		return fmt.Sprintf("-%06d", -year)
	}
	return fmt.Sprintf("%04d", year)
}
