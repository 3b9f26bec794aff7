package temporal

import "time"

// Date is the normalized (instant, precision) pair: a UTC instant whose
// fields finer than its precision all sit at their zero points. The zero
// Date is year 1 at Year precision.
//
// Date is an immutable value; methods return new values and the type is safe
// to copy and to share across goroutines.
type Date struct {
	t time.Time
	p Precision
}

// NewDate builds a normalized Date by truncating t to p.
func NewDate(t time.Time, p Precision) Date {
	return Date{t: Truncate(t, p), p: p}
}

// ParseDate parses s at precision p into a normalized Date. Parsing failures
// are those of Parse.
func ParseDate(s string, p Precision, opts ...Option) (Date, error) {
	t, err := Parse(s, p, opts...)
	if err != nil {
		return Date{}, err
	}
	// Parse already truncates to p; no second normalization needed.
	return Date{t: t, p: p}, nil
}

// Time returns the underlying UTC instant. The zero Date reports the zero
// time, which is already normalized at Year precision (0001-01-01T00:00:00Z).
func (d Date) Time() time.Time {
	return d.t
}

// Precision returns the granularity the date is addressed at.
func (d Date) Precision() Precision {
	return d.p
}

// Format renders the date at its own precision.
func (d Date) Format(opts ...Option) string {
	return Format(d.Time(), d.p, opts...)
}

// Shift offsets the field addressed by the date's precision. A normalized
// value stays normalized under Shift: fields finer than the precision are
// already at their zero points and Shift never touches them.
func (d Date) Shift(offset int) Date {
	return Date{t: Shift(d.Time(), d.p, offset), p: d.p}
}

// Clamp constrains the date into [min, max] and re-truncates, since the
// winning bound may carry fields finer than the date's precision.
func (d Date) Clamp(min, max time.Time) Date {
	return NewDate(Clamp(d.Time(), min, max), d.p)
}

// Equal reports whether both dates address the same instant at the same
// precision.
func (d Date) Equal(other Date) bool {
	return d.p == other.p && d.Time().Equal(other.Time())
}

// String renders the date at its own precision with the default delimiter.
func (d Date) String() string {
	return d.Format()
}
