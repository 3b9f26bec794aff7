package temporal

// Precision identifies the granularity at which a calendar value is
// meaningful, ordered coarsest to finest. The ordinal values are part of the
// contract: a Precision compares with < and > to decide which fields are
// "finer" than another.
type Precision int

const (
	// PrecisionNone is a sentinel below every calendar field. Truncating to
	// it clears every field, year included (year zero exists in the
	// proleptic Gregorian calendar). It is used for from-scratch date
	// construction and is not a valid resolution name.
	PrecisionNone Precision = iota - 1

	// Year through Millisecond are the seven addressable granularities.
	Year        // 0
	Month       // 1
	Day         // 2
	Hour        // 3
	Minute      // 4
	Second      // 5
	Millisecond // 6
)

// resolutions maps boundary resolution names onto Precision ordinals.
// The mapping is total and injective except for the declared "date"/"day"
// alias. Matching is exact and case-sensitive - no fuzzy matching.
var resolutions = map[string]Precision{
	"year":        Year,
	"month":       Month,
	"date":        Day,
	"day":         Day,
	"hour":        Hour,
	"minute":      Minute,
	"second":      Second,
	"millisecond": Millisecond,
}

// resolutionNames lists the accepted names in coarse-to-fine order, aliases
// adjacent. Used for error messages and CLI help.
var resolutionNames = []string{
	"year", "month", "day", "date", "hour", "minute", "second", "millisecond",
}

// ParsePrecision resolves a resolution name to its Precision.
//
// Unknown names fail loudly with an *UnknownPrecisionError rather than
// propagating an undefined ordinal; callers at the boundary (config, CLI)
// are expected to surface the error, not guard around it.
func ParsePrecision(name string) (Precision, error) {
	p, ok := resolutions[name]
	if !ok {
		return PrecisionNone, &UnknownPrecisionError{Name: name}
	}
	return p, nil
}

// ResolutionNames returns the accepted resolution names in a fixed
// coarse-to-fine order, including the "date" alias.
func ResolutionNames() []string {
	out := make([]string, len(resolutionNames))
	copy(out, resolutionNames)
	return out
}

// Valid reports whether p is one of the seven addressable granularities.
// PrecisionNone and out-of-range ordinals are not valid.
func (p Precision) Valid() bool {
	return p >= Year && p <= Millisecond
}

// String returns the canonical resolution name for p. The "day" spelling is
// used for Day (never the "date" alias). PrecisionNone renders as "none".
func (p Precision) String() string {
	switch p {
	case Year:
		return "year"
	case Month:
		return "month"
	case Day:
		return "day"
	case Hour:
		return "hour"
	case Minute:
		return "minute"
	case Second:
		return "second"
	case Millisecond:
		return "millisecond"
	case PrecisionNone:
		return "none"
	default:
		return "invalid"
	}
}
