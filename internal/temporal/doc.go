// Package temporal provides precision-aware calendar values for SKOPE.
//
// This package contains pure functions and value types only. The config,
// query, and cli layers build on it; temporal imports nothing internal.
//
// A value here is conceptually a pair (instant, precision): a UTC calendar
// timestamp together with the granularity at which it is meaningful. Fields
// finer than the precision are held at their conventional zero points
// (month -> January, day -> 1, hour/minute/second/millisecond -> 0). A value
// whose sub-precision fields all sit at these zero points is "normalized";
// every construction path in this package produces normalized values.
//
// Key design constraints:
//   - UTC only. Every operation normalizes its input to UTC and returns UTC.
//   - Proleptic Gregorian calendar (time.Time's native calendar). Negative
//     years are valid and render in the extended ISO 8601 form ("-000099").
//   - Inputs are never mutated: each operation returns a freshly constructed
//     time.Time, so concurrent use needs no locking.
//   - Total functions: apart from Parse and ParsePrecision, no operation can
//     fail on any input.
package temporal
