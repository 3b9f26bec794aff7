package temporal

import (
	"errors"
	"fmt"
	"strings"
)

// MalformedDateError is returned by Parse when the year segment is absent or
// not an integer. It is the only validation failure in this package and is
// fatal to the call - no partial result is produced.
type MalformedDateError struct {
	// Input is the original, unmodified date string.
	Input string

	// Reason describes what made the year segment unusable.
	Reason string
}

// Error implements the error interface.
func (e *MalformedDateError) Error() string {
	return fmt.Sprintf("malformed date string %q: %s", e.Input, e.Reason)
}

// UnknownPrecisionError is returned by ParsePrecision for a resolution name
// outside the fixed accepted set.
type UnknownPrecisionError struct {
	// Name is the rejected resolution name.
	Name string
}

// Error implements the error interface.
func (e *UnknownPrecisionError) Error() string {
	return fmt.Sprintf("unknown precision name %q: must be one of %s",
		e.Name, strings.Join(resolutionNames, ", "))
}

// IsMalformedDate returns true if the error is a malformed date string error.
// Uses errors.As to handle wrapped errors.
func IsMalformedDate(err error) bool {
	var me *MalformedDateError
	return errors.As(err, &me)
}

// IsUnknownPrecision returns true if the error is an unknown precision name
// error. Uses errors.As to handle wrapped errors.
func IsUnknownPrecision(err error) bool {
	var ue *UnknownPrecisionError
	return errors.As(err, &ue)
}
