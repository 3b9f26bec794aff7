package query

import (
	"errors"
	"fmt"
)

// UnknownVariableError reports a query variable the dataset does not expose.
type UnknownVariableError struct {
	Dataset  string
	Variable string
}

func (e *UnknownVariableError) Error() string {
	if e.Variable == "" {
		return fmt.Sprintf("dataset %q: no variable requested and no default configured", e.Dataset)
	}
	return fmt.Sprintf("dataset %q has no variable %q", e.Dataset, e.Variable)
}

// IsUnknownVariable reports whether err is an UnknownVariableError.
func IsUnknownVariable(err error) bool {
	var e *UnknownVariableError
	return errors.As(err, &e)
}
