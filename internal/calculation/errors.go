package calculation

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is matched by every precondition failure in this package.
var ErrInvalidInput = errors.New("invalid input")

// InputError reports a parameter that violates a calculator precondition.
// No partial result accompanies it.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input: %s %s", e.Field, e.Reason)
}

// Is lets errors.Is(err, ErrInvalidInput) match.
func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func invalid(field, reason string) error {
	return &InputError{Field: field, Reason: reason}
}
