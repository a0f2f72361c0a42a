package comparison

import (
	"errors"
	"fmt"
)

// ValidationError reports an input that cannot be compared. It is the only
// domain error the comparison produces.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// IsValidationError reports whether err wraps a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Reasons shared by the comparison and the form parsers.
const (
	ReasonRequired    = "is required"
	ReasonNotANumber  = "must be a number"
	ReasonNotFinite   = "must be a finite number"
	ReasonNotPositive = "must be greater than zero"
	ReasonOutOfRange  = "is too large to compare"
)

func newValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// UnknownJurisdictionError normalizes a failed rate lookup into a validation error.
func UnknownJurisdictionError(name string) *ValidationError {
	return &ValidationError{Field: FieldJurisdiction, Reason: fmt.Sprintf("%q is not a known jurisdiction", name)}
}
