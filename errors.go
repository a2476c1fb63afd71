package folio

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidProfile is wrapped by every profile construction or validation failure.
	ErrInvalidProfile = errors.New("folio: invalid profile")

	// ErrConfig is wrapped by configuration loading failures.
	ErrConfig = errors.New("folio: invalid config")
)

// FieldError reports a single profile field that failed strict validation.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error {
	return ErrInvalidProfile
}
