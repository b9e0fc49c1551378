// Package types provides type definitions for structured data used throughout the jobfit-engine system.
package types

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError reports malformed configuration or criteria. It is always
// raised before any scoring runs, so a caller never receives partial results
// alongside one.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation failed: %s", e.Message)
	}
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Message)
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// wrapValidatorError converts the first struct-tag violation reported by the
// validator into a ValidationError. Returns nil when err is nil.
func wrapValidatorError(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &ValidationError{Message: err.Error()}
	}

	first := verrs[0]
	msg := fmt.Sprintf("failed on the '%s' rule", first.Tag())
	if first.Param() != "" {
		msg = fmt.Sprintf("failed on the '%s=%s' rule", first.Tag(), first.Param())
	}

	return &ValidationError{Field: strings.ToLower(first.Field()), Message: msg}
}
