// Package validation provides custom validation rules for the application.
package validation

import (
	"fmt"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/derivepass/internal/errors"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// MinByteLength validates that a string or byte slice is at least min bytes long.
//
// The check is on bytes, not runes: identifiers and passwords feed a
// byte-oriented key derivation, so byte length is the relevant measure.
func MinByteLength(min int) validation.Rule {
	return validation.By(func(value interface{}) error {
		var length int
		switch v := value.(type) {
		case string:
			length = len(v)
		case []byte:
			length = len(v)
		default:
			return validation.NewError("validation_min_byte_length", "must be a string or byte slice")
		}

		if length < min {
			return validation.NewError(
				"validation_min_byte_length",
				fmt.Sprintf("must be at least %d bytes long", min),
			)
		}

		return nil
	})
}

// IntBetween validates that an int falls in the inclusive range [min, max].
func IntBetween(min, max int) validation.Rule {
	return validation.By(func(value interface{}) error {
		v, ok := value.(int)
		if !ok {
			return validation.NewError("validation_int_between", "must be an int")
		}

		if v < min || v > max {
			return validation.NewError(
				"validation_int_between",
				fmt.Sprintf("must be between %d and %d", min, max),
			)
		}

		return nil
	})
}
