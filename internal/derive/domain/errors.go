package domain

import (
	"github.com/allisson/derivepass/internal/errors"
)

// Derivation error definitions.
//
// These domain-specific errors wrap standard errors from internal/errors.
// Input errors are recoverable (a prompter re-asks); pipeline errors are not
// retried and propagate to the caller unchanged.
var (
	// ErrSecret indicates a failure while producing the master or service
	// secret, including size mismatches on the secret value objects.
	ErrSecret = errors.Wrap(errors.ErrInternal, "secret derivation failed")

	// ErrChar indicates a failure while mapping secret bytes onto the
	// alphabet: the alphabet is empty or the service secret is too short.
	// Unreachable through validated inputs.
	ErrChar = errors.Wrap(errors.ErrInternal, "character mapping failed")

	// ErrUnknownPreset indicates a character set preset index outside the
	// published table.
	ErrUnknownPreset = errors.Wrap(errors.ErrInvalidInput, "unknown character set preset")

	// ErrEmptyCharSet indicates that no character set preset was selected.
	ErrEmptyCharSet = errors.Wrap(errors.ErrInvalidInput, "at least one character set must be selected")
)
