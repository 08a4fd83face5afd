// Package domain defines the value objects of the stateless derivation pipeline.
//
// Every entity is constructed through a validating factory and exposes a
// read-only view; nothing in this package retains state between derivations.
// The derivation is pure: equal inputs always produce equal outputs, so the
// inputs themselves are the only "database" the system has.
package domain

import (
	"strconv"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/derivepass/internal/errors"
	appvalidation "github.com/allisson/derivepass/internal/validation"
)

const (
	// MinIdentityBytes is the minimum byte length for user identifiers and
	// master passwords.
	MinIdentityBytes = 8

	// MaxPasswordLength is the maximum derivable password length. It is
	// bounded by the service secret size: one secret byte per character.
	MaxPasswordLength = 64
)

// UserID identifies the person deriving passwords (full name, username, ...).
// It is public input, but it salts the master secret, so two users with the
// same master password still derive different passwords.
type UserID struct {
	value string
}

// NewUserID validates and wraps a user identifier.
func NewUserID(value string) (UserID, error) {
	if err := validation.Validate(value, appvalidation.MinByteLength(MinIdentityBytes)); err != nil {
		return UserID{}, appvalidation.WrapValidationError(err)
	}
	return UserID{value: value}, nil
}

// String returns the raw identifier.
func (u UserID) String() string {
	return u.value
}

// Len returns the identifier length in bytes.
func (u UserID) Len() int {
	return len(u.value)
}

// MasterPassword is the single secret input of the pipeline. It must never
// be logged, displayed, or echoed; callers should Zero it after use.
type MasterPassword struct {
	value []byte
}

// NewMasterPassword validates and wraps the master password bytes. The slice
// is retained, not copied, so zeroing the password clears the original buffer.
func NewMasterPassword(value []byte) (MasterPassword, error) {
	if err := validation.Validate(value, appvalidation.MinByteLength(MinIdentityBytes)); err != nil {
		return MasterPassword{}, appvalidation.WrapValidationError(err)
	}
	return MasterPassword{value: value}, nil
}

// Bytes returns the raw password bytes.
func (m MasterPassword) Bytes() []byte {
	return m.value
}

// Zero overwrites the password bytes.
func (m MasterPassword) Zero() {
	Zero(m.value)
}

// ServiceID identifies the service a password is derived for (name, url, ...).
// Any string is allowed, including the empty one.
type ServiceID struct {
	value string
}

// NewServiceID wraps a service identifier. The error return exists for
// factory-signature uniformity; every string is a valid service identifier.
func NewServiceID(value string) (ServiceID, error) {
	return ServiceID{value: value}, nil
}

// String returns the raw identifier.
func (s ServiceID) String() string {
	return s.value
}

// Len returns the identifier length in bytes.
func (s ServiceID) Len() int {
	return len(s.value)
}

// Generation is the rotation counter: bumping it yields an unrelated password
// for the same service without storing anything.
type Generation struct {
	value uint64
}

// NewGeneration validates and wraps a generation counter.
func NewGeneration(value uint64) (Generation, error) {
	if value == 0 {
		return Generation{}, apperrors.Wrap(apperrors.ErrInvalidInput, "generation must be greater than zero")
	}
	return Generation{value: value}, nil
}

// ParseGeneration parses a generation counter from its decimal form. Signs,
// spaces, and non-decimal digits are rejected.
func ParseGeneration(value string) (Generation, error) {
	parsed, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return Generation{}, apperrors.Wrap(apperrors.ErrInvalidInput, "generation must be a positive base-10 integer")
	}
	return NewGeneration(parsed)
}

// Uint64 returns the counter value.
func (g Generation) Uint64() uint64 {
	return g.value
}

// String returns the decimal form used in the service secret salt.
func (g Generation) String() string {
	return strconv.FormatUint(g.value, 10)
}

// PasswordLength is the requested output length. It participates in the
// service secret salt, so changing the length re-derives the whole password
// instead of truncating a longer one.
type PasswordLength struct {
	value int
}

// NewPasswordLength validates and wraps a password length.
func NewPasswordLength(value int) (PasswordLength, error) {
	if err := validation.Validate(value, appvalidation.IntBetween(1, MaxPasswordLength)); err != nil {
		return PasswordLength{}, appvalidation.WrapValidationError(err)
	}
	return PasswordLength{value: value}, nil
}

// ParsePasswordLength parses a password length from its decimal form.
func ParsePasswordLength(value string) (PasswordLength, error) {
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return PasswordLength{}, apperrors.Wrap(apperrors.ErrInvalidInput, "password length must be a base-10 integer")
	}
	return NewPasswordLength(parsed)
}

// Int returns the length value.
func (p PasswordLength) Int() int {
	return p.value
}

// String returns the decimal form used in the service secret salt.
func (p PasswordLength) String() string {
	return strconv.Itoa(p.value)
}
