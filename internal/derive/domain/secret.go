package domain

import (
	"fmt"

	"github.com/allisson/derivepass/internal/hexutil"
)

const (
	// MasterSecretSize is the Argon2id tag length in bytes.
	MasterSecretSize = 32

	// ServiceSecretSize is the HMAC-SHA-512 tag length in bytes.
	ServiceSecretSize = 64
)

// MasterSecret is the 32-byte Argon2id tag derived from the user identifier
// and the master password. It lives only for the duration of one derivation
// and must be zeroed when the derivation finishes.
type MasterSecret struct {
	key []byte
}

// NewMasterSecret wraps a raw 32-byte master secret.
func NewMasterSecret(key []byte) (*MasterSecret, error) {
	if len(key) != MasterSecretSize {
		return nil, fmt.Errorf("%w: master secret must be %d bytes, got %d", ErrSecret, MasterSecretSize, len(key))
	}
	return &MasterSecret{key: key}, nil
}

// MasterSecretFromHex builds a master secret from its 64-character lowercase
// hex form. Used by test fixtures and the service secret vectors.
func MasterSecretFromHex(value string) (*MasterSecret, error) {
	if len(value) != 2*MasterSecretSize {
		return nil, fmt.Errorf("%w: master secret hex must be %d characters, got %d", ErrSecret, 2*MasterSecretSize, len(value))
	}
	key, err := hexutil.Decode(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSecret, err)
	}
	return &MasterSecret{key: key}, nil
}

// Bytes returns the raw tag.
func (m *MasterSecret) Bytes() []byte {
	return m.key
}

// Hex returns the lowercase hex encoding of the tag. The service secret
// derivation keys its HMAC with this form, not with the raw bytes.
func (m *MasterSecret) Hex() string {
	return hexutil.Encode(m.key)
}

// Zero overwrites the tag bytes.
func (m *MasterSecret) Zero() {
	Zero(m.key)
}

// ServiceSecret is the 64-byte HMAC-SHA-512 tag derived from the master
// secret and the per-service parameters. Each of its bytes maps to one
// password character, which is what bounds MaxPasswordLength.
type ServiceSecret struct {
	key []byte
}

// NewServiceSecret wraps a raw 64-byte service secret.
func NewServiceSecret(key []byte) (*ServiceSecret, error) {
	if len(key) != ServiceSecretSize {
		return nil, fmt.Errorf("%w: service secret must be %d bytes, got %d", ErrSecret, ServiceSecretSize, len(key))
	}
	return &ServiceSecret{key: key}, nil
}

// ServiceSecretFromHex builds a service secret from its 128-character
// lowercase hex form. Used by test fixtures.
func ServiceSecretFromHex(value string) (*ServiceSecret, error) {
	if len(value) != 2*ServiceSecretSize {
		return nil, fmt.Errorf("%w: service secret hex must be %d characters, got %d", ErrSecret, 2*ServiceSecretSize, len(value))
	}
	key, err := hexutil.Decode(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSecret, err)
	}
	return &ServiceSecret{key: key}, nil
}

// Bytes returns the raw tag.
func (s *ServiceSecret) Bytes() []byte {
	return s.key
}

// Len returns the tag length in bytes.
func (s *ServiceSecret) Len() int {
	return len(s.key)
}

// Zero overwrites the tag bytes.
func (s *ServiceSecret) Zero() {
	Zero(s.key)
}

// DerivedPass is the final password: exactly PasswordLength characters, each
// drawn from the CharSet alphabet.
type DerivedPass struct {
	value string
}

// NewDerivedPass wraps a derived password.
func NewDerivedPass(value string) DerivedPass {
	return DerivedPass{value: value}
}

// String returns the password.
func (d DerivedPass) String() string {
	return d.value
}
