// Package service implements the three derivation stages: master secret
// stretching, service secret expansion, and the byte-to-character mapping.
//
// Each stage is a pure function of its inputs. The stages share no state and
// may be invoked concurrently without coordination; the only notable cost is
// the Argon2id memory matrix (roughly 32 MiB per in-flight master secret
// derivation), which is allocated and released per call so that sensitive
// intermediate state is never pooled.
package service

import (
	"github.com/allisson/derivepass/internal/derive/domain"
)

// MasterSecretDeriver stretches the master password into the 32-byte master
// secret (stage one).
type MasterSecretDeriver interface {
	Derive(userID domain.UserID, masterPassword domain.MasterPassword) (*domain.MasterSecret, error)
}

// ServiceSecretDeriver expands the master secret into the 64-byte per-service
// secret (stage two).
type ServiceSecretDeriver interface {
	Derive(
		masterSecret *domain.MasterSecret,
		serviceID domain.ServiceID,
		generation domain.Generation,
		passwordLength domain.PasswordLength,
	) (*domain.ServiceSecret, error)
}

// PasswordMapper maps service secret bytes onto the selected alphabet
// (stage three).
type PasswordMapper interface {
	Map(
		serviceSecret *domain.ServiceSecret,
		charSet domain.CharSet,
		passwordLength domain.PasswordLength,
	) (domain.DerivedPass, error)
}
