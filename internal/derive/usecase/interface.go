// Package usecase composes the three derivation stages into the password
// derivation pipeline.
package usecase

import (
	"github.com/allisson/derivepass/internal/derive/domain"
)

// DeriveUseCase runs the full derivation pipeline for one set of inputs.
type DeriveUseCase interface {
	// Run derives the password described by the provider's inputs. It either
	// returns a password of exactly the requested length or an error; no
	// secret-bearing value is returned on the error path.
	Run(input domain.UserInputProvider) (domain.DerivedPass, error)
}
