package service

import (
	"strconv"

	"golang.org/x/crypto/argon2"

	"github.com/allisson/derivepass/internal/derive/domain"
)

// Argon2id parameters (version 1.3). Fixed: changing any of them changes
// every derived password, so they are deliberately not configurable.
const (
	argonMemoryKiB = 32 * 1024
	argonTime      = 4
	argonThreads   = 4
)

// masterSecretDeriver implements MasterSecretDeriver using Argon2id.
type masterSecretDeriver struct{}

// NewMasterSecretDeriver creates the Argon2id-backed master secret deriver.
func NewMasterSecretDeriver() MasterSecretDeriver {
	return &masterSecretDeriver{}
}

// Derive stretches the master password with Argon2id.
//
// The salt is the decimal byte length of the user identifier followed by the
// identifier itself, e.g. "10" + "4x9*1V{5lh". The length prefix removes
// prefix/suffix ambiguity between identifiers that share content. PHC-format
// hash strings carry these same bytes base64 encoded in their salt field;
// argon2.IDKey consumes the raw form.
func (d *masterSecretDeriver) Derive(
	userID domain.UserID,
	masterPassword domain.MasterPassword,
) (*domain.MasterSecret, error) {
	salt := []byte(strconv.Itoa(userID.Len()) + userID.String())

	tag := argon2.IDKey(
		masterPassword.Bytes(),
		salt,
		argonTime,
		argonMemoryKiB,
		argonThreads,
		domain.MasterSecretSize,
	)

	return domain.NewMasterSecret(tag)
}
