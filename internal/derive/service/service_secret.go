package service

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/base64"
	"strconv"

	"github.com/allisson/derivepass/internal/derive/domain"
)

// serviceSecretDeriver implements ServiceSecretDeriver using HMAC-SHA-512.
type serviceSecretDeriver struct{}

// NewServiceSecretDeriver creates the HMAC-SHA-512-backed service secret deriver.
func NewServiceSecretDeriver() ServiceSecretDeriver {
	return &serviceSecretDeriver{}
}

// Derive computes HMAC-SHA-512 over the per-service parameters.
//
// Two quirks are load-bearing for cross-implementation compatibility and must
// not be normalised away:
//   - the HMAC key is the lowercase hex encoding of the master secret
//     (64 ASCII bytes), not the 32 raw bytes;
//   - the message is the unpadded standard base64 encoding of the parameter
//     string, not the parameter bytes themselves.
//
// The parameter string is "len(service_id)" + service_id + password_length +
// generation, all decimal, no separators. Password length participates so
// that requesting a different length re-derives the entire secret instead of
// truncating a longer one.
func (d *serviceSecretDeriver) Derive(
	masterSecret *domain.MasterSecret,
	serviceID domain.ServiceID,
	generation domain.Generation,
	passwordLength domain.PasswordLength,
) (*domain.ServiceSecret, error) {
	params := strconv.Itoa(serviceID.Len()) + serviceID.String() +
		passwordLength.String() + generation.String()

	mac := hmac.New(sha512.New, []byte(masterSecret.Hex()))
	mac.Write([]byte(base64.RawStdEncoding.EncodeToString([]byte(params))))

	return domain.NewServiceSecret(mac.Sum(nil))
}
