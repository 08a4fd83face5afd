package service

import (
	"fmt"

	"github.com/allisson/derivepass/internal/derive/domain"
)

// passwordMapper implements PasswordMapper.
type passwordMapper struct{}

// NewPasswordMapper creates the byte-to-character password mapper.
func NewPasswordMapper() PasswordMapper {
	return &passwordMapper{}
}

// Map emits one character per service secret byte: alphabet[b mod len].
//
// Indexing is strictly by byte position, with no stride or whitening, and the
// modulo reduction is not rejection-sampled: when 256 is not a multiple of
// the alphabet size the output distribution is slightly biased. The bias is
// part of the published output format and must be preserved.
func (m *passwordMapper) Map(
	serviceSecret *domain.ServiceSecret,
	charSet domain.CharSet,
	passwordLength domain.PasswordLength,
) (domain.DerivedPass, error) {
	length := passwordLength.Int()
	if serviceSecret.Len() < length {
		return domain.DerivedPass{}, fmt.Errorf(
			"%w: service secret has %d bytes, need %d",
			domain.ErrChar, serviceSecret.Len(), length,
		)
	}

	alphabet := []rune(charSet.Alphabet())
	if len(alphabet) == 0 {
		return domain.DerivedPass{}, fmt.Errorf("%w: empty alphabet", domain.ErrChar)
	}

	password := make([]rune, length)
	for i, b := range serviceSecret.Bytes()[:length] {
		password[i] = alphabet[int(b)%len(alphabet)]
	}

	return domain.NewDerivedPass(string(password)), nil
}
