// Package hexutil implements the lowercase hex codec shared by the derivation
// pipeline and its test fixtures.
package hexutil

import (
	"encoding/hex"

	apperrors "github.com/allisson/derivepass/internal/errors"
)

// Encode returns the lowercase hex encoding of b, two characters per byte,
// zero-padded, no separators.
func Encode(b []byte) string {
	return hex.EncodeToString(b)
}

// Decode parses a hex string back into bytes. The input must have even
// length and every two-character window must parse as a base-16 byte;
// digits may be upper or lower case.
func Decode(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
	}
	return b, nil
}
