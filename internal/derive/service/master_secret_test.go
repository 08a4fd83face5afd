package service

import (
	"encoding/base64"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/derivepass/internal/derive/domain"
)

// The expected tags come from PHC-format reference hashes
// ($argon2id$v=19$m=32768,t=4,p=4$<salt>$<hash>) produced by an independent
// implementation; salt and hash fields are unpadded standard base64.
func TestMasterSecretDeriver(t *testing.T) {
	tests := []struct {
		name           string
		userID         string
		masterPassword string
		saltB64        string
		hashB64        string
	}{
		{
			name:           "10 byte inputs",
			userID:         "4x9*1V{5lh",
			masterPassword: "<J91=0iC3`",
			saltB64:        "MTA0eDkqMVZ7NWxo",
			hashB64:        "etXY35+A90n9QxbJaBcZ63uinCTDgxHQ6btWBHAkq5E",
		},
		{
			name:           "20 byte inputs",
			userID:         "K0d21[-=%Req6iLf;:?L",
			masterPassword: "7s4$tN9sHmoa\\|tTp)RS",
			saltB64:        "MjBLMGQyMVstPSVSZXE2aUxmOzo/TA",
			hashB64:        "wgMtgfaar9+d56UgClsVf4A2OmId7lkfg797CjqJVa8",
		},
		{
			name:           "30 byte inputs",
			userID:         "u\"D2YT2f5WB#fDJ>j3e~s,V''HW?:(",
			masterPassword: "54VZ£1<QU9#jpDZ2u/$6FjXjG8n;N-",
			saltB64:        "MzB1IkQyWVQyZjVXQiNmREo+ajNlfnMsVicnSFc/Oig",
			hashB64:        "8snAbEj5+ItaR7PibxgnMzUGNB3UafR169XGLmjBQDE",
		},
		{
			name:           "40 byte inputs",
			userID:         "Tre6-:52:QMM97=,)[ZZ_f{%QH`L>?eu.{B\"(AhT",
			masterPassword: "9+NO9&VFdqTK8dP;egNOuBbe985*(!P=2QC1,O>F",
			saltB64:        "NDBUcmU2LTo1MjpRTU05Nz0sKVtaWl9meyVRSGBMPj9ldS57QiIoQWhU",
			hashB64:        "6YnONZRauuiI7KJJsb+KQJjd/jaZxGLar89kXwHHCJw",
		},
	}

	deriver := NewMasterSecretDeriver()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID, err := domain.NewUserID(tt.userID)
			require.NoError(t, err)
			masterPassword, err := domain.NewMasterPassword([]byte(tt.masterPassword))
			require.NoError(t, err)

			// The PHC salt field is the base64 encoding of our raw salt bytes:
			// decimal length prefix followed by the user identifier.
			rawSalt := strconv.Itoa(userID.Len()) + userID.String()
			assert.Equal(t, tt.saltB64, base64.RawStdEncoding.EncodeToString([]byte(rawSalt)))

			expected, err := base64.RawStdEncoding.DecodeString(tt.hashB64)
			require.NoError(t, err)

			secret, err := deriver.Derive(userID, masterPassword)
			require.NoError(t, err)
			assert.Equal(t, expected, secret.Bytes())
			assert.Len(t, secret.Bytes(), domain.MasterSecretSize)
		})
	}
}

func TestMasterSecretDeriverDeterminism(t *testing.T) {
	userID, err := domain.NewUserID("Example Eleonora")
	require.NoError(t, err)
	masterPassword, err := domain.NewMasterPassword([]byte("]lE~WExZ468ty{I5mtg["))
	require.NoError(t, err)

	deriver := NewMasterSecretDeriver()

	first, err := deriver.Derive(userID, masterPassword)
	require.NoError(t, err)
	second, err := deriver.Derive(userID, masterPassword)
	require.NoError(t, err)

	assert.Equal(t, first.Bytes(), second.Bytes())
}
