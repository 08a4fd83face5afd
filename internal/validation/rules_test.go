package validation

import (
	"testing"

	validation "github.com/jellydator/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/derivepass/internal/errors"
)

func TestWrapValidationError(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.NoError(t, WrapValidationError(nil))
	})

	t.Run("wraps as ErrInvalidInput", func(t *testing.T) {
		err := WrapValidationError(validation.NewError("validation_test", "test failure"))
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		assert.Contains(t, err.Error(), "test failure")
	})
}

func TestMinByteLength(t *testing.T) {
	tests := []struct {
		name    string
		value   interface{}
		min     int
		wantErr bool
	}{
		{"string long enough", "abcdefgh", 8, false},
		{"string too short", "abcdefg", 8, true},
		{"byte slice long enough", []byte("abcdefgh"), 8, false},
		{"byte slice too short", []byte("abc"), 8, true},
		{"multibyte runes count as bytes", "£1234567", 8, false},
		{"empty string", "", 1, true},
		{"unsupported type", 42, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.Validate(tt.value, MinByteLength(tt.min))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIntBetween(t *testing.T) {
	tests := []struct {
		name    string
		value   interface{}
		wantErr bool
	}{
		{"lower bound", 1, false},
		{"upper bound", 64, false},
		{"below range", 0, true},
		{"above range", 65, true},
		{"unsupported type", "10", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.Validate(tt.value, IntBetween(1, 64))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
