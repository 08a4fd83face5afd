package commands

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/derivepass/internal/config"
	"github.com/allisson/derivepass/internal/errors"
)

func testConfig() *config.Config {
	return &config.Config{
		LogLevel:              "error",
		DefaultGeneration:     1,
		DefaultPasswordLength: 20,
		DefaultCharSets:       "0,1,2,3",
	}
}

func TestRunDerive(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("flags set, only the master password is prompted", func(t *testing.T) {
		var out bytes.Buffer
		tuple := IOTuple{
			Reader: strings.NewReader("]lE~WExZ468ty{I5mtg[\n"),
			Writer: &out,
		}
		opts := DeriveOptions{
			UserID:         "Example Eleonora",
			ServiceID:      "Example Service Name",
			Generation:     "1",
			PasswordLength: "20",
			CharSets:       "0,1,2,3",
		}

		err := RunDerive(logger, testConfig(), opts, tuple)
		require.NoError(t, err)

		assert.True(t, strings.HasSuffix(out.String(), "1@MWtAAqZ0p>;;y@zZ6d\n"))
		assert.Contains(t, out.String(), "Master password: ")
		assert.NotContains(t, out.String(), "User identifier")
	})

	t.Run("everything prompted, empty answers pick the defaults", func(t *testing.T) {
		var out bytes.Buffer
		answers := strings.Join([]string{
			"Example Eleonora",
			"Example Service Name",
			"", // generation, defaults to 1
			"", // character sets, defaults to 0,1,2,3
			"", // password length, defaults to 20
			"]lE~WExZ468ty{I5mtg[",
		}, "\n") + "\n"
		tuple := IOTuple{
			Reader: strings.NewReader(answers),
			Writer: &out,
		}

		err := RunDerive(logger, testConfig(), DeriveOptions{}, tuple)
		require.NoError(t, err)

		assert.True(t, strings.HasSuffix(out.String(), "1@MWtAAqZ0p>;;y@zZ6d\n"))
		assert.Contains(t, out.String(), "Generation (bump to rotate the password) [1]: ")
		assert.Contains(t, out.String(), "Password length (1-64) [20]: ")
	})

	t.Run("invalid flag value fails fast instead of re-asking", func(t *testing.T) {
		var out bytes.Buffer
		tuple := IOTuple{
			Reader: strings.NewReader(""),
			Writer: &out,
		}
		opts := DeriveOptions{
			UserID:         "Example Eleonora",
			ServiceID:      "Example Service Name",
			Generation:     "0",
			PasswordLength: "20",
			CharSets:       "0,1,2,3",
		}

		err := RunDerive(logger, testConfig(), opts, tuple)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrInvalidInput))
	})

	t.Run("exhausted input surfaces the read error", func(t *testing.T) {
		var out bytes.Buffer
		tuple := IOTuple{
			Reader: strings.NewReader(""),
			Writer: &out,
		}

		err := RunDerive(logger, testConfig(), DeriveOptions{}, tuple)
		require.Error(t, err)
	})
}
