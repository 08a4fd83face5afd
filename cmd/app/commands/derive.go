package commands

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/allisson/derivepass/internal/config"
	"github.com/allisson/derivepass/internal/derive/domain"
	"github.com/allisson/derivepass/internal/derive/usecase"
	"github.com/allisson/derivepass/internal/prompt"
)

// DeriveOptions holds the flag values of the derive command. Fields left
// empty are asked for interactively, with the configured defaults offered
// as fallbacks. The master password is never accepted as a flag and is
// always prompted without echo.
type DeriveOptions struct {
	UserID         string
	ServiceID      string
	Generation     string
	PasswordLength string
	CharSets       string
}

// RunDerive collects the derivation inputs, runs the derivation pipeline,
// and writes the resulting password to io.Writer as a single line.
func RunDerive(logger *slog.Logger, cfg *config.Config, opts DeriveOptions, io IOTuple) error {
	prompter := prompt.New(io.Reader, io.Writer)

	input, err := resolveInput(prompter, cfg, opts)
	if err != nil {
		return err
	}
	defer input.MasterPassword().Zero()

	start := time.Now()
	pass, err := usecase.NewDefaultDeriveUseCase().Run(input)
	if err != nil {
		return err
	}

	logger.Debug(
		"password derived",
		slog.Int("password_length", input.PasswordLength().Int()),
		slog.Duration("elapsed", time.Since(start)),
	)

	_, err = fmt.Fprintln(io.Writer, pass.String())
	return err
}

// resolveInput builds the derivation input from flags, falling back to the
// interactive prompter for anything missing. Flag values fail fast instead
// of re-asking.
func resolveInput(
	prompter *prompt.Prompter,
	cfg *config.Config,
	opts DeriveOptions,
) (*domain.Input, error) {
	userID, err := resolve(opts.UserID, domain.NewUserID, prompter.UserID)
	if err != nil {
		return nil, err
	}

	serviceID, err := resolve(opts.ServiceID, domain.NewServiceID, prompter.ServiceID)
	if err != nil {
		return nil, err
	}

	generation, err := resolveWithFallback(
		opts.Generation,
		strconv.Itoa(cfg.DefaultGeneration),
		domain.ParseGeneration,
		prompter.Generation,
	)
	if err != nil {
		return nil, err
	}

	charSet, err := resolveWithFallback(
		opts.CharSets,
		cfg.DefaultCharSets,
		domain.ParseCharSet,
		prompter.CharSet,
	)
	if err != nil {
		return nil, err
	}

	passwordLength, err := resolveWithFallback(
		opts.PasswordLength,
		strconv.Itoa(cfg.DefaultPasswordLength),
		domain.ParsePasswordLength,
		prompter.PasswordLength,
	)
	if err != nil {
		return nil, err
	}

	masterPassword, err := prompter.MasterPassword()
	if err != nil {
		return nil, err
	}

	return domain.NewInput(userID, masterPassword, serviceID, generation, charSet, passwordLength), nil
}

// resolve parses a flag value when present and prompts otherwise.
func resolve[T any](flag string, parse func(string) (T, error), ask func() (T, error)) (T, error) {
	if flag != "" {
		return parse(flag)
	}
	return ask()
}

// resolveWithFallback parses a flag value when present and prompts with a
// fallback otherwise.
func resolveWithFallback[T any](
	flag, fallback string,
	parse func(string) (T, error),
	ask func(fallback string) (T, error),
) (T, error) {
	if flag != "" {
		return parse(flag)
	}
	return ask(fallback)
}
