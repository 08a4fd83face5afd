// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/derivepass/cmd/app/commands"
	"github.com/allisson/derivepass/internal/config"
)

func main() {
	cfg := config.Load()
	logger := newLogger(cfg.LogLevel)

	cmd := &cli.Command{
		Name:    "derivepass",
		Usage:   "Stateless password manager: derive passwords, never store them",
		Version: "1.0.0",
		Commands: []*cli.Command{
			{
				Name:  "derive",
				Usage: "Derive the password for a service",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "user-id",
						Aliases: []string{"u"},
						Usage:   "User identifier (at least 8 bytes; prompted when omitted)",
					},
					&cli.StringFlag{
						Name:    "service-id",
						Aliases: []string{"s"},
						Usage:   "Service identifier (prompted when omitted)",
					},
					&cli.StringFlag{
						Name:    "generation",
						Aliases: []string{"g"},
						Usage:   "Rotation counter, bump to rotate the password",
					},
					&cli.StringFlag{
						Name:    "length",
						Aliases: []string{"l"},
						Usage:   "Password length (1-64)",
					},
					&cli.StringFlag{
						Name:    "char-sets",
						Aliases: []string{"c"},
						Usage:   "Comma-separated preset indexes (0=small, 1=capital, 2=numbers, 3=special)",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					opts := commands.DeriveOptions{
						UserID:         cmd.String("user-id"),
						ServiceID:      cmd.String("service-id"),
						Generation:     cmd.String("generation"),
						PasswordLength: cmd.String("length"),
						CharSets:       cmd.String("char-sets"),
					}
					return commands.RunDerive(logger, cfg, opts, commands.DefaultIO())
				},
			},
			{
				Name:  "presets",
				Usage: "List the selectable character set presets",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunPresets(commands.DefaultIO())
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		logger.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}

// newLogger creates a structured logger based on the log level. Logs go to
// stderr so the derived password stays alone on stdout.
func newLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	return slog.New(handler)
}
