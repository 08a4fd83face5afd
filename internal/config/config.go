// Package config provides application configuration through environment variables.
//
// Only presentation defaults are configurable: the key derivation parameters
// are fixed by the output format and deliberately have no configuration knobs.
package config

import (
	"os"
	"path/filepath"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// DefaultGeneration pre-fills the generation prompt of the derive command.
	DefaultGeneration int
	// DefaultPasswordLength pre-fills the password length prompt.
	DefaultPasswordLength int
	// DefaultCharSets pre-fills the character set prompt as a comma-separated
	// list of preset indexes (e.g., "0,1,2,3").
	DefaultCharSets string
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Prompt defaults
		DefaultGeneration:     env.GetInt("DEFAULT_GENERATION", 1),
		DefaultPasswordLength: env.GetInt("DEFAULT_PASSWORD_LENGTH", 20),
		DefaultCharSets:       env.GetString("DEFAULT_CHAR_SETS", "0,1,2,3"),
	}
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	// Search for .env file recursively up the directory tree
	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			// .env file found, load it
			_ = godotenv.Load(envPath)
			return
		}

		// Move to parent directory
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}
}
