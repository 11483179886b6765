package bot

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the bot configuration loaded from environment variables.
type Config struct {
	DiscordToken  string `env:"DISCORD_BOT_TOKEN,notEmpty"`
	CommandPrefix string `env:"COMMAND_PREFIX"              envDefault:"!"`
	StatusText    string `env:"STATUS_TEXT"                 envDefault:"!help | All-in-One"`

	// SurfaceUnclassifiedErrors shows unexpected command errors in chat instead of only logging them.
	SurfaceUnclassifiedErrors bool `env:"SURFACE_UNCLASSIFIED_ERRORS" envDefault:"false"`

	CommandRateLimit float64 `env:"COMMAND_RATE_LIMIT" envDefault:"1"`
	CommandRateBurst int     `env:"COMMAND_RATE_BURST" envDefault:"5"`

	// KeepAliveAddr is the listen address of the health server. Empty disables it.
	KeepAliveAddr string `env:"KEEPALIVE_ADDR" envDefault:":8080"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// LoadConfig loads configuration from a .env file, if present, and the environment.
// Returns an error if required fields are missing.
func LoadConfig() (*Config, error) {
	if err := LoadDotEnv(); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if cfg.CommandPrefix == "" {
		return nil, errors.New("COMMAND_PREFIX must not be empty")
	}

	return cfg, nil
}

// LoadDotEnv loads .env into the process environment without overriding
// variables that are already set. A missing file is not an error.
func LoadDotEnv() error {
	if err := godotenv.Load(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

// SlogLevel returns the configured log level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
