package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

// placeholderVerificationToken is the value shipped in setup templates. A
// deployment still carrying it is treated as having no token at all.
const placeholderVerificationToken = "xxxxxxxxxxxxxxxxxxxxxxxx"

type Config struct {
	AppEnv      string `env:"APP_ENV" default:"development"`
	Port        string `env:"PORT" default:"8080"`
	DatabaseURL string `env:"DATABASE_URL"`

	SlackBotToken          string `env:"SLACK_BOT_TOKEN"`
	SlackVerificationToken string `env:"SLACK_VERIFICATION_TOKEN"`

	LogLevel  string `env:"LOG_LEVEL" default:"info"`
	LogFormat string `env:"LOG_FORMAT" default:"text"`

	DedupCacheSize int           `env:"DEDUP_CACHE_SIZE" default:"1024"`
	DedupTTL       time.Duration `env:"DEDUP_TTL" default:"10m"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	required := map[string]string{
		"DATABASE_URL":    cfg.DatabaseURL,
		"SLACK_BOT_TOKEN": cfg.SlackBotToken,
	}
	for name, value := range required {
		if value == "" {
			return fmt.Errorf("%s is required", name)
		}
	}

	if cfg.DedupCacheSize <= 0 {
		return fmt.Errorf("DEDUP_CACHE_SIZE must be positive, got %d", cfg.DedupCacheSize)
	}
	if cfg.DedupTTL <= 0 {
		return fmt.Errorf("DEDUP_TTL must be positive, got %s", cfg.DedupTTL)
	}

	// An unset or placeholder verification token is allowed at startup so a
	// fresh deployment can boot, but every webhook request will be rejected
	// until a real token is configured.
	if !cfg.HasVerificationToken() {
		slog.Warn("SLACK_VERIFICATION_TOKEN is unset or still the placeholder; webhook requests will be rejected")
	}

	return nil
}

// HasVerificationToken reports whether a real shared-secret token is
// configured.
func (c *Config) HasVerificationToken() bool {
	return c.SlackVerificationToken != "" && c.SlackVerificationToken != placeholderVerificationToken
}
