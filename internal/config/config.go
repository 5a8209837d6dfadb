// Package config loads server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/mcoot/courtbot/internal/factory"
	"github.com/mcoot/courtbot/internal/services/auth"
	"github.com/mcoot/courtbot/internal/services/capacity"
	"github.com/mcoot/courtbot/internal/services/classifier"
	"github.com/mcoot/courtbot/internal/services/resolver"
	"github.com/mcoot/courtbot/internal/services/session"
	redisstorage "github.com/mcoot/courtbot/internal/storage/redis"
	"github.com/mcoot/courtbot/internal/web/sse"
)

// Config is the full server configuration
type Config struct {
	Port     int        `env:"PORT"              envDefault:"8080"`
	LogLevel slog.Level `env:"COURTBOT_LOG_LEVEL" envDefault:"info"`

	Organizer       string `env:"COURTBOT_ORGANIZER"`
	DefaultLocation string `env:"COURTBOT_DEFAULT_LOCATION" envDefault:"Batts"`
	SessionTime     string `env:"COURTBOT_SESSION_TIME"     envDefault:"9-11 AM Saturday"`
	PollKeyword     string `env:"COURTBOT_POLL_KEYWORD"     envDefault:"badminton"`

	CapacityMode        string  `env:"COURTBOT_CAPACITY_MODE"        envDefault:"manual"`
	MaxPerCourt         int     `env:"COURTBOT_MAX_PER_COURT"        envDefault:"5"`
	MinPerCourt         int     `env:"COURTBOT_MIN_PER_COURT"        envDefault:"4"`
	ConfidenceThreshold float64 `env:"COURTBOT_CONFIDENCE_THRESHOLD" envDefault:"0.6"`

	OpenAIAPIKey    string        `env:"OPENAI_API_KEY"`
	OpenAIModel     string        `env:"OPENAI_MODEL"              envDefault:"gpt-4o-mini"`
	OpenAIBaseURL   string        `env:"OPENAI_BASE_URL"`
	ClassifyTimeout time.Duration `env:"COURTBOT_CLASSIFY_TIMEOUT" envDefault:"10s"`

	HistorySize int    `env:"COURTBOT_HISTORY_SIZE" envDefault:"10"`
	StorageType string `env:"STORAGE_TYPE"          envDefault:"memory"`
	RedisURL    string `env:"REDIS_URL"`

	APITokenHash string `env:"COURTBOT_API_TOKEN_HASH"`
	// InsecureNoAuth opens the mutating endpoints when no token hash is set
	InsecureNoAuth bool `env:"COURTBOT_INSECURE_NO_AUTH"`

	ReplyDelayMin time.Duration `env:"COURTBOT_REPLY_DELAY_MIN" envDefault:"1s"`
	ReplyDelayMax time.Duration `env:"COURTBOT_REPLY_DELAY_MAX" envDefault:"3s"`
}

// Load parses the environment and validates the result
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values env parsing cannot
func (c Config) Validate() error {
	var errs []error

	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port))
	}
	if strings.TrimSpace(c.Organizer) == "" {
		errs = append(errs, errors.New("COURTBOT_ORGANIZER is required"))
	}
	if _, err := capacity.New(capacity.Mode(c.CapacityMode), c.MaxPerCourt, c.MinPerCourt); err != nil {
		errs = append(errs, fmt.Errorf("capacity: %w", err))
	}
	if c.ConfidenceThreshold <= 0 || c.ConfidenceThreshold > 1 {
		errs = append(errs, fmt.Errorf("COURTBOT_CONFIDENCE_THRESHOLD must be within (0, 1], got %v", c.ConfidenceThreshold))
	}
	if c.HistorySize < 1 {
		errs = append(errs, fmt.Errorf("COURTBOT_HISTORY_SIZE must be positive, got %d", c.HistorySize))
	}
	switch c.StorageType {
	case factory.StorageTypeMemory:
	case factory.StorageTypeRedis:
		if c.RedisURL == "" {
			errs = append(errs, errors.New("REDIS_URL is required when STORAGE_TYPE=redis"))
		}
	default:
		errs = append(errs, fmt.Errorf("STORAGE_TYPE must be memory or redis, got %q", c.StorageType))
	}
	if c.APITokenHash == "" && !c.InsecureNoAuth {
		errs = append(errs, errors.New("COURTBOT_API_TOKEN_HASH is required unless COURTBOT_INSECURE_NO_AUTH=true"))
	}
	if c.ReplyDelayMin < 0 || c.ReplyDelayMax < c.ReplyDelayMin {
		errs = append(errs, fmt.Errorf("reply delay range %s-%s is invalid", c.ReplyDelayMin, c.ReplyDelayMax))
	}

	return errors.Join(errs...)
}

// Factory converts the configuration into factory settings
func (c Config) Factory(logger *slog.Logger) factory.Config {
	cfg := factory.Config{
		Logger:          logger,
		StorageType:     c.StorageType,
		HistorySize:     c.HistorySize,
		DefaultLocation: c.DefaultLocation,
		Capacity: factory.CapacityConfig{
			Mode:        capacity.Mode(c.CapacityMode),
			MaxPerCourt: c.MaxPerCourt,
			MinPerCourt: c.MinPerCourt,
		},
		Resolver: resolver.Config{
			Organizer:           strings.TrimSpace(c.Organizer),
			ConfidenceThreshold: c.ConfidenceThreshold,
		},
		Session: session.Config{
			PollKeyword: c.PollKeyword,
			HistorySize: c.HistorySize,
			SessionTime: c.SessionTime,
		},
		ClassifyTimeout: c.ClassifyTimeout,
		AuthConfig: auth.Config{
			TokenHash:     c.APITokenHash,
			CacheDuration: auth.DefaultConfig().CacheDuration,
		},
		ReplyDelay: sse.DelayConfig{Min: c.ReplyDelayMin, Max: c.ReplyDelayMax},
	}

	if c.OpenAIAPIKey != "" {
		openaiCfg := classifier.DefaultOpenAIConfig()
		openaiCfg.APIKey = c.OpenAIAPIKey
		openaiCfg.Model = c.OpenAIModel
		openaiCfg.BaseURL = c.OpenAIBaseURL
		cfg.OpenAI = &openaiCfg
	}

	if c.StorageType == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = c.RedisURL
		redisCfg.HistorySize = c.HistorySize
		cfg.RedisConfig = &redisCfg
	}

	return cfg
}
