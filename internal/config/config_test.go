package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/courtbot/internal/factory"
	"github.com/mcoot/courtbot/internal/services/capacity"
	"github.com/mcoot/courtbot/internal/testutil"
)

const tokenHash = "$2a$04$abcdefghijklmnopqrstuuE0n5rJ5b6xK7v8Vb1h9d7m5Q3e1Kq3W"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("COURTBOT_ORGANIZER", "Adam Shin")
	t.Setenv("COURTBOT_API_TOKEN_HASH", tokenHash)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "Batts", cfg.DefaultLocation)
	assert.Equal(t, "9-11 AM Saturday", cfg.SessionTime)
	assert.Equal(t, "badminton", cfg.PollKeyword)
	assert.Equal(t, "manual", cfg.CapacityMode)
	assert.Equal(t, 5, cfg.MaxPerCourt)
	assert.Equal(t, 4, cfg.MinPerCourt)
	assert.InDelta(t, 0.6, cfg.ConfidenceThreshold, 1e-9)
	assert.Equal(t, 10*time.Second, cfg.ClassifyTimeout)
	assert.Equal(t, 10, cfg.HistorySize)
	assert.Equal(t, "memory", cfg.StorageType)
	assert.Equal(t, time.Second, cfg.ReplyDelayMin)
	assert.Equal(t, 3*time.Second, cfg.ReplyDelayMax)
	assert.Equal(t, tokenHash, cfg.APITokenHash)
	assert.False(t, cfg.InsecureNoAuth)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("COURTBOT_LOG_LEVEL", "debug")
	t.Setenv("COURTBOT_ORGANIZER", "Adam Shin")
	t.Setenv("COURTBOT_CAPACITY_MODE", "auto")
	t.Setenv("COURTBOT_MAX_PER_COURT", "6")
	t.Setenv("COURTBOT_CLASSIFY_TIMEOUT", "2s")
	t.Setenv("COURTBOT_REPLY_DELAY_MIN", "0s")
	t.Setenv("COURTBOT_REPLY_DELAY_MAX", "500ms")
	t.Setenv("STORAGE_TYPE", "redis")
	t.Setenv("REDIS_URL", "redis://cache:6379")
	t.Setenv("COURTBOT_INSECURE_NO_AUTH", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "auto", cfg.CapacityMode)
	assert.Equal(t, 6, cfg.MaxPerCourt)
	assert.Equal(t, 2*time.Second, cfg.ClassifyTimeout)
	assert.Equal(t, 500*time.Millisecond, cfg.ReplyDelayMax)
	assert.Equal(t, "redis://cache:6379", cfg.RedisURL)
	assert.True(t, cfg.InsecureNoAuth)
	assert.Empty(t, cfg.APITokenHash)
}

func TestLoadRequiresTokenHash(t *testing.T) {
	t.Setenv("COURTBOT_ORGANIZER", "Adam Shin")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "COURTBOT_API_TOKEN_HASH")
}

func TestLoadRejectsZeroThreshold(t *testing.T) {
	t.Setenv("COURTBOT_ORGANIZER", "Adam Shin")
	t.Setenv("COURTBOT_API_TOKEN_HASH", tokenHash)
	t.Setenv("COURTBOT_CONFIDENCE_THRESHOLD", "0")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "COURTBOT_CONFIDENCE_THRESHOLD")
}

func TestLoadParseError(t *testing.T) {
	t.Setenv("COURTBOT_ORGANIZER", "Adam Shin")
	t.Setenv("COURTBOT_MAX_PER_COURT", "five")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Port:                8080,
			Organizer:           "Adam Shin",
			CapacityMode:        "manual",
			MaxPerCourt:         5,
			MinPerCourt:         4,
			ConfidenceThreshold: 0.6,
			HistorySize:         10,
			StorageType:         "memory",
			ReplyDelayMin:       time.Second,
			ReplyDelayMax:       3 * time.Second,
			APITokenHash:        tokenHash,
		}
	}

	require.NoError(t, valid().Validate())

	insecure := valid()
	insecure.APITokenHash = ""
	insecure.InsecureNoAuth = true
	require.NoError(t, insecure.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"port", func(c *Config) { c.Port = 0 }, "PORT"},
		{"organizer", func(c *Config) { c.Organizer = "  " }, "COURTBOT_ORGANIZER"},
		{"capacity mode", func(c *Config) { c.CapacityMode = "magic" }, "capacity"},
		{"threshold", func(c *Config) { c.ConfidenceThreshold = 1.5 }, "COURTBOT_CONFIDENCE_THRESHOLD"},
		{"zero threshold", func(c *Config) { c.ConfidenceThreshold = 0 }, "COURTBOT_CONFIDENCE_THRESHOLD"},
		{"token hash", func(c *Config) { c.APITokenHash = "" }, "COURTBOT_API_TOKEN_HASH"},
		{"history", func(c *Config) { c.HistorySize = 0 }, "COURTBOT_HISTORY_SIZE"},
		{"storage type", func(c *Config) { c.StorageType = "postgres" }, "STORAGE_TYPE"},
		{"redis url", func(c *Config) { c.StorageType = "redis" }, "REDIS_URL"},
		{"reply delay", func(c *Config) { c.ReplyDelayMax = 0 }, "reply delay"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestFactory(t *testing.T) {
	cfg := Config{
		Port:                8080,
		Organizer:           " Adam Shin ",
		DefaultLocation:     "Lions",
		SessionTime:         "7-9 PM Friday",
		PollKeyword:         "shuttle",
		CapacityMode:        "auto",
		MaxPerCourt:         6,
		MinPerCourt:         4,
		ConfidenceThreshold: 0.7,
		OpenAIAPIKey:        "sk-test",
		OpenAIModel:         "gpt-4o",
		ClassifyTimeout:     5 * time.Second,
		HistorySize:         20,
		StorageType:         "redis",
		RedisURL:            "redis://cache:6379",
		ReplyDelayMin:       0,
		ReplyDelayMax:       time.Second,
	}

	fc := cfg.Factory(testutil.NopLogger())

	assert.Equal(t, factory.StorageTypeRedis, fc.StorageType)
	require.NotNil(t, fc.RedisConfig)
	assert.Equal(t, "redis://cache:6379", fc.RedisConfig.URL)
	assert.Equal(t, 20, fc.RedisConfig.HistorySize)
	assert.Equal(t, capacity.ModeAuto, fc.Capacity.Mode)
	assert.Equal(t, 6, fc.Capacity.MaxPerCourt)
	assert.Equal(t, "Adam Shin", fc.Resolver.Organizer)
	assert.InDelta(t, 0.7, fc.Resolver.ConfidenceThreshold, 1e-9)
	assert.Equal(t, "shuttle", fc.Session.PollKeyword)
	assert.Equal(t, "7-9 PM Friday", fc.Session.SessionTime)
	require.NotNil(t, fc.OpenAI)
	assert.Equal(t, "sk-test", fc.OpenAI.APIKey)
	assert.Equal(t, "gpt-4o", fc.OpenAI.Model)
	assert.Equal(t, 5*time.Second, fc.ClassifyTimeout)
	assert.Equal(t, time.Second, fc.ReplyDelay.Max)
}

func TestFactoryWithoutAPIKey(t *testing.T) {
	cfg := Config{StorageType: "memory"}

	fc := cfg.Factory(testutil.NopLogger())
	assert.Nil(t, fc.OpenAI)
	assert.Nil(t, fc.RedisConfig)
}
