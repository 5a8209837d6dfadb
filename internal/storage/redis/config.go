package redis

import (
	"time"

	"github.com/mcoot/courtbot/internal/storage"
)

// Config holds Redis connection and behavior settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	// Pool settings
	PoolSize     int
	MinIdleConns int

	// HistorySize caps the number of retained messages
	HistorySize int
	// HistoryTTL expires the history after a quiet period; zero keeps it forever
	HistoryTTL time.Duration
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379",
		PoolSize:     10,
		MinIdleConns: 2,
		HistorySize:  storage.DefaultHistorySize,
		HistoryTTL:   7 * 24 * time.Hour,
	}
}
