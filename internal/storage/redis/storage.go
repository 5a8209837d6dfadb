package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/courtbot/internal/model"
	"github.com/mcoot/courtbot/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return NewWithClient(client, cfg), nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	if cfg.HistorySize <= 0 {
		cfg.HistorySize = storage.DefaultHistorySize
	}
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) AppendMessage(ctx context.Context, msg *model.ChatMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	key := historyKey()

	// Use pipeline for atomic push + trim + expiry
	pipe := s.client.TxPipeline()
	pipe.LPush(ctx, key, data)
	pipe.LTrim(ctx, key, 0, int64(s.cfg.HistorySize-1))
	if s.cfg.HistoryTTL > 0 {
		pipe.Expire(ctx, key, s.cfg.HistoryTTL)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: %w", model.ErrHistoryUnavailable, err)
	}
	return nil
}

func (s *Storage) RecentMessages(ctx context.Context, limit int) ([]*model.ChatMessage, error) {
	if limit <= 0 || limit > s.cfg.HistorySize {
		limit = s.cfg.HistorySize
	}

	raw, err := s.client.LRange(ctx, historyKey(), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrHistoryUnavailable, err)
	}

	msgs := make([]*model.ChatMessage, 0, len(raw))
	for _, item := range raw {
		var msg model.ChatMessage
		if err := json.Unmarshal([]byte(item), &msg); err != nil {
			return nil, err
		}
		msgs = append(msgs, &msg)
	}

	// Stored newest first
	slices.Reverse(msgs)
	return msgs, nil
}

func (s *Storage) ClearMessages(ctx context.Context) error {
	if err := s.client.Del(ctx, historyKey()).Err(); err != nil {
		return fmt.Errorf("%w: %w", model.ErrHistoryUnavailable, err)
	}
	return nil
}
