package memory

import (
	"context"
	"sync"

	"github.com/mcoot/courtbot/internal/model"
	"github.com/mcoot/courtbot/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	capacity int
	messages []*model.ChatMessage // oldest first
}

// New creates a new in-memory storage instance retaining up to capacity
// messages. A non-positive capacity uses storage.DefaultHistorySize.
func New(capacity int) *Storage {
	if capacity <= 0 {
		capacity = storage.DefaultHistorySize
	}
	return &Storage{capacity: capacity}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) AppendMessage(ctx context.Context, msg *model.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := *msg
	s.messages = append(s.messages, &m)
	if over := len(s.messages) - s.capacity; over > 0 {
		s.messages = append([]*model.ChatMessage(nil), s.messages[over:]...)
	}
	return nil
}

func (s *Storage) RecentMessages(ctx context.Context, limit int) ([]*model.ChatMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 || limit > len(s.messages) {
		limit = len(s.messages)
	}

	out := make([]*model.ChatMessage, 0, limit)
	for _, m := range s.messages[len(s.messages)-limit:] {
		c := *m
		out = append(out, &c)
	}
	return out, nil
}

func (s *Storage) ClearMessages(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = nil
	return nil
}
