package storage

import (
	"context"

	"github.com/mcoot/courtbot/internal/model"
)

// Storage keeps the recent chat history the classifier uses as context.
// The roster itself is never persisted.
type Storage interface {
	// AppendMessage records a message, evicting the oldest beyond the capacity
	AppendMessage(ctx context.Context, msg *model.ChatMessage) error
	// RecentMessages returns up to limit of the newest messages, oldest first
	RecentMessages(ctx context.Context, limit int) ([]*model.ChatMessage, error)
	// ClearMessages drops all history
	ClearMessages(ctx context.Context) error
}

// DefaultHistorySize is how many messages are retained
const DefaultHistorySize = 10
