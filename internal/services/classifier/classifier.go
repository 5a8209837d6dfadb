// Package classifier turns free-text chat messages and poll votes into
// structured intents.
package classifier

import (
	"context"

	"github.com/mcoot/courtbot/internal/model"
)

// Request is a message to classify, with the recent conversation for context
type Request struct {
	Text    string
	Sender  string
	History []*model.ChatMessage // oldest first, excluding the message itself
}

// Classifier classifies messages and poll votes
type Classifier interface {
	// ClassifyIntent returns the intent of a chat message
	ClassifyIntent(ctx context.Context, req Request) (model.Intent, error)
	// ClassifyPollVote reports whether the selected options are a "yes, I'm playing"
	ClassifyPollVote(ctx context.Context, pollText string, selectedOptions []string) (bool, error)
}
