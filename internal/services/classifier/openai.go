package classifier

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/mcoot/courtbot/internal/model"
)

// OpenAIConfig configures the OpenAI-backed classifier
type OpenAIConfig struct {
	APIKey string
	// Model defaults to gpt-4o-mini
	Model string
	// BaseURL overrides the API endpoint (optional)
	BaseURL string
	// MaxRetries for transient failures; the caller's timeout still bounds the call
	MaxRetries int
	// Organizer and Locations are named in the prompt
	Organizer string
	Locations []string
}

// DefaultOpenAIConfig returns defaults without an API key
func DefaultOpenAIConfig() OpenAIConfig {
	return OpenAIConfig{
		Model:      string(openai.ChatModelGPT4oMini),
		MaxRetries: 1,
		Locations:  []string{"Batts", "Lions"},
	}
}

// OpenAI classifies messages with a chat completion model
type OpenAI struct {
	client openai.Client
	cfg    OpenAIConfig
	logger *slog.Logger
}

var _ Classifier = (*OpenAI)(nil)

// NewOpenAI creates an OpenAI classifier
func NewOpenAI(cfg OpenAIConfig, logger *slog.Logger) *OpenAI {
	if cfg.Model == "" {
		cfg.Model = string(openai.ChatModelGPT4oMini)
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(cfg.MaxRetries),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &OpenAI{
		client: openai.NewClient(opts...),
		cfg:    cfg,
		logger: logger.With(slog.String("component", "classifier")),
	}
}

// ClassifyIntent asks the model for the message's intent
func (c *OpenAI) ClassifyIntent(ctx context.Context, req Request) (model.Intent, error) {
	content, err := c.complete(ctx, intentPrompt(req, c.cfg.Organizer, c.cfg.Locations), 100)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("raw classifier response", slog.String("content", content))
	intent, err := DecodeIntent(content)
	if err != nil {
		return nil, fmt.Errorf("decode intent: %w", err)
	}
	return intent, nil
}

// ClassifyPollVote asks the model whether a vote is a yes
func (c *OpenAI) ClassifyPollVote(ctx context.Context, pollText string, selectedOptions []string) (bool, error) {
	content, err := c.complete(ctx, votePrompt(pollText, selectedOptions), 5)
	if err != nil {
		return false, err
	}
	return strings.Contains(strings.ToLower(content), "true"), nil
}

func (c *OpenAI) complete(ctx context.Context, prompt string, maxTokens int64) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.cfg.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		MaxTokens:   openai.Int(maxTokens),
		Temperature: openai.Float(0),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", model.ErrNoClassification
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
