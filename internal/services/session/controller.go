// Package session drives one badminton session from inbound chat events.
package session

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/mcoot/courtbot/internal/dependencies/clock"
	"github.com/mcoot/courtbot/internal/model"
	"github.com/mcoot/courtbot/internal/services/capacity"
	"github.com/mcoot/courtbot/internal/services/classifier"
	"github.com/mcoot/courtbot/internal/services/courts"
	"github.com/mcoot/courtbot/internal/services/resolver"
	"github.com/mcoot/courtbot/internal/services/roster"
	"github.com/mcoot/courtbot/internal/services/status"
	"github.com/mcoot/courtbot/internal/storage"
)

// DefaultPollKeyword marks the weekly sign-up poll
const DefaultPollKeyword = "badminton"

// Publisher sends rendered status text to the group
type Publisher interface {
	PublishStatus(text string)
}

// Config holds session settings
type Config struct {
	// PollKeyword: an own poll mentioning it triggers a status message
	PollKeyword string
	// HistorySize is how many earlier messages the classifier sees
	HistorySize int
	// SessionTime is shown in status messages
	SessionTime string
}

// DefaultConfig returns the default session configuration
func DefaultConfig() Config {
	return Config{
		PollKeyword: DefaultPollKeyword,
		HistorySize: storage.DefaultHistorySize,
		SessionTime: status.DefaultSessionTime,
	}
}

// Result reports how an inbound event was handled
type Result struct {
	// Ignored is set when the event never reached the classifier
	Ignored bool
	Outcome model.Outcome
	// Status is the rendered status when the outcome announced one
	Status string
}

// Controller serializes message handling for a single session. One lock spans
// classify, resolve, mutate, render and publish.
type Controller struct {
	mu sync.Mutex

	store      *roster.Store
	resolver   *resolver.Resolver
	classifier classifier.Classifier
	storage    storage.Storage
	publisher  Publisher
	clock      clock.Clock
	cfg        Config
	logger     *slog.Logger
}

// NewController creates a new session Controller
func NewController(
	store *roster.Store,
	res *resolver.Resolver,
	cls classifier.Classifier,
	history storage.Storage,
	publisher Publisher,
	clk clock.Clock,
	cfg Config,
	logger *slog.Logger,
) *Controller {
	if cfg.PollKeyword == "" {
		cfg.PollKeyword = DefaultPollKeyword
	}
	if cfg.HistorySize <= 0 {
		cfg.HistorySize = storage.DefaultHistorySize
	}
	return &Controller{
		store:      store,
		resolver:   res,
		classifier: cls,
		storage:    history,
		publisher:  publisher,
		clock:      clk,
		cfg:        cfg,
		logger:     logger.With(slog.String("component", "session")),
	}
}

// HandleMessage processes one group-chat message
func (c *Controller) HandleMessage(ctx context.Context, msg model.ChatMessage) (Result, error) {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return Result{Ignored: true}, nil
	}

	if msg.Kind == model.MessageKindPollCreation {
		if !msg.FromSelf || !strings.Contains(strings.ToLower(text), strings.ToLower(c.cfg.PollKeyword)) {
			return Result{Ignored: true}, nil
		}

		c.mu.Lock()
		defer c.mu.Unlock()

		c.logger.Info("sign-up poll created, sending status")
		out := model.Outcome{Action: model.ActionStatusInquiry, Announce: true}
		return Result{Outcome: out, Status: c.announce()}, nil
	}

	if msg.FromSelf && strings.Contains(text, status.Header) {
		c.logger.Debug("skipping own status message")
		return Result{Ignored: true}, nil
	}

	sender := strings.TrimSpace(msg.Sender)
	if sender == "" {
		return Result{}, model.ErrEmptySender
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	msg.Sender = sender
	msg.Text = text
	if msg.Kind == "" {
		msg.Kind = model.MessageKindChat
	}
	if msg.ReceivedAt.IsZero() {
		msg.ReceivedAt = c.clock.Now()
	}

	history := c.recentHistory(ctx)
	if err := c.storage.AppendMessage(ctx, &msg); err != nil {
		c.logger.Warn("failed to record message history", slog.String("error", err.Error()))
	}

	intent, err := c.classifier.ClassifyIntent(ctx, classifier.Request{
		Text:    text,
		Sender:  sender,
		History: history,
	})
	if err != nil || intent == nil {
		if err != nil {
			c.logger.Warn("classification failed", slog.String("error", err.Error()))
		}
		intent = model.Irrelevant{Reason: "classification failed"}
	}

	in := resolver.Input{Intent: intent, Sender: sender}
	if intent.Action() == model.ActionCourtUpdate {
		if target, ok := courts.Extract(text, c.store.CourtCount()); ok {
			in.CourtTarget = target
		}
	}

	return c.apply(in), nil
}

// HandlePollVote processes a vote on the sign-up poll. A "yes" asks for a
// spot on behalf of the voter.
func (c *Controller) HandlePollVote(ctx context.Context, vote model.PollVote) (Result, error) {
	voter := strings.TrimSpace(vote.Voter)
	if voter == "" {
		return Result{}, model.ErrEmptySender
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	yes, err := c.classifier.ClassifyPollVote(ctx, vote.PollText, vote.SelectedOptions)
	if err != nil {
		c.logger.Warn("vote classification failed", slog.String("error", err.Error()))
		yes = false
	}

	if !yes {
		c.logger.Info("poll vote is not a yes",
			slog.String("voter", voter),
			slog.Any("options", vote.SelectedOptions))
		return Result{Outcome: model.Outcome{Action: model.ActionIrrelevant, Reason: model.ReasonIrrelevant}}, nil
	}

	return c.apply(resolver.Input{
		Intent: model.RequestSpot{Meta: model.Meta{Score: 1}},
		Sender: voter,
	}), nil
}

// Snapshot returns the current roster
func (c *Controller) Snapshot() model.RosterSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.Snapshot()
}

// Status returns the rendered status without publishing it
func (c *Controller) Status() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.render()
}

// Reset clears the roster and message history for a new week and publishes
// the fresh status
func (c *Controller) Reset(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// History first, so a storage failure leaves the week untouched
	if err := c.storage.ClearMessages(ctx); err != nil {
		c.logger.Error("failed to clear message history", slog.String("error", err.Error()))
		return "", err
	}
	c.store.Reset()

	c.logger.Info("session reset")
	return c.announce(), nil
}

// SetCourts sets the court count directly, bypassing organizer checks. It
// returns ErrAutoCapacity when the court count is derived from headcount.
func (c *Controller) SetCourts(count int) (Result, error) {
	if count < 1 {
		return Result{}, model.ErrInvalidCourtCount
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.store.Policy().Mode() == capacity.ModeAuto {
		c.logger.Info("court override rejected in auto capacity mode", slog.Int("courts", count))
		return Result{}, model.ErrAutoCapacity
	}

	previous, moves := c.store.SetCourtCount(count)
	change := model.RosterChange{CourtsBefore: previous, CourtsAfter: c.store.CourtCount()}
	change.Merge(moves.Promoted, moves.Demoted)

	c.logger.Info("court count set",
		slog.Int("previous", previous),
		slog.Int("courts", change.CourtsAfter),
		slog.Int("promoted", len(moves.Promoted)),
		slog.Int("demoted", len(moves.Demoted)))

	out := model.Outcome{
		Action:   model.ActionCourtUpdate,
		Mutated:  !change.Empty(),
		Announce: true,
		Change:   change,
	}
	return Result{Outcome: out, Status: c.announce()}, nil
}

// apply resolves an intent and announces when asked to. Caller holds mu.
func (c *Controller) apply(in resolver.Input) Result {
	out := c.resolver.Resolve(in)

	c.logger.Info("intent resolved",
		slog.String("sender", in.Sender),
		slog.String("action", string(out.Action)),
		slog.Float64("confidence", in.Intent.Confidence()),
		slog.Bool("mutated", out.Mutated),
		slog.String("reason", string(out.Reason)))

	result := Result{Outcome: out}
	if out.Announce {
		result.Status = c.announce()
	}
	return result
}

// announce renders and publishes the status. Caller holds mu.
func (c *Controller) announce() string {
	text := c.render()
	if c.publisher != nil {
		c.publisher.PublishStatus(text)
	}
	return text
}

func (c *Controller) render() string {
	return status.Render(c.store.Snapshot(), status.Options{SessionTime: c.cfg.SessionTime})
}

func (c *Controller) recentHistory(ctx context.Context) []*model.ChatMessage {
	history, err := c.storage.RecentMessages(ctx, c.cfg.HistorySize)
	if err != nil {
		c.logger.Warn("failed to load message history", slog.String("error", err.Error()))
		return nil
	}
	return history
}
