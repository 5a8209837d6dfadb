package classifier

import (
	"context"
	"log/slog"
	"time"

	"github.com/mcoot/courtbot/internal/model"
)

// DefaultTimeout bounds a primary classification call
const DefaultTimeout = 10 * time.Second

// Fallback runs a primary classifier under a timeout and falls back to a
// deterministic one when it fails, times out or returns nothing
type Fallback struct {
	primary  Classifier
	fallback Classifier
	timeout  time.Duration
	logger   *slog.Logger
}

var _ Classifier = (*Fallback)(nil)

// WithFallback wraps primary. A non-positive timeout uses DefaultTimeout.
func WithFallback(primary, fallback Classifier, timeout time.Duration, logger *slog.Logger) *Fallback {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Fallback{
		primary:  primary,
		fallback: fallback,
		timeout:  timeout,
		logger:   logger.With(slog.String("component", "classifier")),
	}
}

type intentResult struct {
	intent model.Intent
	err    error
}

type voteResult struct {
	yes bool
	err error
}

// ClassifyIntent tries the primary classifier, then the fallback
func (f *Fallback) ClassifyIntent(ctx context.Context, req Request) (model.Intent, error) {
	callCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	// Buffered so the goroutine can finish after we stop waiting
	done := make(chan intentResult, 1)
	go func() {
		intent, err := f.primary.ClassifyIntent(callCtx, req)
		done <- intentResult{intent: intent, err: err}
	}()

	select {
	case res := <-done:
		if res.err == nil && res.intent != nil {
			return res.intent, nil
		}
		err := res.err
		if err == nil {
			err = model.ErrNoClassification
		}
		f.logger.Warn("classification failed, using fallback patterns",
			slog.String("error", err.Error()))
	case <-callCtx.Done():
		f.logger.Warn("classification timed out, using fallback patterns",
			slog.Duration("timeout", f.timeout))
	}

	return f.fallback.ClassifyIntent(ctx, req)
}

// ClassifyPollVote tries the primary classifier, then the fallback
func (f *Fallback) ClassifyPollVote(ctx context.Context, pollText string, selectedOptions []string) (bool, error) {
	callCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	done := make(chan voteResult, 1)
	go func() {
		yes, err := f.primary.ClassifyPollVote(callCtx, pollText, selectedOptions)
		done <- voteResult{yes: yes, err: err}
	}()

	select {
	case res := <-done:
		if res.err == nil {
			return res.yes, nil
		}
		f.logger.Warn("vote classification failed, using fallback patterns",
			slog.String("error", res.err.Error()))
	case <-callCtx.Done():
		f.logger.Warn("vote classification timed out, using fallback patterns",
			slog.Duration("timeout", f.timeout))
	}

	return f.fallback.ClassifyPollVote(ctx, pollText, selectedOptions)
}
