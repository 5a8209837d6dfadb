package classifier

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/courtbot/internal/model"
	"github.com/mcoot/courtbot/internal/testutil"
)

// stubClassifier returns canned results, optionally after blocking until the
// context is done
type stubClassifier struct {
	intent model.Intent
	vote   bool
	err    error
	block  bool
	calls  int
}

func (s *stubClassifier) ClassifyIntent(ctx context.Context, _ Request) (model.Intent, error) {
	s.calls++
	if s.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return s.intent, s.err
}

func (s *stubClassifier) ClassifyPollVote(ctx context.Context, _ string, _ []string) (bool, error) {
	s.calls++
	if s.block {
		<-ctx.Done()
		return false, ctx.Err()
	}
	return s.vote, s.err
}

func TestFallbackUsesPrimaryResult(t *testing.T) {
	primary := &stubClassifier{intent: model.StatusInquiry{Meta: model.Meta{Score: 0.9}}}
	fallback := &stubClassifier{intent: model.Irrelevant{}}
	f := WithFallback(primary, fallback, time.Second, testutil.NopLogger())

	got, err := f.ClassifyIntent(context.Background(), Request{Text: "who's playing"})
	require.NoError(t, err)
	assert.Equal(t, model.StatusInquiry{Meta: model.Meta{Score: 0.9}}, got)
	assert.Equal(t, 0, fallback.calls)
}

func TestFallbackOnError(t *testing.T) {
	primary := &stubClassifier{err: errors.New("rate limited")}
	f := WithFallback(primary, NewPatterns(), time.Second, testutil.NopLogger())

	got, err := f.ClassifyIntent(context.Background(), Request{Text: "count me in", Sender: "Bob"})
	require.NoError(t, err)
	assert.Equal(t, model.ActionRequestSpot, got.Action())
}

func TestFallbackOnMalformedOutput(t *testing.T) {
	primary := &stubClassifier{err: fmt.Errorf("decode intent: %w", model.ErrMalformedOutput)}
	f := WithFallback(primary, NewPatterns(), time.Second, testutil.NopLogger())

	got, err := f.ClassifyIntent(context.Background(), Request{Text: "count me in", Sender: "Bob"})
	require.NoError(t, err)
	assert.Equal(t, model.ActionRequestSpot, got.Action())
	assert.Equal(t, 1, primary.calls)
}

func TestFallbackOnNilIntent(t *testing.T) {
	primary := &stubClassifier{}
	f := WithFallback(primary, NewPatterns(), time.Second, testutil.NopLogger())

	got, err := f.ClassifyIntent(context.Background(), Request{Text: "hello"})
	require.NoError(t, err)
	assert.Equal(t, model.ActionIrrelevant, got.Action())
}

func TestFallbackOnTimeout(t *testing.T) {
	primary := &stubClassifier{block: true}
	f := WithFallback(primary, NewPatterns(), 20*time.Millisecond, testutil.NopLogger())

	start := time.Now()
	got, err := f.ClassifyIntent(context.Background(), Request{Text: "backing out", Sender: "Bob"})
	require.NoError(t, err)
	assert.Equal(t, model.ActionRemovePlayer, got.Action())
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestFallbackPollVote(t *testing.T) {
	f := WithFallback(&stubClassifier{vote: true}, NewPatterns(), time.Second, testutil.NopLogger())
	yes, err := f.ClassifyPollVote(context.Background(), "Badminton?", []string{"No"})
	require.NoError(t, err)
	assert.True(t, yes)

	f = WithFallback(&stubClassifier{err: errors.New("down")}, NewPatterns(), time.Second, testutil.NopLogger())
	yes, err = f.ClassifyPollVote(context.Background(), "Badminton?", []string{"Yes"})
	require.NoError(t, err)
	assert.True(t, yes)

	f = WithFallback(&stubClassifier{block: true}, NewPatterns(), 20*time.Millisecond, testutil.NopLogger())
	yes, err = f.ClassifyPollVote(context.Background(), "Badminton?", []string{"No"})
	require.NoError(t, err)
	assert.False(t, yes)
}

func TestWithFallbackDefaultsTimeout(t *testing.T) {
	f := WithFallback(NewPatterns(), NewPatterns(), 0, testutil.NopLogger())
	assert.Equal(t, DefaultTimeout, f.timeout)
}
