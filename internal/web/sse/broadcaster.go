package sse

import (
	"log/slog"
	"sync"
	"time"

	"github.com/mcoot/courtbot/internal/dependencies/random"
)

// EventStatus is the SSE event name carrying rendered status text
const EventStatus = "status"

// DelayConfig bounds the pause before a status is delivered. The actual
// delay is drawn uniformly from [Min, Max].
type DelayConfig struct {
	Min time.Duration
	Max time.Duration
}

// DefaultDelayConfig mimics a person typing a reply
func DefaultDelayConfig() DelayConfig {
	return DelayConfig{Min: time.Second, Max: 3 * time.Second}
}

// Broadcaster delivers status updates to the hub in order, after a short
// randomized delay. Statuses queued during the delay are collapsed into the
// newest one, so subscribers never see a stale status after a fresh one.
type Broadcaster struct {
	hub    *Hub
	random random.Random
	delay  DelayConfig
	logger *slog.Logger

	pending   chan string
	done      chan struct{}
	closeOnce sync.Once

	mu     sync.RWMutex
	latest string
}

// NewBroadcaster creates a Broadcaster. Call Run in its own goroutine.
func NewBroadcaster(hub *Hub, rnd random.Random, delay DelayConfig, logger *slog.Logger) *Broadcaster {
	if delay.Max < delay.Min {
		delay.Max = delay.Min
	}
	return &Broadcaster{
		hub:     hub,
		random:  rnd,
		delay:   delay,
		logger:  logger.With(slog.String("component", "sse-broadcaster")),
		pending: make(chan string, 16),
		done:    make(chan struct{}),
	}
}

// PublishStatus queues a status for delivery without blocking
func (b *Broadcaster) PublishStatus(text string) {
	b.mu.Lock()
	b.latest = text
	b.mu.Unlock()

	select {
	case b.pending <- text:
	default:
		b.logger.Warn("status publish dropped - queue full")
	}
}

// Latest returns the most recently published status, delivered or not
func (b *Broadcaster) Latest() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.latest
}

// Run delivers queued statuses until Close is called
func (b *Broadcaster) Run() {
	for {
		select {
		case text := <-b.pending:
			if d := b.nextDelay(); d > 0 {
				timer := time.NewTimer(d)
				select {
				case <-timer.C:
				case <-b.done:
					timer.Stop()
					return
				}
			}
			text = b.drain(text)
			b.hub.BroadcastEvent(EventStatus, text)
			b.logger.Info("status broadcast", slog.Int("clients", b.hub.ClientCount()))

		case <-b.done:
			return
		}
	}
}

// Close stops delivery
func (b *Broadcaster) Close() {
	b.closeOnce.Do(func() { close(b.done) })
}

// drain returns the newest queued status, or text if nothing else is queued
func (b *Broadcaster) drain(text string) string {
	for {
		select {
		case newer := <-b.pending:
			text = newer
		default:
			return text
		}
	}
}

func (b *Broadcaster) nextDelay() time.Duration {
	span := b.delay.Max - b.delay.Min
	if span <= 0 {
		return b.delay.Min
	}
	jitter := b.random.Intn(int(span/time.Millisecond) + 1)
	return b.delay.Min + time.Duration(jitter)*time.Millisecond
}
