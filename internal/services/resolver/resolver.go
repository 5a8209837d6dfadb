// Package resolver applies classified intents to the roster.
//
// Every branch is a small decision procedure that either mutates the roster
// and asks for a status update, or does nothing. Nothing here returns an
// error: the intent comes from an unreliable classifier, so anything
// malformed, unauthorized or too uncertain degrades to a no-op.
//
// ask_availability is read-only. It answers with a status update but never
// registers anyone; only request_spot (or add_guest) does.
package resolver

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/mcoot/courtbot/internal/dependencies/clock"
	"github.com/mcoot/courtbot/internal/model"
	"github.com/mcoot/courtbot/internal/services/capacity"
	"github.com/mcoot/courtbot/internal/services/roster"
)

// DefaultConfidenceThreshold is the confidence an intent must exceed
const DefaultConfidenceThreshold = 0.6

// Config holds the resolver's policy settings
type Config struct {
	// Organizer is the only sender allowed to change location and courts.
	// Empty means nobody can.
	Organizer string
	// ConfidenceThreshold: intents at or below it are ignored
	ConfidenceThreshold float64
}

// DefaultConfig returns the default resolver configuration
func DefaultConfig() Config {
	return Config{
		ConfidenceThreshold: DefaultConfidenceThreshold,
	}
}

// Input is one intent to resolve
type Input struct {
	Intent model.Intent
	Sender string
	// CourtTarget is the court count extracted from the raw message for a
	// court_update; zero or negative when nothing could be extracted
	CourtTarget int
}

// Resolver maps intents onto roster operations
type Resolver struct {
	store  *roster.Store
	clock  clock.Clock
	cfg    Config
	logger *slog.Logger
}

// New creates a Resolver over store
func New(store *roster.Store, clk clock.Clock, cfg Config, logger *slog.Logger) *Resolver {
	return &Resolver{
		store:  store,
		clock:  clk,
		cfg:    cfg,
		logger: logger.With(slog.String("component", "resolver")),
	}
}

// Config returns the resolver configuration
func (r *Resolver) Config() Config {
	return r.cfg
}

// IsOrganizer reports whether name is the configured organizer
func (r *Resolver) IsOrganizer(name string) bool {
	return r.cfg.Organizer != "" && name == r.cfg.Organizer
}

// Resolve applies in to the roster and reports what happened
func (r *Resolver) Resolve(in Input) (out model.Outcome) {
	defer func() {
		if p := recover(); p != nil {
			r.logger.Error("intent resolution panicked",
				slog.String("sender", in.Sender),
				slog.String("panic", fmt.Sprint(p)))
			out = noop(model.ActionIrrelevant, model.ReasonMalformed)
		}
	}()

	if in.Intent == nil {
		return noop(model.ActionIrrelevant, model.ReasonMalformed)
	}

	action := in.Intent.Action()
	logger := r.logger.With(
		slog.String("action", string(action)),
		slog.String("sender", in.Sender))

	if _, ok := in.Intent.(model.Irrelevant); ok {
		return noop(action, model.ReasonIrrelevant)
	}

	// Written so that NaN also fails the check
	if !(in.Intent.Confidence() > r.cfg.ConfidenceThreshold) {
		logger.Info("intent below confidence threshold",
			slog.Float64("confidence", in.Intent.Confidence()))
		return noop(action, model.ReasonBelowThreshold)
	}

	sender := strings.TrimSpace(in.Sender)

	switch intent := in.Intent.(type) {
	case model.LocationUpdate:
		return r.updateLocation(logger, sender, intent)
	case model.CourtUpdate:
		return r.updateCourts(logger, sender, in.CourtTarget)
	case model.AddGuest:
		return r.addGuests(logger, sender, intent)
	case model.RemoveGuest:
		return r.remove(logger, action, sender, intent.Name)
	case model.RemovePlayer:
		return r.remove(logger, action, sender, intent.Name)
	case model.RequestSpot:
		return r.requestSpot(logger, sender, intent.Guest)
	case model.AskAvailability:
		return model.Outcome{Action: action, Announce: true, Reason: model.ReasonReadOnly}
	case model.StatusInquiry:
		return model.Outcome{Action: action, Announce: true}
	default:
		logger.Warn("unsupported intent type", slog.String("type", fmt.Sprintf("%T", intent)))
		return noop(action, model.ReasonMalformed)
	}
}

func (r *Resolver) updateLocation(logger *slog.Logger, sender string, intent model.LocationUpdate) model.Outcome {
	if !r.IsOrganizer(sender) {
		logger.Info("location update ignored: sender is not the organizer")
		return noop(model.ActionLocationUpdate, model.ReasonUnauthorized)
	}

	location := strings.TrimSpace(intent.Location)
	if location == "" {
		return noop(model.ActionLocationUpdate, model.ReasonMalformed)
	}

	previous := r.store.SetLocation(location)
	out := model.Outcome{
		Action:   model.ActionLocationUpdate,
		Announce: true,
		Mutated:  previous != location,
	}
	if out.Mutated {
		out.Change.Location = location
	}
	return out
}

func (r *Resolver) updateCourts(logger *slog.Logger, sender string, target int) model.Outcome {
	if !r.IsOrganizer(sender) {
		logger.Info("court update ignored: sender is not the organizer")
		return noop(model.ActionCourtUpdate, model.ReasonUnauthorized)
	}

	if r.store.Policy().Mode() == capacity.ModeAuto {
		logger.Info("court update ignored: courts follow headcount")
		return noop(model.ActionCourtUpdate, model.ReasonAutoCapacity)
	}

	if target < 1 {
		logger.Info("court update ignored: no court count in message")
		return noop(model.ActionCourtUpdate, model.ReasonMalformed)
	}

	previous, moves := r.store.SetCourtCount(target)
	change := model.RosterChange{
		CourtsBefore: previous,
		CourtsAfter:  r.store.CourtCount(),
	}
	change.Merge(moves.Promoted, moves.Demoted)

	return model.Outcome{
		Action:   model.ActionCourtUpdate,
		Announce: true,
		Mutated:  !change.Empty(),
		Change:   change,
	}
}

func (r *Resolver) addGuests(logger *slog.Logger, sender string, intent model.AddGuest) model.Outcome {
	if intent.Uncertain {
		logger.Info("guest request ignored: uncertain", slog.Any("names", intent.Names))
		return noop(model.ActionAddGuest, model.ReasonUncertain)
	}

	sponsor := strings.TrimSpace(intent.Responder)
	if sponsor == "" {
		sponsor = sender
	}

	return r.register(logger, model.ActionAddGuest, sponsor, cleanNames(intent.Names))
}

func (r *Resolver) requestSpot(logger *slog.Logger, sender, guest string) model.Outcome {
	guest = strings.TrimSpace(guest)
	if guest != "" && guest != sender {
		return r.register(logger, model.ActionRequestSpot, sender, []string{guest})
	}

	if sender != "" && r.store.IsRegistered(sender) {
		return noop(model.ActionRequestSpot, model.ReasonAlreadyRegistered)
	}

	return r.register(logger, model.ActionRequestSpot, sender, []string{sender})
}

// register adds each name independently; a name equal to the sponsor is a
// self-registration, every other name is a guest of the sponsor
func (r *Resolver) register(logger *slog.Logger, action model.Action, sponsor string, names []string) model.Outcome {
	if sponsor == "" || len(names) == 0 {
		return noop(action, model.ReasonMalformed)
	}

	var change model.RosterChange
	now := r.clock.Now()
	for _, name := range names {
		registrant := model.Registrant{Name: name, RegisteredAt: now}
		if name != sponsor {
			registrant.IsGuest = true
			registrant.Sponsor = sponsor
		}

		placement, added := r.store.Register(registrant)
		if !added {
			logger.Info("already registered", slog.String("name", name))
			continue
		}
		change.Added = append(change.Added, placement)
	}

	if len(change.Added) == 0 {
		return noop(action, model.ReasonAlreadyRegistered)
	}

	moves := r.store.Reconcile()
	change.Merge(moves.Promoted, moves.Demoted)

	return model.Outcome{
		Action:   action,
		Mutated:  true,
		Announce: true,
		Change:   change,
	}
}

func (r *Resolver) remove(logger *slog.Logger, action model.Action, sender, name string) model.Outcome {
	target := strings.TrimSpace(name)
	if target == "" || target == sender {
		target = sender
	}
	if target == "" {
		return noop(action, model.ReasonMalformed)
	}

	removal := r.store.Unregister(target)
	if !removal.Found {
		logger.Info("nobody to remove", slog.String("name", target))
		return noop(action, model.ReasonNotFound)
	}

	change := model.RosterChange{Removed: []string{target}}
	change.Merge(removal.Moves.Promoted, removal.Moves.Demoted)

	return model.Outcome{
		Action:   action,
		Mutated:  true,
		Announce: true,
		Change:   change,
	}
}

func noop(action model.Action, reason model.NoopReason) model.Outcome {
	return model.Outcome{Action: action, Reason: reason}
}

// cleanNames trims names, drops blanks and removes duplicates keeping order
func cleanNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || slices.Contains(out, name) {
			continue
		}
		out = append(out, name)
	}
	return out
}
