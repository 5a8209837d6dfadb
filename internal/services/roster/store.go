// Package roster holds the playing list and waitlist for the session and keeps
// them within the capacity decided by a capacity.Policy.
package roster

import (
	"log/slog"
	"slices"
	"time"

	"github.com/mcoot/courtbot/internal/dependencies/clock"
	"github.com/mcoot/courtbot/internal/model"
	"github.com/mcoot/courtbot/internal/services/capacity"
)

// Moves lists the registrants a reconciliation pass moved between queues
type Moves struct {
	Promoted []string
	Demoted  []string
}

// Removal is the result of Unregister
type Removal struct {
	Found bool
	From  model.Queue
	Moves Moves
}

// Store owns the roster. It is not safe for concurrent use; callers serialize
// access (see session.Controller).
//
// Invariants after every exported method returns:
//   - a name appears at most once across players and waitlist
//   - len(players) <= Limits().MaxPlaying
//   - both queues are sorted by RegisteredAt ascending
//   - nobody waits while a playing spot is open
type Store struct {
	policy          capacity.Policy
	clock           clock.Clock
	logger          *slog.Logger
	defaultLocation string

	players    []model.Registrant
	waitlist   []model.Registrant
	courtCount int
	location   string
	lastStamp  time.Time
}

// New creates an empty roster with one court at the default location
func New(policy capacity.Policy, clk clock.Clock, defaultLocation string, logger *slog.Logger) *Store {
	return &Store{
		policy:          policy,
		clock:           clk,
		logger:          logger.With(slog.String("component", "roster")),
		defaultLocation: defaultLocation,
		courtCount:      1,
		location:        defaultLocation,
	}
}

// Policy returns the capacity policy in use
func (s *Store) Policy() capacity.Policy {
	return s.policy
}

// Limits returns the current capacity
func (s *Store) Limits() model.Limits {
	return s.policy.Limits(s.courtCount, len(s.players)+len(s.waitlist))
}

// CourtCount returns the stored court count
func (s *Store) CourtCount() int {
	return s.courtCount
}

// Location returns the current playing location
func (s *Store) Location() string {
	return s.location
}

// IsRegistered reports whether name is on either list
func (s *Store) IsRegistered(name string) bool {
	return indexOf(s.players, name) >= 0 || indexOf(s.waitlist, name) >= 0
}

// Register adds r to the playing list if there is room, otherwise to the
// waitlist. Registering a name that is already present, or an empty name, is a
// no-op and returns false. Register does not promote anyone; call Reconcile
// afterwards when capacity may have changed.
func (s *Store) Register(r model.Registrant) (model.Placement, bool) {
	if r.Name == "" || s.IsRegistered(r.Name) {
		return model.Placement{}, false
	}

	r.RegisteredAt = s.stamp(r.RegisteredAt)
	if !r.IsGuest {
		r.Sponsor = ""
	}

	// Capacity as it will be once r is counted. A non-empty waitlist always
	// takes precedence so a newcomer never overtakes someone already waiting.
	limits := s.policy.Limits(s.courtCount, len(s.players)+len(s.waitlist)+1)
	if len(s.waitlist) == 0 && len(s.players) < limits.MaxPlaying {
		s.players = insertSorted(s.players, r)
		s.logger.Info("registrant added to playing list",
			slog.String("name", r.Name),
			slog.Bool("guest", r.IsGuest))
		return model.Placement{Name: r.Name, Queue: model.QueuePlayers}, true
	}

	s.waitlist = insertSorted(s.waitlist, r)
	s.logger.Info("registrant added to waitlist",
		slog.String("name", r.Name),
		slog.Bool("guest", r.IsGuest),
		slog.Int("position", indexOf(s.waitlist, r.Name)+1))
	return model.Placement{Name: r.Name, Queue: model.QueueWaitlist}, true
}

// Unregister removes name from whichever list holds it and reconciles
func (s *Store) Unregister(name string) Removal {
	if i := indexOf(s.players, name); i >= 0 {
		s.players = slices.Delete(s.players, i, i+1)
		s.logger.Info("registrant removed from playing list", slog.String("name", name))
		return Removal{Found: true, From: model.QueuePlayers, Moves: s.Reconcile()}
	}

	if i := indexOf(s.waitlist, name); i >= 0 {
		s.waitlist = slices.Delete(s.waitlist, i, i+1)
		s.logger.Info("registrant removed from waitlist", slog.String("name", name))
		// Only matters for headcount-derived capacity; a no-op otherwise.
		return Removal{Found: true, From: model.QueueWaitlist, Moves: s.Reconcile()}
	}

	s.logger.Info("registrant not found", slog.String("name", name))
	return Removal{}
}

// SetCourtCount stores n (clamped to at least 1), reconciles, and returns the
// previous count
func (s *Store) SetCourtCount(n int) (int, Moves) {
	previous := s.courtCount
	s.courtCount = max(1, n)
	if previous != s.courtCount {
		s.logger.Info("court count updated",
			slog.Int("from", previous),
			slog.Int("to", s.courtCount))
	}
	return previous, s.Reconcile()
}

// SetLocation overwrites the location and returns the previous one
func (s *Store) SetLocation(location string) string {
	previous := s.location
	s.location = location
	s.logger.Info("location updated",
		slog.String("from", previous),
		slog.String("to", location))
	return previous
}

// Reset clears both lists, sets one court and restores the default location
func (s *Store) Reset() {
	s.players = nil
	s.waitlist = nil
	s.courtCount = 1
	s.location = s.defaultLocation
	s.logger.Info("roster reset")
}

// Reconcile moves registrants between the lists until the playing list fits
// the current capacity and is as full as it can be.
//
// Demotion runs first: the most recently registered player moves to the front
// of the waitlist, ahead of people who were already waiting. Promotion then
// moves the head of the waitlist onto the playing list while there is room.
// Running Reconcile twice in a row is a no-op the second time.
func (s *Store) Reconcile() Moves {
	var moves Moves

	for len(s.players) > 0 && len(s.players) > s.Limits().MaxPlaying {
		last := s.players[len(s.players)-1]
		s.players = s.players[:len(s.players)-1]
		s.waitlist = slices.Insert(s.waitlist, 0, last)
		moves.Demoted = append(moves.Demoted, last.Name)
		s.logger.Info("player moved back to waitlist", slog.String("name", last.Name))
	}

	for len(s.waitlist) > 0 && len(s.players) < s.Limits().MaxPlaying {
		head := s.waitlist[0]
		s.waitlist = slices.Delete(s.waitlist, 0, 1)
		s.players = insertSorted(s.players, head)
		moves.Promoted = append(moves.Promoted, head.Name)
		s.logger.Info("registrant promoted from waitlist", slog.String("name", head.Name))
	}

	return moves
}

// Snapshot returns a copy of the roster
func (s *Store) Snapshot() model.RosterSnapshot {
	return model.RosterSnapshot{
		Players:    slices.Clone(s.players),
		Waitlist:   slices.Clone(s.waitlist),
		CourtCount: s.courtCount,
		Location:   s.location,
		Limits:     s.Limits(),
	}
}

// stamp returns a registration time strictly after every earlier one
func (s *Store) stamp(t time.Time) time.Time {
	if t.IsZero() {
		t = s.clock.Now()
	}
	if !t.After(s.lastStamp) {
		t = s.lastStamp.Add(time.Nanosecond)
	}
	s.lastStamp = t
	return t
}

func indexOf(list []model.Registrant, name string) int {
	return slices.IndexFunc(list, func(r model.Registrant) bool {
		return r.Name == name
	})
}

func insertSorted(list []model.Registrant, r model.Registrant) []model.Registrant {
	list = append(list, r)
	slices.SortStableFunc(list, func(a, b model.Registrant) int {
		return a.RegisteredAt.Compare(b.RegisteredAt)
	})
	return list
}
