package model

import "time"

// Queue names the roster list a registrant sits in
type Queue string

const (
	QueuePlayers  Queue = "players"
	QueueWaitlist Queue = "waitlist"
)

// Registrant is one person associated with the session
type Registrant struct {
	Name         string // uniqueness key, case-sensitive
	RegisteredAt time.Time
	IsGuest      bool   // true if added on behalf of someone else
	Sponsor      string // name of the registrant who vouched for a guest, empty otherwise
}

// Limits is the capacity derived from a court count
type Limits struct {
	Courts       int
	MaxPlaying   int
	MinToJustify int
}

// RosterSnapshot is an immutable copy of the roster at a point in time
type RosterSnapshot struct {
	Players    []Registrant
	Waitlist   []Registrant
	CourtCount int // stored court count (the organizer's booking)
	Location   string
	Limits     Limits
}

// Registered returns the total number of people on either list
func (s RosterSnapshot) Registered() int {
	return len(s.Players) + len(s.Waitlist)
}

// AvailableSpots returns how many playing spots are still open
func (s RosterSnapshot) AvailableSpots() int {
	return max(0, s.Limits.MaxPlaying-len(s.Players))
}

// PlayersNeeded returns how many more people are needed to justify the courts
func (s RosterSnapshot) PlayersNeeded() int {
	return max(0, s.Limits.MinToJustify-s.Registered())
}
