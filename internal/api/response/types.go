package response

import (
	"time"

	"github.com/mcoot/courtbot/internal/model"
	"github.com/mcoot/courtbot/internal/services/session"
)

// Registrant represents a person on the roster
type Registrant struct {
	Name         string    `json:"name"`
	RegisteredAt time.Time `json:"registered_at"`
	IsGuest      bool      `json:"is_guest,omitempty"`
	Sponsor      string    `json:"sponsor,omitempty"`
}

// RegistrantsFromModel converts a list of model.Registrant
func RegistrantsFromModel(list []model.Registrant) []Registrant {
	out := make([]Registrant, len(list))
	for i, r := range list {
		out[i] = Registrant{
			Name:         r.Name,
			RegisteredAt: r.RegisteredAt,
			IsGuest:      r.IsGuest,
			Sponsor:      r.Sponsor,
		}
	}
	return out
}

// Roster represents the full roster
type Roster struct {
	Location       string       `json:"location"`
	CourtCount     int          `json:"court_count"`
	Courts         int          `json:"courts"`
	MaxPlaying     int          `json:"max_playing"`
	MinToJustify   int          `json:"min_to_justify"`
	AvailableSpots int          `json:"available_spots"`
	PlayersNeeded  int          `json:"players_needed"`
	Players        []Registrant `json:"players"`
	Waitlist       []Registrant `json:"waitlist"`
}

// RosterFromModel converts a model.RosterSnapshot
func RosterFromModel(s model.RosterSnapshot) Roster {
	return Roster{
		Location:       s.Location,
		CourtCount:     s.CourtCount,
		Courts:         s.Limits.Courts,
		MaxPlaying:     s.Limits.MaxPlaying,
		MinToJustify:   s.Limits.MinToJustify,
		AvailableSpots: s.AvailableSpots(),
		PlayersNeeded:  s.PlayersNeeded(),
		Players:        RegistrantsFromModel(s.Players),
		Waitlist:       RegistrantsFromModel(s.Waitlist),
	}
}

// Placement records where an added registrant landed
type Placement struct {
	Name  string `json:"name"`
	Queue string `json:"queue"`
}

// Change describes a roster mutation
type Change struct {
	Added        []Placement `json:"added,omitempty"`
	Removed      []string    `json:"removed,omitempty"`
	Promoted     []string    `json:"promoted,omitempty"`
	Demoted      []string    `json:"demoted,omitempty"`
	CourtsBefore int         `json:"courts_before,omitempty"`
	CourtsAfter  int         `json:"courts_after,omitempty"`
	Location     string      `json:"location,omitempty"`
}

// ChangeFromModel converts a model.RosterChange
func ChangeFromModel(c model.RosterChange) Change {
	var added []Placement
	for _, p := range c.Added {
		added = append(added, Placement{Name: p.Name, Queue: string(p.Queue)})
	}
	return Change{
		Added:        added,
		Removed:      c.Removed,
		Promoted:     c.Promoted,
		Demoted:      c.Demoted,
		CourtsBefore: c.CourtsBefore,
		CourtsAfter:  c.CourtsAfter,
		Location:     c.Location,
	}
}

// Result is the response for any endpoint that feeds the session
type Result struct {
	Ignored   bool   `json:"ignored,omitempty"`
	Action    string `json:"action,omitempty"`
	Mutated   bool   `json:"mutated"`
	Announced bool   `json:"announced"`
	Reason    string `json:"reason,omitempty"`
	Change    Change `json:"change"`
	Status    string `json:"status,omitempty"`
}

// ResultFromSession converts a session.Result
func ResultFromSession(r session.Result) Result {
	return Result{
		Ignored:   r.Ignored,
		Action:    string(r.Outcome.Action),
		Mutated:   r.Outcome.Mutated,
		Announced: r.Outcome.Announce,
		Reason:    string(r.Outcome.Reason),
		Change:    ChangeFromModel(r.Outcome.Change),
		Status:    r.Status,
	}
}

// Status is the response carrying rendered status text
type Status struct {
	Status string `json:"status"`
}

// Health is the health check response
type Health struct {
	Status string `json:"status"`
}
