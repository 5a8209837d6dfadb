package model

// Placement records where a newly registered person landed
type Placement struct {
	Name  string
	Queue Queue
}

// RosterChange describes what a single accepted intent did to the roster
type RosterChange struct {
	Added        []Placement
	Removed      []string
	Promoted     []string
	Demoted      []string
	CourtsBefore int
	CourtsAfter  int
	Location     string // set when the location changed
}

// Empty reports whether the change recorded no mutation
func (c RosterChange) Empty() bool {
	return len(c.Added) == 0 &&
		len(c.Removed) == 0 &&
		len(c.Promoted) == 0 &&
		len(c.Demoted) == 0 &&
		c.CourtsBefore == c.CourtsAfter &&
		c.Location == ""
}

// Merge appends the promotions and demotions of a reconciliation pass
func (c *RosterChange) Merge(promoted, demoted []string) {
	c.Promoted = append(c.Promoted, promoted...)
	c.Demoted = append(c.Demoted, demoted...)
}

// NoopReason explains why an intent did not change the roster
type NoopReason string

const (
	ReasonNone              NoopReason = ""
	ReasonBelowThreshold    NoopReason = "below_threshold"
	ReasonUnauthorized      NoopReason = "unauthorized"
	ReasonUncertain         NoopReason = "uncertain"
	ReasonMalformed         NoopReason = "malformed"
	ReasonIrrelevant        NoopReason = "irrelevant"
	ReasonAlreadyRegistered NoopReason = "already_registered"
	ReasonNotFound          NoopReason = "not_found"
	ReasonAutoCapacity      NoopReason = "auto_capacity"
	ReasonReadOnly          NoopReason = "read_only"
)

// Outcome is the result of resolving one intent
type Outcome struct {
	Action   Action
	Mutated  bool // roster state changed
	Announce bool // caller should render and send a status update
	Change   RosterChange
	Reason   NoopReason
}
