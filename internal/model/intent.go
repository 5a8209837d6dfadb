package model

// Action is the classified meaning of a chat message
type Action string

const (
	ActionLocationUpdate  Action = "location_update"
	ActionCourtUpdate     Action = "court_update"
	ActionAddGuest        Action = "add_guest"
	ActionRemoveGuest     Action = "remove_guest"
	ActionRemovePlayer    Action = "remove_player"
	ActionRequestSpot     Action = "request_spot"
	ActionAskAvailability Action = "ask_availability"
	ActionStatusInquiry   Action = "status_inquiry"
	ActionIrrelevant      Action = "irrelevant"
)

// Actions lists every action the classifier may return
var Actions = []Action{
	ActionLocationUpdate,
	ActionCourtUpdate,
	ActionAddGuest,
	ActionRemoveGuest,
	ActionRemovePlayer,
	ActionRequestSpot,
	ActionAskAvailability,
	ActionStatusInquiry,
	ActionIrrelevant,
}

// Valid reports whether a is a known action
func (a Action) Valid() bool {
	for _, known := range Actions {
		if a == known {
			return true
		}
	}
	return false
}

// Intent is a classified message. Each action has its own variant carrying only
// the fields that action needs; anything unparseable is an Irrelevant.
type Intent interface {
	Action() Action
	Confidence() float64
	isIntent()
}

// Meta holds the fields shared by every intent variant
type Meta struct {
	Score float64 // classifier confidence in [0, 1]
}

// Confidence returns the classifier confidence
func (m Meta) Confidence() float64 { return m.Score }

func (Meta) isIntent() {}

// LocationUpdate changes where the session is played
type LocationUpdate struct {
	Meta
	Location string
}

func (LocationUpdate) Action() Action { return ActionLocationUpdate }

// CourtUpdate changes the number of booked courts. The target count is not
// carried here; it comes from the court extractor run over the raw text.
type CourtUpdate struct {
	Meta
}

func (CourtUpdate) Action() Action { return ActionCourtUpdate }

// AddGuest registers one or more people on behalf of someone else
type AddGuest struct {
	Meta
	Names     []string
	Uncertain bool   // "might", "maybe" and similar
	Responder string // person the classifier attributed the reply to, if any
}

func (AddGuest) Action() Action { return ActionAddGuest }

// RemoveGuest removes someone other than the sender
type RemoveGuest struct {
	Meta
	Name string
}

func (RemoveGuest) Action() Action { return ActionRemoveGuest }

// RemovePlayer removes the sender, or a named person
type RemovePlayer struct {
	Meta
	Name string
}

func (RemovePlayer) Action() Action { return ActionRemovePlayer }

// RequestSpot asks for a playing spot for the sender or a named guest
type RequestSpot struct {
	Meta
	Guest string
}

func (RequestSpot) Action() Action { return ActionRequestSpot }

// AskAvailability asks whether there is room
type AskAvailability struct {
	Meta
	Guest string
}

func (AskAvailability) Action() Action { return ActionAskAvailability }

// StatusInquiry asks who is playing
type StatusInquiry struct {
	Meta
}

func (StatusInquiry) Action() Action { return ActionStatusInquiry }

// Irrelevant is anything not about coordinating the session, including
// classifier output that could not be parsed
type Irrelevant struct {
	Meta
	Reason string
}

func (Irrelevant) Action() Action { return ActionIrrelevant }
