package request

// MessageRequest is the request body for an inbound chat message
type MessageRequest struct {
	Sender   string `json:"sender"`
	Text     string `json:"text"`
	Kind     string `json:"kind,omitempty"`
	FromSelf bool   `json:"from_self,omitempty"`
}

// PollVoteRequest is the request body for a poll vote
type PollVoteRequest struct {
	Voter           string   `json:"voter"`
	PollText        string   `json:"poll_text"`
	SelectedOptions []string `json:"selected_options"`
}

// SetCourtsRequest is the request body for setting the court count
type SetCourtsRequest struct {
	Count int `json:"count"`
}
