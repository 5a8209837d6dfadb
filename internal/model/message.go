package model

import "time"

// MessageKind distinguishes plain chat from poll creation messages
type MessageKind string

const (
	MessageKindChat         MessageKind = "chat"
	MessageKindPollCreation MessageKind = "poll_creation"
)

// ChatMessage is an inbound group-chat message as delivered by the bridge
type ChatMessage struct {
	Sender     string      `json:"sender"`
	Text       string      `json:"text"`
	Kind       MessageKind `json:"kind"`
	FromSelf   bool        `json:"from_self"` // sent by the bot's own account
	ReceivedAt time.Time   `json:"received_at"`
}

// PollVote is a vote cast on a group poll
type PollVote struct {
	Voter           string   `json:"voter"`
	PollText        string   `json:"poll_text"`
	SelectedOptions []string `json:"selected_options"`
}
