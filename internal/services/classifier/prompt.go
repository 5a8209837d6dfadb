package classifier

import (
	"encoding/json"
	"fmt"
	"strings"
)

const intentInstructions = `You classify messages in a group chat that organizes a weekly badminton session.
Reply with a single JSON object and nothing else:
{"action": "...", "confidence": 0.0-1.0, "location": "...", "guestName": "...", "guestNames": ["..."], "certainty": "confirmed|uncertain", "responder": "..."}

Actions:
- location_update: the organizer (%[1]s) names where we play (%[2]s)
- court_update: the organizer (%[1]s) booked, added, cancelled or lost courts
- add_guest: the sender says someone else definitely plays ("bringing Sam", "+Sam", "Sam wants to play")
- remove_guest: someone other than the sender is out ("Sam can't make it")
- request_spot: the sender wants to play ("I'm in", "count me in", "can I play?")
- remove_player: the sender is backing out
- ask_availability: asking whether there is space, without committing
- status_inquiry: asking who is playing or for the current list
- irrelevant: anything else

Rules:
- Being mentioned or tagged is not wanting to play. Questions about other people ("does Sam want to come?") are irrelevant until they answer.
- Hedged messages ("might", "maybe", "possibly", "thinking about it") get certainty "uncertain".
- Put the first person named in guestName and everyone named in guestNames.
- If the message answers an earlier question in the conversation, set responder to the person whose spot it is.`

const voteInstructions = `Poll: %q
Selected options: %s
Does this vote mean the voter is playing? Answer true or false only.`

// intentPrompt builds the classification prompt for one message
func intentPrompt(req Request, organizer string, locations []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, intentInstructions, organizer, strings.Join(locations, ", "))

	if len(req.History) > 0 {
		b.WriteString("\n\nRecent conversation (oldest first):\n")
		for _, m := range req.History {
			fmt.Fprintf(&b, "%s: %s\n", m.Sender, m.Text)
		}
	}

	fmt.Fprintf(&b, "\nSender: %s\nMessage: %q", req.Sender, req.Text)
	return b.String()
}

func votePrompt(pollText string, selectedOptions []string) string {
	options, _ := json.Marshal(selectedOptions)
	return fmt.Sprintf(voteInstructions, pollText, options)
}
