// Package status renders the roster as a chat message.
package status

import (
	"fmt"
	"strings"

	"github.com/mcoot/courtbot/internal/model"
)

// Header opens every status message. The session controller uses it to
// recognise its own echoes.
const Header = "*Current Status:*"

// DefaultSessionTime is shown next to the location
const DefaultSessionTime = "9-11 AM Saturday"

// Options controls rendering
type Options struct {
	SessionTime string
}

// Render formats a roster snapshot
func Render(snap model.RosterSnapshot, opts Options) string {
	sessionTime := opts.SessionTime
	if sessionTime == "" {
		sessionTime = DefaultSessionTime
	}

	courts := snap.Limits.Courts
	playing := len(snap.Players)

	var b strings.Builder
	b.WriteString(Header + "\n")
	fmt.Fprintf(&b, "📍 Location: %s (%s)\n", snap.Location, sessionTime)
	fmt.Fprintf(&b, "🏸 Courts: %d\n", courts)
	fmt.Fprintf(&b, "👥 Players: %d/%d\n", playing, snap.Limits.MaxPlaying)

	switch {
	case snap.PlayersNeeded() > 0:
		fmt.Fprintf(&b, "⚠️ Need %d more player(s) to justify %d court(s)\n", snap.PlayersNeeded(), courts)
	case snap.AvailableSpots() > 0:
		fmt.Fprintf(&b, "✅ Available spots: %d\n", snap.AvailableSpots())
	case len(snap.Waitlist) > 0:
		fmt.Fprintf(&b, "❌ Courts full - %d on waitlist\n", len(snap.Waitlist))
	default:
		b.WriteString("✅ Courts full\n")
	}

	fmt.Fprintf(&b, "\n*Playing (%d):*\n", playing)
	writeList(&b, snap.Players)

	if len(snap.Waitlist) > 0 {
		fmt.Fprintf(&b, "\n*Waitlist (%d):*\n", len(snap.Waitlist))
		writeList(&b, snap.Waitlist)
	}

	return b.String()
}

func writeList(b *strings.Builder, list []model.Registrant) {
	for i, r := range list {
		fmt.Fprintf(b, "%d. %s\n", i+1, r.Name)
	}
}
