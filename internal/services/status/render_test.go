package status

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcoot/courtbot/internal/model"
)

func registrants(names ...string) []model.Registrant {
	out := make([]model.Registrant, len(names))
	for i, n := range names {
		out[i] = model.Registrant{Name: n}
	}
	return out
}

func snapshot(courts int, players, waitlist []model.Registrant) model.RosterSnapshot {
	return model.RosterSnapshot{
		Players:    players,
		Waitlist:   waitlist,
		CourtCount: courts,
		Location:   "Batts",
		Limits:     model.Limits{Courts: courts, MaxPlaying: courts * 5, MinToJustify: courts * 4},
	}
}

func TestRenderEmptyRoster(t *testing.T) {
	got := Render(snapshot(1, nil, nil), Options{})

	want := "*Current Status:*\n" +
		"📍 Location: Batts (9-11 AM Saturday)\n" +
		"🏸 Courts: 1\n" +
		"👥 Players: 0/5\n" +
		"⚠️ Need 4 more player(s) to justify 1 court(s)\n" +
		"\n*Playing (0):*\n"
	assert.Equal(t, want, got)
}

func TestRenderAvailableSpots(t *testing.T) {
	got := Render(snapshot(1, registrants("A", "B", "C", "D"), nil), Options{SessionTime: "7-9 PM Friday"})

	assert.True(t, strings.HasPrefix(got, Header))
	assert.Contains(t, got, "📍 Location: Batts (7-9 PM Friday)\n")
	assert.Contains(t, got, "👥 Players: 4/5\n")
	assert.Contains(t, got, "✅ Available spots: 1\n")
	assert.Contains(t, got, "*Playing (4):*\n1. A\n2. B\n3. C\n4. D\n")
	assert.NotContains(t, got, "Waitlist")
}

func TestRenderFullWithWaitlist(t *testing.T) {
	got := Render(snapshot(1, registrants("A", "B", "C", "D", "E"), registrants("F", "G")), Options{})

	assert.Contains(t, got, "❌ Courts full - 2 on waitlist\n")
	assert.Contains(t, got, "\n*Waitlist (2):*\n1. F\n2. G\n")
}

func TestRenderFull(t *testing.T) {
	got := Render(snapshot(1, registrants("A", "B", "C", "D", "E"), nil), Options{})

	assert.Contains(t, got, "✅ Courts full\n")
}

func TestRenderNeedMoreCountsWaitlist(t *testing.T) {
	got := Render(snapshot(2, registrants("A", "B", "C", "D", "E"), nil), Options{})

	assert.Contains(t, got, "🏸 Courts: 2\n")
	assert.Contains(t, got, "👥 Players: 5/10\n")
	assert.Contains(t, got, "⚠️ Need 3 more player(s) to justify 2 court(s)\n")
}
