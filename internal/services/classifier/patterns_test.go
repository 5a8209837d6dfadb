package classifier

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/courtbot/internal/model"
)

func TestPatternsClassifyIntent(t *testing.T) {
	p := NewPatterns()

	tests := []struct {
		name   string
		text   string
		sender string
		want   model.Intent
	}{
		{"location batts", "We're at batts this week", "Adam Shin",
			model.LocationUpdate{Meta: model.Meta{Score: 0.9}, Location: "Batts"}},
		{"location lions", "Lions today", "Adam Shin",
			model.LocationUpdate{Meta: model.Meta{Score: 0.9}, Location: "Lions"}},
		{"plus guest", "+ Sam", "Bob",
			model.AddGuest{Meta: model.Meta{Score: 0.9}, Names: []string{"Sam"}}},
		{"bare plus", "+", "Bob",
			model.Irrelevant{Meta: model.Meta{Score: 0.5}}},
		{"court booking", "I booked 2 courts", "Adam Shin",
			model.CourtUpdate{Meta: model.Meta{Score: 0.8}}},
		{"named wants to play", "Sam wants to play", "Bob",
			model.AddGuest{Meta: model.Meta{Score: 0.8}, Names: []string{"Sam"}}},
		{"sender wants to play", "I want to play", "Bob",
			model.RequestSpot{Meta: model.Meta{Score: 0.8}}},
		{"greeting is not a name", "Hey I want to play", "Bob",
			model.RequestSpot{Meta: model.Meta{Score: 0.8}}},
		{"sender name is not a guest", "Bob wants to play", "Bob Smith",
			model.RequestSpot{Meta: model.Meta{Score: 0.8}}},
		{"named can't play", "Sam can’t play", "Bob",
			model.RemoveGuest{Meta: model.Meta{Score: 0.8}, Name: "Sam"}},
		{"sender can't play", "i can't play sorry", "Bob",
			model.RemovePlayer{Meta: model.Meta{Score: 0.8}}},
		{"backing out", "backing out this week", "Bob",
			model.RemovePlayer{Meta: model.Meta{Score: 0.8}}},
		{"who is playing", "who's playing?", "Bob",
			model.StatusInquiry{Meta: model.Meta{Score: 0.7}}},
		{"spots", "any spots left?", "Bob",
			model.AskAvailability{Meta: model.Meta{Score: 0.7}}},
		{"count me in", "count me in", "Bob",
			model.RequestSpot{Meta: model.Meta{Score: 0.8}}},
		{"irrelevant", "happy birthday!", "Bob",
			model.Irrelevant{Meta: model.Meta{Score: 0.5}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.ClassifyIntent(context.Background(), Request{Text: tt.text, Sender: tt.sender})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPatternsCustomLocations(t *testing.T) {
	p := NewPatterns("Northside")

	got, err := p.ClassifyIntent(context.Background(), Request{Text: "northside at 9", Sender: "Adam"})
	require.NoError(t, err)
	assert.Equal(t, model.LocationUpdate{Meta: model.Meta{Score: 0.9}, Location: "Northside"}, got)
}

func TestPatternsClassifyPollVote(t *testing.T) {
	p := NewPatterns()
	ctx := context.Background()

	tests := []struct {
		name    string
		options []string
		want    bool
	}{
		{"first option id", []string{"0"}, true},
		{"yes", []string{"Yes!"}, true},
		{"im in", []string{"I'm in"}, true},
		{"thumbs up", []string{"👍"}, true},
		{"no", []string{"No"}, false},
		{"yesterday is not yes", []string{"yesterday"}, false},
		{"nothing selected", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			yes, err := p.ClassifyPollVote(ctx, "Badminton Saturday?", tt.options)
			require.NoError(t, err)
			assert.Equal(t, tt.want, yes)
		})
	}
}
