package classifier

import (
	"context"
	"regexp"
	"slices"
	"strings"

	"github.com/mcoot/courtbot/internal/model"
	"github.com/mcoot/courtbot/internal/services/courts"
)

var (
	capitalizedWord = regexp.MustCompile(`\b([A-Z][a-z]+)\b`)
	affirmative     = regexp.MustCompile(`(?i)^\s*(?:yes|yep|yeah|y|in|i'?m in|going|play(?:ing)?|count me in|👍|✅)(?:[\s!.,]|$)`)
)

// Capitalized words that start sentences rather than name people
var notNames = []string{
	"Hey", "Hi", "Hello", "Can", "Could", "Is", "Are", "Will", "Would", "Count",
	"Play", "Playing", "Sorry", "Yes", "No", "Also", "And", "But", "Just", "The",
	"Anyone", "Any", "Who", "What", "When", "Ok", "Okay", "Thanks", "Maybe",
}

// Patterns is a deterministic keyword classifier used when the language
// model is unavailable. It never returns an error.
type Patterns struct {
	locations []string
}

var _ Classifier = (*Patterns)(nil)

// NewPatterns creates a pattern classifier that recognises the given
// location names
func NewPatterns(locations ...string) *Patterns {
	if len(locations) == 0 {
		locations = []string{"Batts", "Lions"}
	}
	return &Patterns{locations: locations}
}

// ClassifyIntent matches req.Text against a fixed list of phrases
func (p *Patterns) ClassifyIntent(_ context.Context, req Request) (model.Intent, error) {
	return p.classify(req.Text, req.Sender), nil
}

// ClassifyPollVote treats the first option (id "0") and affirmative option
// text as a yes
func (p *Patterns) ClassifyPollVote(_ context.Context, _ string, selectedOptions []string) (bool, error) {
	for _, opt := range selectedOptions {
		if strings.TrimSpace(opt) == "0" || affirmative.MatchString(opt) {
			return true, nil
		}
	}
	return false, nil
}

func (p *Patterns) classify(raw, sender string) model.Intent {
	text := strings.TrimSpace(strings.ReplaceAll(raw, "’", "'"))
	lower := strings.ToLower(text)

	for _, location := range p.locations {
		if strings.Contains(lower, strings.ToLower(location)) {
			return model.LocationUpdate{Meta: model.Meta{Score: 0.9}, Location: location}
		}
	}

	if strings.HasPrefix(text, "+") {
		if name := strings.TrimSpace(text[1:]); name != "" {
			return model.AddGuest{Meta: model.Meta{Score: 0.9}, Names: []string{name}}
		}
	}

	if strings.Contains(lower, "court") {
		if _, ok := courts.Extract(text, 1); ok {
			return model.CourtUpdate{Meta: model.Meta{Score: 0.8}}
		}
	}

	name := extractName(text, sender)

	if strings.Contains(lower, "wants to play") || strings.Contains(lower, "want to play") {
		if name != "" {
			return model.AddGuest{Meta: model.Meta{Score: 0.8}, Names: []string{name}}
		}
		return model.RequestSpot{Meta: model.Meta{Score: 0.8}}
	}

	if name != "" && containsAny(lower, "can't play", "cannot play", "doesn't want to play", "does not want to play") {
		return model.RemoveGuest{Meta: model.Meta{Score: 0.8}, Name: name}
	}

	if containsAny(lower, "i can't play", "i cannot play", "can't make it", "not playing", "dropping out", "backing out") {
		return model.RemovePlayer{Meta: model.Meta{Score: 0.8}}
	}

	if containsAny(lower, "who's playing", "whos playing", "who is playing", "status") {
		return model.StatusInquiry{Meta: model.Meta{Score: 0.7}}
	}

	if containsAny(lower, "spot", "room", "available") {
		return model.AskAvailability{Meta: model.Meta{Score: 0.7}}
	}

	if containsAny(lower, "can play", "count me") {
		return model.RequestSpot{Meta: model.Meta{Score: 0.8}}
	}

	return model.Irrelevant{Meta: model.Meta{Score: 0.5}}
}

// extractName returns the first capitalized word that looks like someone
// other than the sender
func extractName(text, sender string) string {
	senderFirst, _, _ := strings.Cut(sender, " ")
	for _, m := range capitalizedWord.FindAllStringSubmatch(text, -1) {
		word := m[1]
		if slices.Contains(notNames, word) || word == senderFirst {
			continue
		}
		return word
	}
	return ""
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
