package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	switch o.format {
	case FormatJSON:
		o.printJSON(data)
	case FormatYAML:
		o.printYAML(data)
	default:
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	switch o.format {
	case FormatJSON:
		o.printJSON(map[string]string{"message": msg})
	case FormatYAML:
		o.printYAML(map[string]string{"message": msg})
	default:
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printYAML(data any) {
	enc := yaml.NewEncoder(o.w)
	enc.SetIndent(2)
	_ = enc.Encode(data)
	_ = enc.Close()
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Result:
		o.printResult(v)
	case Roster:
		o.printRoster(v)
	case StatusResult:
		fmt.Fprint(o.w, ensureNewline(v.Status))
	case HealthResult:
		fmt.Fprintf(o.w, "Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Registrant response type (matches API)
type Registrant struct {
	Name         string    `json:"name" yaml:"name"`
	RegisteredAt time.Time `json:"registered_at" yaml:"registered_at"`
	IsGuest      bool      `json:"is_guest,omitempty" yaml:"is_guest,omitempty"`
	Sponsor      string    `json:"sponsor,omitempty" yaml:"sponsor,omitempty"`
}

// Roster response type
type Roster struct {
	Location       string       `json:"location" yaml:"location"`
	CourtCount     int          `json:"court_count" yaml:"court_count"`
	Courts         int          `json:"courts" yaml:"courts"`
	MaxPlaying     int          `json:"max_playing" yaml:"max_playing"`
	MinToJustify   int          `json:"min_to_justify" yaml:"min_to_justify"`
	AvailableSpots int          `json:"available_spots" yaml:"available_spots"`
	PlayersNeeded  int          `json:"players_needed" yaml:"players_needed"`
	Players        []Registrant `json:"players" yaml:"players"`
	Waitlist       []Registrant `json:"waitlist" yaml:"waitlist"`
}

// Placement response type
type Placement struct {
	Name  string `json:"name" yaml:"name"`
	Queue string `json:"queue" yaml:"queue"`
}

// Change response type
type Change struct {
	Added        []Placement `json:"added,omitempty" yaml:"added,omitempty"`
	Removed      []string    `json:"removed,omitempty" yaml:"removed,omitempty"`
	Promoted     []string    `json:"promoted,omitempty" yaml:"promoted,omitempty"`
	Demoted      []string    `json:"demoted,omitempty" yaml:"demoted,omitempty"`
	CourtsBefore int         `json:"courts_before,omitempty" yaml:"courts_before,omitempty"`
	CourtsAfter  int         `json:"courts_after,omitempty" yaml:"courts_after,omitempty"`
	Location     string      `json:"location,omitempty" yaml:"location,omitempty"`
}

// Result is returned by message, poll vote and courts commands
type Result struct {
	Ignored   bool   `json:"ignored,omitempty" yaml:"ignored,omitempty"`
	Action    string `json:"action,omitempty" yaml:"action,omitempty"`
	Mutated   bool   `json:"mutated" yaml:"mutated"`
	Announced bool   `json:"announced" yaml:"announced"`
	Reason    string `json:"reason,omitempty" yaml:"reason,omitempty"`
	Change    Change `json:"change" yaml:"change"`
	Status    string `json:"status,omitempty" yaml:"status,omitempty"`
}

// StatusResult carries rendered status text
type StatusResult struct {
	Status string `json:"status" yaml:"status"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status" yaml:"status"`
}

func (o *Output) printResult(r Result) {
	if r.Ignored {
		fmt.Fprintln(o.w, "Ignored")
		return
	}

	fmt.Fprintf(o.w, "Action: %s\n", r.Action)
	if !r.Mutated {
		reason := r.Reason
		if reason == "" {
			reason = "none"
		}
		fmt.Fprintf(o.w, "No change (%s)\n", reason)
	}

	c := r.Change
	for _, p := range c.Added {
		fmt.Fprintf(o.w, "Added: %s (%s)\n", p.Name, p.Queue)
	}
	if len(c.Removed) > 0 {
		fmt.Fprintf(o.w, "Removed: %s\n", strings.Join(c.Removed, ", "))
	}
	if len(c.Promoted) > 0 {
		fmt.Fprintf(o.w, "Promoted: %s\n", strings.Join(c.Promoted, ", "))
	}
	if len(c.Demoted) > 0 {
		fmt.Fprintf(o.w, "Demoted: %s\n", strings.Join(c.Demoted, ", "))
	}
	if c.CourtsAfter != 0 && c.CourtsAfter != c.CourtsBefore {
		fmt.Fprintf(o.w, "Courts: %d -> %d\n", c.CourtsBefore, c.CourtsAfter)
	}
	if c.Location != "" {
		fmt.Fprintf(o.w, "Location: %s\n", c.Location)
	}

	if r.Status != "" {
		fmt.Fprintln(o.w)
		fmt.Fprint(o.w, ensureNewline(r.Status))
	}
}

func (o *Output) printRoster(r Roster) {
	fmt.Fprintf(o.w, "Location: %s\n", r.Location)
	fmt.Fprintf(o.w, "Courts: %d\n", r.Courts)
	fmt.Fprintf(o.w, "Players: %d/%d\n", len(r.Players), r.MaxPlaying)
	if r.PlayersNeeded > 0 {
		fmt.Fprintf(o.w, "Players needed: %d\n", r.PlayersNeeded)
	} else {
		fmt.Fprintf(o.w, "Available spots: %d\n", r.AvailableSpots)
	}

	fmt.Fprintf(o.w, "\nPlaying (%d):\n", len(r.Players))
	o.printRegistrants(r.Players)

	if len(r.Waitlist) > 0 {
		fmt.Fprintf(o.w, "\nWaitlist (%d):\n", len(r.Waitlist))
		o.printRegistrants(r.Waitlist)
	}
}

func (o *Output) printRegistrants(list []Registrant) {
	for i, r := range list {
		guest := ""
		if r.IsGuest {
			guest = fmt.Sprintf(" [guest of %s]", r.Sponsor)
		}
		fmt.Fprintf(o.w, "  %d. %s%s\n", i+1, r.Name, guest)
	}
}

func ensureNewline(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
