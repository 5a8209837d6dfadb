// Package capacity turns a court count, or a headcount, into playing limits.
package capacity

import (
	"fmt"

	"github.com/mcoot/courtbot/internal/model"
)

// Mode selects how the court count is determined
type Mode string

const (
	// ModeManual uses the court count set by the organizer
	ModeManual Mode = "manual"
	// ModeAuto derives the court count from the number of registrants
	ModeAuto Mode = "auto"
)

const (
	DefaultMaxPerCourt = 5
	DefaultMinPerCourt = 4
)

// Policy computes playing limits
type Policy interface {
	Mode() Mode
	// Limits returns the capacity given the stored court count and the total
	// number of registrants (players plus waitlist)
	Limits(courtCount, registrants int) model.Limits
}

// CapacityFor returns the limits for a given number of courts
func CapacityFor(courts, maxPerCourt, minPerCourt int) model.Limits {
	courts = max(1, courts)
	return model.Limits{
		Courts:       courts,
		MaxPlaying:   courts * maxPerCourt,
		MinToJustify: courts * minPerCourt,
	}
}

// CourtsFor returns how many courts a headcount justifies, never fewer than one
func CourtsFor(registrants, minPerCourt int) int {
	if minPerCourt <= 0 {
		return 1
	}
	return max(1, registrants/minPerCourt)
}

// Manual uses the organizer's court count as-is
type Manual struct {
	MaxPerCourt int
	MinPerCourt int
}

var _ Policy = Manual{}

func (Manual) Mode() Mode { return ModeManual }

func (p Manual) Limits(courtCount, _ int) model.Limits {
	return CapacityFor(courtCount, p.MaxPerCourt, p.MinPerCourt)
}

// Auto ignores the stored court count and derives it from headcount
type Auto struct {
	MaxPerCourt int
	MinPerCourt int
}

var _ Policy = Auto{}

func (Auto) Mode() Mode { return ModeAuto }

func (p Auto) Limits(_, registrants int) model.Limits {
	return CapacityFor(CourtsFor(registrants, p.MinPerCourt), p.MaxPerCourt, p.MinPerCourt)
}

// New returns the policy for mode. An empty mode selects manual; non-positive
// per-court sizes fall back to the defaults.
func New(mode Mode, maxPerCourt, minPerCourt int) (Policy, error) {
	if maxPerCourt <= 0 {
		maxPerCourt = DefaultMaxPerCourt
	}
	if minPerCourt <= 0 {
		minPerCourt = DefaultMinPerCourt
	}

	switch mode {
	case "", ModeManual:
		return Manual{MaxPerCourt: maxPerCourt, MinPerCourt: minPerCourt}, nil
	case ModeAuto:
		return Auto{MaxPerCourt: maxPerCourt, MinPerCourt: minPerCourt}, nil
	default:
		return nil, fmt.Errorf("invalid capacity mode %q: must be 'manual' or 'auto'", mode)
	}
}
