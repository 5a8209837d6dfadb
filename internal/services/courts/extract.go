// Package courts pulls a court count out of the organizer's free-text
// messages ("booked 2 courts", "cancelled a court", "only 1 court now").
package courts

import (
	"regexp"
	"strconv"
)

var (
	// "booked 2", "courts: 2", "court 2", "have 2"
	explicitCount = regexp.MustCompile(`(?i)(?:booked?\s+|courts?:?\s*|have\s+)(\d+)`)
	// "booked another court", "book one more court"
	oneMore = regexp.MustCompile(`(?i)booked?\s+(?:another|one\s+more)\s+court`)
	// "cancelled a court", "cancel court", "lost a court"
	oneLess = regexp.MustCompile(`(?i)cancel(?:led)?\s+(?:a\s+)?court|lost\s+(?:a\s+)?court`)
	// "we have 3 courts", "only 1 court"
	statedCount = regexp.MustCompile(`(?i)(?:we\s+have\s+|only\s+)(\d+)\s+courts?`)
)

// Extract returns the court count text asks for, given the current count.
// Patterns are tried in order; the first match wins. ok is false when no
// pattern matches or the result is not a positive count.
func Extract(text string, current int) (int, bool) {
	if m := explicitCount.FindStringSubmatch(text); m != nil {
		return positive(m[1])
	}

	if oneMore.MatchString(text) {
		return max(1, current+1), true
	}

	if oneLess.MatchString(text) {
		return max(1, current-1), true
	}

	if m := statedCount.FindStringSubmatch(text); m != nil {
		return positive(m[1])
	}

	return 0, false
}

func positive(digits string) (int, bool) {
	n, err := strconv.Atoi(digits)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
