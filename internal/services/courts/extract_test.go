package courts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		current int
		want    int
		ok      bool
	}{
		{"booked count", "I booked 2 courts", 1, 2, true},
		{"book count", "book 3", 1, 3, true},
		{"courts colon", "Courts: 4", 1, 4, true},
		{"have count", "we have 3 courts now", 1, 3, true},
		{"another court", "I booked another court", 2, 3, true},
		{"one more court", "book one more court please", 1, 2, true},
		{"cancelled a court", "Cancelled a court, sorry", 3, 2, true},
		{"lost a court", "we lost a court", 2, 1, true},
		{"cancel never below one", "cancel court", 1, 1, true},
		{"only count", "only 1 court this week", 3, 1, true},
		{"zero rejected", "booked 0 courts", 2, 0, false},
		{"no pattern", "see you all saturday", 2, 0, false},
		{"huge number overflows", "booked 99999999999999999999 courts", 1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Extract(tt.text, tt.current)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
