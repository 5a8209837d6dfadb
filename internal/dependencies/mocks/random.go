package mocks

import (
	"sync"

	"github.com/mcoot/courtbot/internal/dependencies/random"
)

// MockRandom replays queued results. Intn clamps queued values into [0, n)
// and returns 0 once the queue is empty; String returns "" likewise.
type MockRandom struct {
	mu      sync.Mutex
	ints    []int
	strings []string
}

var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Intn returns the next queued result
func (r *MockRandom) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.ints) == 0 || n <= 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return min(max(v, 0), n-1)
}

// String returns the next queued result
func (r *MockRandom) String(int, string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.strings) == 0 {
		return ""
	}
	v := r.strings[0]
	r.strings = r.strings[1:]
	return v
}

// QueueIntn adds values to the Intn result queue
func (r *MockRandom) QueueIntn(values ...int) {
	r.mu.Lock()
	r.ints = append(r.ints, values...)
	r.mu.Unlock()
}

// QueueString adds values to the String result queue
func (r *MockRandom) QueueString(values ...string) {
	r.mu.Lock()
	r.strings = append(r.strings, values...)
	r.mu.Unlock()
}
