package random

import "math/rand/v2"

// Alphanumeric is the alphabet used for generated identifiers
const Alphanumeric = "abcdefghijklmnopqrstuvwxyz0123456789"

// Random provides random number generation that can be mocked for testing
type Random interface {
	// Intn returns a random int in [0, n), or 0 when n <= 0
	Intn(n int) int

	// String generates a random string of the given length from the given alphabet
	String(length int, alphabet string) string
}

// Source implements Random with the runtime's seeded generator. It is safe
// for concurrent use and must not be used for secrets.
type Source struct{}

// New creates a new Source
func New() Source {
	return Source{}
}

// Intn returns a pseudo-random int in [0, n)
func (Source) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return rand.IntN(n)
}

// String generates a pseudo-random string of the given length from alphabet
func (s Source) String(length int, alphabet string) string {
	if length <= 0 || alphabet == "" {
		return ""
	}
	b := make([]byte, length)
	for i := range b {
		b[i] = alphabet[s.Intn(len(alphabet))]
	}
	return string(b)
}
