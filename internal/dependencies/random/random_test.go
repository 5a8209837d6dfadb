package random

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntn(t *testing.T) {
	r := New()

	assert.Equal(t, 0, r.Intn(0))
	assert.Equal(t, 0, r.Intn(-3))
	for range 100 {
		n := r.Intn(5)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 5)
	}
}

func TestString(t *testing.T) {
	r := New()

	assert.Empty(t, r.String(0, Alphanumeric))
	assert.Empty(t, r.String(4, ""))

	s := r.String(12, Alphanumeric)
	assert.Len(t, s, 12)
	for _, c := range s {
		assert.True(t, strings.ContainsRune(Alphanumeric, c))
	}
}
