package randutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandString(t *testing.T) {
	s := RandString(16)
	assert.Len(t, s, 16)
	for _, r := range s {
		assert.True(t, strings.ContainsRune(alphanum, r), "unexpected character %q", r)
	}
}

func TestKeyLengths(t *testing.T) {
	assert.Len(t, PasteKey(), PasteKeyLength)
	assert.Len(t, SessionKey(), SessionKeyLength)
}

func TestRandStringVaries(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		seen[RandString(SessionKeyLength)] = true
	}
	assert.Len(t, seen, 50, "32-char keys must not collide in practice")
}
