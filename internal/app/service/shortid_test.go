package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShortIDShape(t *testing.T) {
	for i := 0; i < 1000; i++ {
		id, err := NewShortID()
		require.NoError(t, err)
		require.Len(t, id, ShortIDLength)

		for _, c := range id {
			require.True(t, strings.ContainsRune(ShortIDAlphabet, c), "unexpected character %q in %q", c, id)
		}
	}
}

func TestNewShortIDSpread(t *testing.T) {
	// Not a uniformity proof, just a guard against a stuck source.
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id, err := NewShortID()
		require.NoError(t, err)
		seen[id] = struct{}{}
	}
	assert.Greater(t, len(seen), 95)
}
