package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeededSource(t *testing.T) {
	t.Run("Equal seeds produce equal streams", func(t *testing.T) {
		// Given: two sources with the same seed
		first := NewSeededSource(42)
		second := NewSeededSource(42)

		// Then: their draws match
		for i := 0; i < 100; i++ {
			require.Equal(t, first.Intn(1000), second.Intn(1000))
			require.InDelta(t, first.Float64(), second.Float64(), 0)
		}
	})

	t.Run("Draws stay in range", func(t *testing.T) {
		source := NewSeededSource(7)

		for i := 0; i < 1000; i++ {
			n := source.Intn(9)
			f := source.Float64()

			assert.GreaterOrEqual(t, n, 0)
			assert.Less(t, n, 9)
			assert.GreaterOrEqual(t, f, 0.0)
			assert.Less(t, f, 1.0)
		}
	})
}

func TestGenerateIDs(t *testing.T) {
	// When: generating ids
	gameID := GenerateGameID()
	sessionID := GenerateNewSessionID()

	// Then: they are non-empty and distinct
	assert.NotEmpty(t, gameID)
	assert.NotEmpty(t, sessionID)
	assert.NotEqual(t, gameID, sessionID)
	assert.NotEqual(t, GenerateGameID(), GenerateGameID())
}
