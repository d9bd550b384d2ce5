package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeneratePlayerID(t *testing.T) {
	// When: two IDs are generated
	first := GeneratePlayerID()
	second := GeneratePlayerID()

	// Then: both are valid and distinct
	assert.True(t, IsValidID(first))
	assert.True(t, IsValidID(second))
	assert.NotEqual(t, first, second)
}

func TestIsValidID(t *testing.T) {
	assert.True(t, IsValidID(GenerateNewSessionID()))
	assert.False(t, IsValidID(""))
	assert.False(t, IsValidID("player-1"))
}
