package wisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumawisp/luma"
)

func TestLookupCoversEveryRealm(t *testing.T) {
	for _, realm := range luma.Realms() {
		p := Lookup(realm)
		assert.Equal(t, realm, p.Realm)
		assert.NotEmpty(t, p.Greeting)
		assert.NotEmpty(t, p.VoiceTone)
		assert.NotEmpty(t, p.SpecialPhrases)
		assert.NotEmpty(t, p.Teachings)
	}
}

func TestEveryRealmHasFallbackTables(t *testing.T) {
	for _, realm := range luma.Realms() {
		require.NotEmpty(t, defaultResponses[realm], "default response for %s", realm)
		require.NotEmpty(t, thoughtFallbacks[realm], "thought fallback for %s", realm)
	}
}
