package luma

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRealm(t *testing.T) {
	for _, realm := range Realms() {
		got, err := ParseRealm(string(realm))
		require.NoError(t, err)
		assert.Equal(t, realm, got)
	}
}

func TestParseRealmRejectsUnknown(t *testing.T) {
	for _, s := range []string{"", "lava", "AETHER", "fire "} {
		_, err := ParseRealm(s)
		assert.Error(t, err, "input %q", s)
	}
}
