package wisp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lumawisp/luma"
)

func TestFallbackResponseGreeting(t *testing.T) {
	got := FallbackResponse("hello there", luma.RealmFire)
	assert.Equal(t, Lookup(luma.RealmFire).Greeting, got)
}

func TestFallbackResponseGreetingWinsOverChallenge(t *testing.T) {
	// Rule order matters: the greeting rule precedes the challenge rule.
	got := FallbackResponse("hello, I need a challenge", luma.RealmWater)
	assert.Equal(t, Lookup(luma.RealmWater).Greeting, got)
}

func TestFallbackResponseHelp(t *testing.T) {
	got := FallbackResponse("can you help me?", luma.RealmEarth)
	assert.Contains(t, got, "earth realm")
	assert.Contains(t, got, "grounding, growth, patience, natural wisdom")
}

func TestFallbackResponseChallenge(t *testing.T) {
	got := FallbackResponse("give me an activity", luma.RealmAir)
	assert.Contains(t, got, Lookup(luma.RealmAir).SpecialPhrases[0])
}

func TestFallbackResponseName(t *testing.T) {
	got := FallbackResponse("do you have a name?", luma.RealmAether)
	assert.Contains(t, got, "Luma Wisp")
	assert.Contains(t, got, "aether guide")
}

func TestFallbackResponseDefault(t *testing.T) {
	for _, realm := range luma.Realms() {
		got := FallbackResponse("mmm...", realm)
		assert.Equal(t, defaultResponses[realm], got)
		assert.NotEmpty(t, got)
	}
}

func TestFallbackResponseDeterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		assert.Equal(t,
			FallbackResponse("tell me a secret", luma.RealmWater),
			FallbackResponse("tell me a secret", luma.RealmWater))
	}
}
