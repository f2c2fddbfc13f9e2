package wisp

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumawisp/luma"
)

func msg(role, content string) luma.Message {
	return luma.Message{ID: content, Role: role, Content: content, Timestamp: "2025-01-01T00:00:00Z"}
}

func TestSystemPromptIncludesPersonality(t *testing.T) {
	p := Lookup(luma.RealmFire)
	prompt := SystemPrompt(luma.RealmFire, nil)

	assert.Contains(t, prompt, "FIRE Luma")
	assert.Contains(t, prompt, p.VoiceTone)
	assert.Contains(t, prompt, p.Greeting)
	assert.Contains(t, prompt, strings.Join(p.SpecialPhrases, ", "))
	assert.Contains(t, prompt, strings.Join(p.Teachings, ", "))
	assert.Contains(t, prompt, "Respond as fire Luma would")
}

func TestSystemPromptTruncatesHistoryToLastThree(t *testing.T) {
	history := []luma.Message{
		msg(luma.RoleUser, "one"),
		msg(luma.RoleLuma, "two"),
		msg(luma.RoleUser, "three"),
		msg(luma.RoleLuma, "four"),
		msg(luma.RoleUser, "five"),
	}
	prompt := SystemPrompt(luma.RealmWater, history)

	assert.NotContains(t, prompt, "user: one")
	assert.NotContains(t, prompt, "luma: two")

	idxThree := strings.Index(prompt, "user: three")
	idxFour := strings.Index(prompt, "luma: four")
	idxFive := strings.Index(prompt, "user: five")
	require.GreaterOrEqual(t, idxThree, 0)
	require.GreaterOrEqual(t, idxFour, 0)
	require.GreaterOrEqual(t, idxFive, 0)

	// Original order is preserved.
	assert.Less(t, idxThree, idxFour)
	assert.Less(t, idxFour, idxFive)
}

func TestSystemPromptEmptyHistory(t *testing.T) {
	prompt := SystemPrompt(luma.RealmAir, nil)
	assert.Contains(t, prompt, "Previous messages: \n")
}

func TestSystemPromptDeterministic(t *testing.T) {
	history := []luma.Message{msg(luma.RoleUser, "hi")}
	assert.Equal(t,
		SystemPrompt(luma.RealmEarth, history),
		SystemPrompt(luma.RealmEarth, history))
}

func TestThoughtPrompt(t *testing.T) {
	prompt := ThoughtPrompt(luma.RealmWater)
	assert.Contains(t, prompt, "water form")
	assert.Contains(t, prompt, "emotional flow and adaptation and healing and intuition")
	assert.Contains(t, prompt, fmt.Sprintf("Use %s realm imagery", luma.RealmWater))
}
