package integrations

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumawisp/luma"
)

const testBaseURL = "https://luma.example.com"

func TestLMSCodeInterpolatesAllKinds(t *testing.T) {
	for _, kind := range []string{LMSWidget, LMSIframe, LMSAPI} {
		code, err := LMSCode(kind, luma.RealmFire, testBaseURL)
		require.NoError(t, err, "kind %s", kind)
		assert.Contains(t, code, "fire", "kind %s", kind)
		assert.Contains(t, code, testBaseURL, "kind %s", kind)
		assert.NotContains(t, code, "{{realm}}", "kind %s", kind)
		assert.NotContains(t, code, "{{baseUrl}}", "kind %s", kind)
	}
}

func TestLMSCodeKeepsPlatformPlaceholders(t *testing.T) {
	// {{student_id}} and {{course_id}} are filled in by the LMS, not by us.
	code, err := LMSCode(LMSIframe, luma.RealmWater, testBaseURL)
	require.NoError(t, err)
	assert.Contains(t, code, "{{student_id}}")
	assert.Contains(t, code, "{{course_id}}")
}

func TestLMSCodeUnknownKind(t *testing.T) {
	_, err := LMSCode("carousel", luma.RealmFire, testBaseURL)
	assert.Error(t, err)
}

func TestTwineCodeInterpolatesAllKinds(t *testing.T) {
	for _, kind := range []string{TwineMacros, TwineWidget, TwineStory} {
		code, err := TwineCode(kind, luma.RealmEarth, testBaseURL)
		require.NoError(t, err, "kind %s", kind)
		assert.Contains(t, code, "earth", "kind %s", kind)
		assert.NotContains(t, code, "{{realm}}", "kind %s", kind)
	}
}

func TestTwineMacrosTargetChatEndpoint(t *testing.T) {
	code, err := TwineCode(TwineMacros, luma.RealmAir, testBaseURL)
	require.NoError(t, err)
	assert.Contains(t, code, testBaseURL+"/api")
	assert.Contains(t, code, "/luma/chat")
	assert.Contains(t, code, "Macro.add")
}

func TestTwineCodeUnknownKind(t *testing.T) {
	_, err := TwineCode("passage", luma.RealmEarth, testBaseURL)
	assert.Error(t, err)
}

func TestRenderReplacesEveryOccurrence(t *testing.T) {
	out := render("a {{realm}} b {{realm}} c {{baseUrl}}", luma.RealmWater, testBaseURL)
	assert.Equal(t, 2, strings.Count(out, "water"))
	assert.Contains(t, out, testBaseURL)
}
