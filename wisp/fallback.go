package wisp

import (
	"fmt"
	"strings"

	"lumawisp/luma"
)

var defaultResponses = map[luma.Realm]string{
	luma.RealmAether: "The stars whisper secrets of remembering, little one. What ancient memory stirs in your heart? ✨",
	luma.RealmFire:   "Feel the warm energy of transformation flowing through you! What would you like to change or create today? 🔥",
	luma.RealmWater:  "Like gentle waves, let your feelings flow freely. What emotions are moving through you right now? 💧",
	luma.RealmEarth:  "Ground yourself in nature's wisdom, precious seed-keeper. What would you like to grow in your life? 🌍",
	luma.RealmAir:    "Breathe in the freedom of limitless possibilities! What dreams are ready to take flight? 🌬️",
}

// FallbackResponse picks a canned reply for a message when the model is
// unavailable. First matching rule wins; no rule matching falls through to
// the realm's default line. Deterministic, never empty.
func FallbackResponse(message string, realm luma.Realm) string {
	p := Lookup(realm)
	lower := strings.ToLower(message)

	switch {
	case strings.Contains(lower, "hello") || strings.Contains(lower, "hi"):
		return p.Greeting
	case strings.Contains(lower, "help") || strings.Contains(lower, "what"):
		return fmt.Sprintf("I'm here to guide you through the %s realm, little starlighter! Ask me about %s or simply share what's in your heart. ✨",
			realm, strings.Join(p.Teachings, ", "))
	case strings.Contains(lower, "challenge") || strings.Contains(lower, "activity"):
		return fmt.Sprintf("Let's try a %s challenge! Take three deep breaths and imagine yourself filled with %s energy. How does that feel? ✨",
			p.SpecialPhrases[0], realm)
	case strings.Contains(lower, "name"):
		return fmt.Sprintf("I'm Luma Wisp, your %s guide! My name comes from the first spark of light in the cosmos. What does your name mean to you, dear one? ✨",
			realm)
	}

	return defaultResponses[realm]
}
