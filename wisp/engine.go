package wisp

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"lumawisp/luma"
)

// Generator is the outbound edge to the hosted generative-text service. An
// error here means "no usable reply"; an empty string with a nil error means
// the service answered with an empty payload.
type Generator interface {
	Generate(ctx context.Context, system, user string, maxTokens int32, temperature float32) (string, error)
}

// Generation parameters. Replies are kept short by the output-token cap, not
// by truncation; temperatures sit high to keep Luma's phrasing varied.
const (
	chatMaxTokens      = 150
	chatTemperature    = 0.8
	thoughtMaxTokens   = 50
	thoughtTemperature = 0.9

	defaultTimeout = 15 * time.Second

	emptyReplyPlaceholder   = "✨ *sparkles mysteriously* ✨"
	emptyThoughtPlaceholder = "Every moment holds a spark of magic waiting to be discovered! ✨"

	thoughtUserTurn = "Generate a Wisp Thought for today"
)

var thoughtFallbacks = map[luma.Realm]string{
	luma.RealmAether: "Every star remembers the moment it first began to shine. What moment made your inner light brighten? ✨",
	luma.RealmFire:   "Even the smallest spark can warm a whole heart. What little spark will you share today? 🔥",
	luma.RealmWater:  "Still water holds the clearest reflections. What do you see when your heart is calm? 💧",
	luma.RealmEarth:  "The tallest tree began as a seed that chose to grow. What are you growing today? 🌍",
	luma.RealmAir:    "The wind carries every wish somewhere new. Where would your wish like to travel? 🌬️",
}

// Engine produces Luma's replies. Every public method returns text
// unconditionally: a failed model call degrades to the deterministic fallback
// and is logged for operators, never surfaced to the caller.
type Engine struct {
	gen     Generator
	log     *zap.SugaredLogger
	timeout time.Duration
}

// NewEngine wires a generator and logger into an engine. A non-positive
// timeout falls back to the default; the timeout must stay finite or the
// fallback path never engages.
func NewEngine(gen Generator, log *zap.SugaredLogger, timeout time.Duration) *Engine {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Engine{gen: gen, log: log, timeout: timeout}
}

// ChatResponse answers one chat turn. No retries: any generation failure goes
// straight to the keyword fallback.
func (e *Engine) ChatResponse(ctx context.Context, message string, realm luma.Realm, history []luma.Message) string {
	cctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	text, err := e.gen.Generate(cctx, SystemPrompt(realm, history), message, chatMaxTokens, chatTemperature)
	if err != nil {
		e.log.Warnw("chat generation failed, using fallback", "realm", realm, "error", err)
		return FallbackResponse(message, realm)
	}
	if strings.TrimSpace(text) == "" {
		return emptyReplyPlaceholder
	}
	return text
}

// WispThought generates the thought of the day for a realm. Stateless; on
// failure it returns the realm's fixed fallback sentence.
func (e *Engine) WispThought(ctx context.Context, realm luma.Realm) string {
	cctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	text, err := e.gen.Generate(cctx, ThoughtPrompt(realm), thoughtUserTurn, thoughtMaxTokens, thoughtTemperature)
	if err != nil {
		e.log.Warnw("wisp thought generation failed, using fallback", "realm", realm, "error", err)
		return thoughtFallbacks[realm]
	}
	if strings.TrimSpace(text) == "" {
		return emptyThoughtPlaceholder
	}
	return text
}

// Personality exposes the realm table to callers of the engine.
func (e *Engine) Personality(realm luma.Realm) Personality {
	return Lookup(realm)
}
