package wisp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"lumawisp/luma"
)

type stubGenerator struct {
	text string
	err  error

	lastSystem      string
	lastUser        string
	lastMaxTokens   int32
	lastTemperature float32
}

func (s *stubGenerator) Generate(_ context.Context, system, user string, maxTokens int32, temperature float32) (string, error) {
	s.lastSystem = system
	s.lastUser = user
	s.lastMaxTokens = maxTokens
	s.lastTemperature = temperature
	return s.text, s.err
}

func newTestEngine(gen Generator) *Engine {
	return NewEngine(gen, zap.NewNop().Sugar(), time.Second)
}

func TestChatResponseSuccess(t *testing.T) {
	gen := &stubGenerator{text: "Hello little flame-dancer! 🔥"}
	e := newTestEngine(gen)

	got := e.ChatResponse(context.Background(), "hi Luma", luma.RealmFire, nil)

	assert.Equal(t, "Hello little flame-dancer! 🔥", got)
	assert.Equal(t, "hi Luma", gen.lastUser)
	assert.Equal(t, SystemPrompt(luma.RealmFire, nil), gen.lastSystem)
	assert.Equal(t, int32(150), gen.lastMaxTokens)
	assert.InDelta(t, 0.8, float64(gen.lastTemperature), 1e-6)
}

func TestChatResponseFallsBackOnFailure(t *testing.T) {
	gen := &stubGenerator{err: errors.New("quota exceeded")}
	e := newTestEngine(gen)

	msg := "what should I do today?"
	got := e.ChatResponse(context.Background(), msg, luma.RealmEarth, nil)

	assert.Equal(t, FallbackResponse(msg, luma.RealmEarth), got)
	assert.NotEmpty(t, got)
}

func TestChatResponseHelloFireFallsBackToGreeting(t *testing.T) {
	gen := &stubGenerator{err: errors.New("network down")}
	e := newTestEngine(gen)

	got := e.ChatResponse(context.Background(), "hello", luma.RealmFire, nil)

	assert.Equal(t, Lookup(luma.RealmFire).Greeting, got)
}

func TestChatResponseEmptyPayloadUsesPlaceholder(t *testing.T) {
	gen := &stubGenerator{text: "   "}
	e := newTestEngine(gen)

	got := e.ChatResponse(context.Background(), "hi", luma.RealmAir, nil)

	assert.Equal(t, emptyReplyPlaceholder, got)
}

func TestChatResponseNeverEmpty(t *testing.T) {
	cases := []Generator{
		&stubGenerator{},
		&stubGenerator{err: errors.New("boom")},
		&stubGenerator{text: "fine"},
	}
	for _, gen := range cases {
		e := newTestEngine(gen)
		got := e.ChatResponse(context.Background(), "zzz", luma.RealmAether, nil)
		assert.NotEmpty(t, got)
	}
}

func TestWispThoughtSuccess(t *testing.T) {
	gen := &stubGenerator{text: "Let every droplet teach you patience. 💧"}
	e := newTestEngine(gen)

	got := e.WispThought(context.Background(), luma.RealmWater)

	assert.Equal(t, "Let every droplet teach you patience. 💧", got)
	assert.Equal(t, ThoughtPrompt(luma.RealmWater), gen.lastSystem)
	assert.Equal(t, thoughtUserTurn, gen.lastUser)
	assert.Equal(t, int32(50), gen.lastMaxTokens)
	assert.InDelta(t, 0.9, float64(gen.lastTemperature), 1e-6)
}

func TestWispThoughtWaterFallback(t *testing.T) {
	gen := &stubGenerator{err: errors.New("timeout")}
	e := newTestEngine(gen)

	got := e.WispThought(context.Background(), luma.RealmWater)

	assert.Equal(t, thoughtFallbacks[luma.RealmWater], got)
}

func TestWispThoughtEmptyPayloadUsesPlaceholder(t *testing.T) {
	gen := &stubGenerator{}
	e := newTestEngine(gen)

	got := e.WispThought(context.Background(), luma.RealmEarth)

	assert.Equal(t, emptyThoughtPlaceholder, got)
}
