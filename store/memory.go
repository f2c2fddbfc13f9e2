package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"lumawisp/luma"
)

// MemStore keeps everything in process memory. It is the demo deployment's
// store: no eviction, no durability. The mutex exists because the HTTP layer
// serves requests concurrently; per-id replace is atomic under it.
type MemStore struct {
	mu            sync.RWMutex
	users         map[string]luma.User
	conversations map[string]luma.Conversation
	challenges    map[string]luma.Challenge
}

func NewMemStore() *MemStore {
	return &MemStore{
		users:         make(map[string]luma.User),
		conversations: make(map[string]luma.Conversation),
		challenges:    make(map[string]luma.Challenge),
	}
}

func (s *MemStore) GetUser(_ context.Context, id string) (*luma.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (s *MemStore) GetUserByUsername(_ context.Context, username string) (*luma.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (s *MemStore) CreateUser(_ context.Context, username, password string) (*luma.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := luma.User{
		ID:           uuid.NewString(),
		Username:     username,
		Password:     password,
		CurrentRealm: luma.RealmAether,
		CreatedAt:    time.Now().UTC(),
	}
	s.users[u.ID] = u
	return &u, nil
}

func (s *MemStore) UpdateUser(_ context.Context, id string, upd UserUpdate) (*luma.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	u = applyUserUpdate(u, upd)
	s.users[id] = u
	return &u, nil
}

func (s *MemStore) GetConversation(_ context.Context, id string) (*luma.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.conversations[id]
	if !ok {
		return nil, nil
	}
	c.Messages = cloneMessages(c.Messages)
	return &c, nil
}

func (s *MemStore) GetConversationsByUser(_ context.Context, userID string) ([]luma.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []luma.Conversation
	for _, c := range s.conversations {
		if c.UserID == userID {
			c.Messages = cloneMessages(c.Messages)
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *MemStore) CreateConversation(_ context.Context, userID string, messages []luma.Message, realm luma.Realm) (*luma.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	c := luma.Conversation{
		ID:        uuid.NewString(),
		UserID:    userID,
		Messages:  cloneMessages(messages),
		Realm:     realm,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.conversations[c.ID] = c
	return &c, nil
}

func (s *MemStore) UpdateConversation(_ context.Context, id string, messages []luma.Message) (*luma.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.conversations[id]
	if !ok {
		return nil, nil
	}
	c.Messages = cloneMessages(messages)
	c.UpdatedAt = time.Now().UTC()
	s.conversations[id] = c
	return &c, nil
}

func (s *MemStore) GetUserChallenges(_ context.Context, userID string) ([]luma.Challenge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []luma.Challenge
	for _, ch := range s.challenges {
		if ch.UserID == userID {
			out = append(out, ch)
		}
	}
	return out, nil
}

func (s *MemStore) CreateChallenge(_ context.Context, userID, challengeType string, realm luma.Realm, completed *time.Time) (*luma.Challenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch := luma.Challenge{
		ID:            uuid.NewString(),
		UserID:        userID,
		ChallengeType: challengeType,
		Realm:         realm,
		Completed:     completed,
	}
	s.challenges[ch.ID] = ch
	return &ch, nil
}

func (s *MemStore) CompleteChallenge(_ context.Context, id string) (*luma.Challenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch, ok := s.challenges[id]
	if !ok {
		return nil, nil
	}
	now := time.Now().UTC()
	ch.Completed = &now
	s.challenges[id] = ch
	return &ch, nil
}
