// Package store persists users, conversations and challenges. The default
// implementation is in-memory; a SQLite-backed one is available for
// deployments that want state to survive a restart.
package store

import (
	"context"
	"time"

	"lumawisp/luma"
)

// Store is the persistence contract the handlers program against. Lookups
// for unknown ids return (nil, nil): missing records are "absent", not
// errors. Updates are last-write-wins per id.
type Store interface {
	GetUser(ctx context.Context, id string) (*luma.User, error)
	GetUserByUsername(ctx context.Context, username string) (*luma.User, error)
	CreateUser(ctx context.Context, username, password string) (*luma.User, error)
	UpdateUser(ctx context.Context, id string, upd UserUpdate) (*luma.User, error)

	GetConversation(ctx context.Context, id string) (*luma.Conversation, error)
	GetConversationsByUser(ctx context.Context, userID string) ([]luma.Conversation, error)
	CreateConversation(ctx context.Context, userID string, messages []luma.Message, realm luma.Realm) (*luma.Conversation, error)
	UpdateConversation(ctx context.Context, id string, messages []luma.Message) (*luma.Conversation, error)

	GetUserChallenges(ctx context.Context, userID string) ([]luma.Challenge, error)
	CreateChallenge(ctx context.Context, userID, challengeType string, realm luma.Realm, completed *time.Time) (*luma.Challenge, error)
	CompleteChallenge(ctx context.Context, id string) (*luma.Challenge, error)
}

// UserUpdate names the user fields that may change after creation. Nil
// fields are left untouched.
type UserUpdate struct {
	Password      *string
	Wispstars     *int
	CrystalCrumbs *int
	CurrentRealm  *luma.Realm
}

func applyUserUpdate(u luma.User, upd UserUpdate) luma.User {
	if upd.Password != nil {
		u.Password = *upd.Password
	}
	if upd.Wispstars != nil {
		u.Wispstars = *upd.Wispstars
	}
	if upd.CrystalCrumbs != nil {
		u.CrystalCrumbs = *upd.CrystalCrumbs
	}
	if upd.CurrentRealm != nil {
		u.CurrentRealm = *upd.CurrentRealm
	}
	return u
}

func cloneMessages(messages []luma.Message) []luma.Message {
	if messages == nil {
		return nil
	}
	out := make([]luma.Message, len(messages))
	copy(out, messages)
	return out
}
