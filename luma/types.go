// Package luma holds the record types shared by the Luma Wisp backend:
// realms, messages, users, conversations and challenges.
package luma

import (
	"fmt"
	"time"
)

// Realm is one of the five fixed thematic personas. The set is closed;
// everything realm-flavored keys off these values.
type Realm string

const (
	RealmAether Realm = "aether"
	RealmFire   Realm = "fire"
	RealmWater  Realm = "water"
	RealmEarth  Realm = "earth"
	RealmAir    Realm = "air"
)

// Realms returns every realm in display order.
func Realms() []Realm {
	return []Realm{RealmAether, RealmFire, RealmWater, RealmEarth, RealmAir}
}

// ParseRealm validates a realm string from the outside world. Handlers call
// this at the boundary so the engine only ever sees valid realms.
func ParseRealm(s string) (Realm, error) {
	switch r := Realm(s); r {
	case RealmAether, RealmFire, RealmWater, RealmEarth, RealmAir:
		return r, nil
	}
	return "", fmt.Errorf("unknown realm %q", s)
}

// Message roles. The companion's wire value is "luma", matching the client
// schema.
const (
	RoleUser = "user"
	RoleLuma = "luma"
)

// Message is a single chat turn. Immutable once created; conversations only
// ever append.
type Message struct {
	ID        string `json:"id"`
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
	Realm     Realm  `json:"realm,omitempty"`
}

// User is an academy member. Wispstars and crystal crumbs only ever go up.
type User struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	Password      string    `json:"-"`
	Wispstars     int       `json:"wispstars"`
	CrystalCrumbs int       `json:"crystalCrumbs"`
	CurrentRealm  Realm     `json:"currentRealm"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Conversation is an ordered message list owned by the store. The chat flow
// appends exactly two messages per turn and writes the list back wholesale.
type Conversation struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId,omitempty"`
	Messages  []Message `json:"messages"`
	Realm     Realm     `json:"realm"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Challenge records a completed activity. Completed is set at creation time;
// there is no pending state in this product.
type Challenge struct {
	ID            string     `json:"id"`
	UserID        string     `json:"userId"`
	ChallengeType string     `json:"challengeType"`
	Realm         Realm      `json:"realm,omitempty"`
	Completed     *time.Time `json:"completed,omitempty"`
}
