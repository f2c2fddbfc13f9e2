package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"lumawisp/luma"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS users (
	id TEXT PRIMARY KEY,
	username TEXT NOT NULL UNIQUE,
	password TEXT NOT NULL,
	wispstars INTEGER NOT NULL DEFAULT 0,
	crystal_crumbs INTEGER NOT NULL DEFAULT 0,
	current_realm TEXT NOT NULL DEFAULT 'aether',
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS luma_conversations (
	id TEXT PRIMARY KEY,
	user_id TEXT,
	messages TEXT NOT NULL,
	realm TEXT NOT NULL,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS challenges (
	id TEXT PRIMARY KEY,
	user_id TEXT,
	challenge_type TEXT NOT NULL,
	completed TEXT,
	realm TEXT
);
`

// SQLiteStore persists the same records as MemStore in a local SQLite file.
// Message lists live in a JSON column; replace semantics match the memory
// store (one UPDATE per turn, last write wins).
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// The modernc driver is happiest with a single writer connection.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) GetUser(ctx context.Context, id string) (*luma.User, error) {
	return s.queryUser(ctx, `SELECT id, username, password, wispstars, crystal_crumbs, current_realm, created_at FROM users WHERE id = ?`, id)
}

func (s *SQLiteStore) GetUserByUsername(ctx context.Context, username string) (*luma.User, error) {
	return s.queryUser(ctx, `SELECT id, username, password, wispstars, crystal_crumbs, current_realm, created_at FROM users WHERE username = ?`, username)
}

func (s *SQLiteStore) queryUser(ctx context.Context, query string, arg any) (*luma.User, error) {
	var (
		u       luma.User
		realm   string
		created string
	)
	err := s.db.QueryRowContext(ctx, query, arg).
		Scan(&u.ID, &u.Username, &u.Password, &u.Wispstars, &u.CrystalCrumbs, &realm, &created)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	u.CurrentRealm = luma.Realm(realm)
	u.CreatedAt = parseTime(created)
	return &u, nil
}

func (s *SQLiteStore) CreateUser(ctx context.Context, username, password string) (*luma.User, error) {
	u := luma.User{
		ID:           uuid.NewString(),
		Username:     username,
		Password:     password,
		CurrentRealm: luma.RealmAether,
		CreatedAt:    time.Now().UTC(),
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (id, username, password, wispstars, crystal_crumbs, current_realm, created_at) VALUES (?, ?, ?, 0, 0, ?, ?)`,
		u.ID, u.Username, u.Password, string(u.CurrentRealm), formatTime(u.CreatedAt))
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *SQLiteStore) UpdateUser(ctx context.Context, id string, upd UserUpdate) (*luma.User, error) {
	u, err := s.GetUser(ctx, id)
	if err != nil || u == nil {
		return nil, err
	}
	merged := applyUserUpdate(*u, upd)
	_, err = s.db.ExecContext(ctx,
		`UPDATE users SET password = ?, wispstars = ?, crystal_crumbs = ?, current_realm = ? WHERE id = ?`,
		merged.Password, merged.Wispstars, merged.CrystalCrumbs, string(merged.CurrentRealm), id)
	if err != nil {
		return nil, err
	}
	return &merged, nil
}

func (s *SQLiteStore) GetConversation(ctx context.Context, id string) (*luma.Conversation, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, user_id, messages, realm, created_at, updated_at FROM luma_conversations WHERE id = ?`, id)
	c, err := scanConversation(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *SQLiteStore) GetConversationsByUser(ctx context.Context, userID string) ([]luma.Conversation, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, messages, realm, created_at, updated_at FROM luma_conversations WHERE user_id = ? ORDER BY created_at`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []luma.Conversation
	for rows.Next() {
		c, err := scanConversation(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func scanConversation(scan func(...any) error) (*luma.Conversation, error) {
	var (
		c        luma.Conversation
		userID   sql.NullString
		messages string
		realm    string
		created  string
		updated  string
	)
	if err := scan(&c.ID, &userID, &messages, &realm, &created, &updated); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(messages), &c.Messages); err != nil {
		return nil, fmt.Errorf("decode messages for conversation %s: %w", c.ID, err)
	}
	c.UserID = userID.String
	c.Realm = luma.Realm(realm)
	c.CreatedAt = parseTime(created)
	c.UpdatedAt = parseTime(updated)
	return &c, nil
}

func (s *SQLiteStore) CreateConversation(ctx context.Context, userID string, messages []luma.Message, realm luma.Realm) (*luma.Conversation, error) {
	now := time.Now().UTC()
	c := luma.Conversation{
		ID:        uuid.NewString(),
		UserID:    userID,
		Messages:  cloneMessages(messages),
		Realm:     realm,
		CreatedAt: now,
		UpdatedAt: now,
	}
	encoded, err := json.Marshal(c.Messages)
	if err != nil {
		return nil, err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO luma_conversations (id, user_id, messages, realm, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		c.ID, nullable(userID), string(encoded), string(realm), formatTime(now), formatTime(now))
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *SQLiteStore) UpdateConversation(ctx context.Context, id string, messages []luma.Message) (*luma.Conversation, error) {
	c, err := s.GetConversation(ctx, id)
	if err != nil || c == nil {
		return nil, err
	}
	c.Messages = cloneMessages(messages)
	c.UpdatedAt = time.Now().UTC()
	encoded, err := json.Marshal(c.Messages)
	if err != nil {
		return nil, err
	}
	_, err = s.db.ExecContext(ctx,
		`UPDATE luma_conversations SET messages = ?, updated_at = ? WHERE id = ?`,
		string(encoded), formatTime(c.UpdatedAt), id)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *SQLiteStore) GetUserChallenges(ctx context.Context, userID string) ([]luma.Challenge, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, challenge_type, completed, realm FROM challenges WHERE user_id = ?`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []luma.Challenge
	for rows.Next() {
		var (
			ch        luma.Challenge
			completed sql.NullString
			realm     sql.NullString
		)
		if err := rows.Scan(&ch.ID, &ch.UserID, &ch.ChallengeType, &completed, &realm); err != nil {
			return nil, err
		}
		if completed.Valid {
			t := parseTime(completed.String)
			ch.Completed = &t
		}
		ch.Realm = luma.Realm(realm.String)
		out = append(out, ch)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) CreateChallenge(ctx context.Context, userID, challengeType string, realm luma.Realm, completed *time.Time) (*luma.Challenge, error) {
	ch := luma.Challenge{
		ID:            uuid.NewString(),
		UserID:        userID,
		ChallengeType: challengeType,
		Realm:         realm,
		Completed:     completed,
	}
	var completedCol any
	if completed != nil {
		completedCol = formatTime(*completed)
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO challenges (id, user_id, challenge_type, completed, realm) VALUES (?, ?, ?, ?, ?)`,
		ch.ID, ch.UserID, ch.ChallengeType, completedCol, nullable(string(realm)))
	if err != nil {
		return nil, err
	}
	return &ch, nil
}

func (s *SQLiteStore) CompleteChallenge(ctx context.Context, id string) (*luma.Challenge, error) {
	var (
		ch        luma.Challenge
		completed sql.NullString
		realm     sql.NullString
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, user_id, challenge_type, completed, realm FROM challenges WHERE id = ?`, id).
		Scan(&ch.ID, &ch.UserID, &ch.ChallengeType, &completed, &realm)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	ch.Completed = &now
	ch.Realm = luma.Realm(realm.String)
	_, err = s.db.ExecContext(ctx, `UPDATE challenges SET completed = ? WHERE id = ?`, formatTime(now), id)
	if err != nil {
		return nil, err
	}
	return &ch, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
