package store

import (
	"context"
	"fmt"
	"time"
)

// Session is the stored offline platform token. AccessToken is ciphertext.
type Session struct {
	ID          string    `db:"id"`
	Shop        string    `db:"shop"`
	AccessToken string    `db:"access_token"`
	Scope       string    `db:"scope"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// OfflineSessionID is the session key for a shop's offline token.
func OfflineSessionID(shop string) string {
	return "offline_" + shop
}

func (s *Store) GetSession(ctx context.Context, shop string) (Session, error) {
	var session Session
	err := s.SelectOne(ctx, &session, TableSessions, Filter{Eq("id", OfflineSessionID(shop))})
	return session, err
}

const sqlSaveSession = `
INSERT INTO sessions (id, shop, access_token, scope)
VALUES ($1, $2, $3, $4)
ON CONFLICT (id) DO UPDATE
SET access_token = EXCLUDED.access_token, scope = EXCLUDED.scope, updated_at = NOW()`

func (s *Store) SaveSession(ctx context.Context, shop, encryptedToken, scope string) error {
	_, err := s.db.ExecContext(ctx, sqlSaveSession, OfflineSessionID(shop), shop, encryptedToken, scope)
	if err != nil {
		s.logger.Error(ctx, "failed to save session", err)
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}
