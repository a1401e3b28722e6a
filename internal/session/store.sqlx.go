package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var _ Store = (*SQLXStore)(nil)

// SQLXStore persists tokens in the upstream_tokens table:
//
//	CREATE TABLE upstream_tokens (
//		session_id    text PRIMARY KEY,
//		access_token  text NOT NULL,
//		refresh_token text NOT NULL,
//		updated_at    timestamptz NOT NULL DEFAULT now()
//	);
type SQLXStore struct {
	db *sqlx.DB
}

func NewSQLXStore(db *sqlx.DB) *SQLXStore {
	return &SQLXStore{db: db}
}

func (s *SQLXStore) GetToken(ctx context.Context, sessionID string) (*Token, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("session: sqlx store is not initialized")
	}
	id, err := normalizeID(sessionID)
	if err != nil {
		return nil, err
	}

	const query = `
		SELECT access_token, refresh_token
		FROM upstream_tokens
		WHERE session_id = $1
	`

	var token Token
	if err := s.db.GetContext(ctx, &token, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("session: get token failed: %w", err)
	}
	return &token, nil
}

func (s *SQLXStore) SetToken(ctx context.Context, sessionID string, token Token) error {
	if s == nil || s.db == nil {
		return errors.New("session: sqlx store is not initialized")
	}
	id, err := normalizeID(sessionID)
	if err != nil {
		return err
	}

	const query = `
INSERT INTO upstream_tokens (session_id, access_token, refresh_token, updated_at)
VALUES ($1, $2, $3, now())
ON CONFLICT (session_id) DO UPDATE
SET access_token = EXCLUDED.access_token,
	refresh_token = EXCLUDED.refresh_token,
	updated_at = now()`

	if _, err := s.db.ExecContext(ctx, query, id, token.AccessToken, token.RefreshToken); err != nil {
		return fmt.Errorf("session: set token failed: %w", err)
	}
	return nil
}

func (s *SQLXStore) Clear(ctx context.Context, sessionID string) error {
	if s == nil || s.db == nil {
		return errors.New("session: sqlx store is not initialized")
	}
	id, err := normalizeID(sessionID)
	if err != nil {
		return err
	}

	const query = `DELETE FROM upstream_tokens WHERE session_id = $1`
	if _, err := s.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("session: clear token failed: %w", err)
	}
	return nil
}
