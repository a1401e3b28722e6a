package idempotency

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

const DefaultTable = "flight_idempotency"

type SQLXStore struct {
	db    *sqlx.DB
	table string
	now   func() time.Time
}

type SQLXStoreOption func(*SQLXStore)

func WithTable(table string) SQLXStoreOption {
	return func(s *SQLXStore) {
		if table = strings.TrimSpace(table); table != "" {
			s.table = table
		}
	}
}

func NewSQLXStore(db *sqlx.DB, opts ...SQLXStoreOption) *SQLXStore {
	s := &SQLXStore{db: db, table: DefaultTable, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type idempotencyRow struct {
	RequestHash    string         `db:"request_hash"`
	Status         string         `db:"status"`
	ResponseStatus sql.NullInt64  `db:"response_status"`
	ResponseBody   []byte         `db:"response_body"`
	ResponseType   sql.NullString `db:"response_content_type"`
	LockedUntil    time.Time      `db:"locked_until"`
}

func (r idempotencyRow) decide(hash string, now time.Time) (Decision, bool) {
	switch {
	case r.RequestHash != hash:
		return Decision{Type: DecisionConflict}, true
	case r.Status == statusCompleted:
		return Decision{Type: DecisionReplay, Response: StoredResponse{
			StatusCode:  int(r.ResponseStatus.Int64),
			Body:        append([]byte(nil), r.ResponseBody...),
			ContentType: r.ResponseType.String,
		}}, true
	case r.Status == statusInProgress && r.LockedUntil.After(now):
		return Decision{Type: DecisionInProgress}, true
	}
	return Decision{}, false
}

func (s *SQLXStore) Acquire(ctx context.Context, request Request) (Decision, error) {
	if s == nil || s.db == nil {
		return Decision{}, errors.New("idempotency: store is not initialized")
	}

	request, err := request.normalize()
	if err != nil {
		return Decision{}, err
	}

	now := s.now().UTC()
	lockUntil := now.Add(request.LockTTL)

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return Decision{}, fmt.Errorf("idempotency: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	selectQuery := fmt.Sprintf(`
SELECT request_hash, status, response_status, response_body, response_content_type, locked_until
FROM %s
WHERE scope = $1 AND idempotency_key = $2
FOR UPDATE`, s.table)

	var existing idempotencyRow
	err = tx.GetContext(ctx, &existing, selectQuery, request.Scope, request.Key)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		insertQuery := fmt.Sprintf(`
INSERT INTO %s (scope, idempotency_key, request_hash, status, locked_until, created_at, updated_at)
VALUES ($1, $2, $3, 'in_progress', $4, now(), now())`, s.table)

		if _, err := tx.ExecContext(ctx, insertQuery, request.Scope, request.Key, request.RequestHash, lockUntil); err != nil {
			return Decision{}, fmt.Errorf("idempotency: insert key: %w", err)
		}
	case err != nil:
		return Decision{}, fmt.Errorf("idempotency: query key: %w", err)
	default:
		if decision, done := existing.decide(request.RequestHash, now); done {
			if err := tx.Commit(); err != nil {
				return Decision{}, fmt.Errorf("idempotency: commit read: %w", err)
			}
			return decision, nil
		}

		// Expired lock: the previous holder never completed.
		reacquireQuery := fmt.Sprintf(`
UPDATE %s
SET status = 'in_progress', locked_until = $3, updated_at = now()
WHERE scope = $1 AND idempotency_key = $2`, s.table)

		if _, err := tx.ExecContext(ctx, reacquireQuery, request.Scope, request.Key, lockUntil); err != nil {
			return Decision{}, fmt.Errorf("idempotency: reacquire key: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return Decision{}, fmt.Errorf("idempotency: commit acquire: %w", err)
	}
	return Decision{Type: DecisionAcquired}, nil
}

func (s *SQLXStore) Complete(ctx context.Context, request Request, response StoredResponse) error {
	if s == nil || s.db == nil {
		return errors.New("idempotency: store is not initialized")
	}

	request, err := request.normalize()
	if err != nil {
		return err
	}

	updateQuery := fmt.Sprintf(`
UPDATE %s
SET status = 'completed', response_status = $4, response_body = $5, response_content_type = $6,
	locked_until = now(), completed_at = now(), updated_at = now()
WHERE scope = $1 AND idempotency_key = $2 AND request_hash = $3`, s.table)

	result, err := s.db.ExecContext(ctx, updateQuery,
		request.Scope, request.Key, request.RequestHash,
		response.StatusCode, response.Body, strings.TrimSpace(response.ContentType),
	)
	if err != nil {
		return fmt.Errorf("idempotency: persist response: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("idempotency: read affected rows: %w", err)
	}
	if affected == 0 {
		return errors.New("idempotency: key not found for completion")
	}
	return nil
}

func (s *SQLXStore) Release(ctx context.Context, request Request) error {
	if s == nil || s.db == nil {
		return errors.New("idempotency: store is not initialized")
	}

	request, err := request.normalize()
	if err != nil {
		return err
	}

	deleteQuery := fmt.Sprintf(`
DELETE FROM %s
WHERE scope = $1 AND idempotency_key = $2 AND request_hash = $3 AND status = 'in_progress'`, s.table)

	if _, err := s.db.ExecContext(ctx, deleteQuery, request.Scope, request.Key, request.RequestHash); err != nil {
		return fmt.Errorf("idempotency: release key: %w", err)
	}
	return nil
}
