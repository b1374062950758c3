package usage

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store handles plan_usage persistence.
type Store struct {
	db *pgxpool.Pool
}

// NewStore returns a Store backed by the given connection pool.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// UseRequest atomically checks the daily quota and deducts one request.
// It resets the counter to DefaultDailyQuota when last_reset_day is behind the
// current day. Returns ErrQuotaExhausted when 0 rows are updated (quota
// exhausted or user absent).
func (s *Store) UseRequest(ctx context.Context, uid string) error {
	today := time.Now().UTC().Format("2006-01-02")

	tag, err := s.db.Exec(ctx, `
		UPDATE plan_usage SET
			requests_remaining = CASE WHEN last_reset_day != $1 THEN $2 - 1 ELSE requests_remaining - 1 END,
			last_reset_day = $1
		WHERE uid = $3 AND (last_reset_day < $1 OR requests_remaining > 0)
	`, today, DefaultDailyQuota, uid)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrQuotaExhausted
	}
	return nil
}

// EnsureUser inserts a new plan_usage row for uid with the default allowance.
// If the row already exists the insert is silently skipped.
func (s *Store) EnsureUser(ctx context.Context, uid string) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO plan_usage (uid, requests_remaining, last_reset_day)
		VALUES ($1, $2, $3)
		ON CONFLICT (uid) DO NOTHING
	`, uid, DefaultDailyQuota, time.Now().UTC().Format("2006-01-02"))
	return err
}
