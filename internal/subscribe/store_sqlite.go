package subscribe

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// SQLiteStore keeps subscribers in the subscribers table created by the
// migrations package.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Record(ctx context.Context, sub Subscriber) (bool, error) {
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO subscribers (id, email, subscribed_at) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO NOTHING`,
		sub.ID, sub.Email, sub.SubscribedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return false, fmt.Errorf("inserting subscriber: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("reading rows affected: %w", err)
	}
	return n > 0, nil
}

// Count returns the number of recorded subscribers.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM subscribers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting subscribers: %w", err)
	}
	return n, nil
}
