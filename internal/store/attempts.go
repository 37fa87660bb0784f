package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// AttemptData captures one recorded practice attempt for the
// append-only log.
type AttemptData struct {
	SessionID string
	ItemKey   string
	Direction string
	Tier      string
	Outcome   string
	CreatedAt time.Time
}

// ActivitySummary aggregates attempt-log rows over a time window.
type ActivitySummary struct {
	Attempts int `db:"attempts"`
	FirstTry int `db:"first_try"`
	Sessions int `db:"sessions"`
	Items    int `db:"items"`
}

// AttemptRepo provides append and aggregate access to the attempt log.
type AttemptRepo interface {
	// Append records one attempt. Events are never updated or reordered.
	Append(ctx context.Context, data AttemptData) error

	// RecentActivity aggregates attempts recorded at or after since.
	RecentActivity(ctx context.Context, since time.Time) (ActivitySummary, error)

	// Reset deletes the entire attempt log.
	Reset(ctx context.Context) error
}

type attemptRepo struct {
	db *sqlx.DB
}

func (r *attemptRepo) Append(ctx context.Context, data AttemptData) error {
	at := data.CreatedAt
	if at.IsZero() {
		at = time.Now()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO attempts (session_id, item_key, direction, tier, outcome, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		data.SessionID, data.ItemKey, data.Direction, data.Tier, data.Outcome,
		at.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("append attempt: %w", err)
	}
	return nil
}

func (r *attemptRepo) RecentActivity(ctx context.Context, since time.Time) (ActivitySummary, error) {
	var summary ActivitySummary
	err := r.db.GetContext(ctx, &summary,
		`SELECT COUNT(*) AS attempts,
			COALESCE(SUM(CASE WHEN outcome = 'first_try' THEN 1 ELSE 0 END), 0) AS first_try,
			COUNT(DISTINCT session_id) AS sessions,
			COUNT(DISTINCT item_key) AS items
		 FROM attempts
		 WHERE created_at >= ?`,
		since.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return ActivitySummary{}, fmt.Errorf("recent activity: %w", err)
	}
	return summary, nil
}

func (r *attemptRepo) Reset(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM attempts`)
	if err != nil {
		return fmt.Errorf("reset attempts: %w", err)
	}
	return nil
}
