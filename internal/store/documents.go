package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// Document storage keys. Each key holds one JSON document; every save
// replaces the whole blob so readers never observe a partial write.
const (
	DocMastery = "mastery"
	DocHistory = "history"
)

// DocumentRepo provides keyed access to the persisted JSON documents.
type DocumentRepo interface {
	// Load returns the raw document bytes, or nil if the key has never
	// been written.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save atomically replaces the document under key.
	Save(ctx context.Context, key string, data []byte) error

	// Delete removes the document under key. Deleting an absent key is
	// not an error.
	Delete(ctx context.Context, key string) error
}

type documentRepo struct {
	db *sqlx.DB
}

func (r *documentRepo) Load(ctx context.Context, key string) ([]byte, error) {
	var data string
	err := r.db.GetContext(ctx, &data, `SELECT data FROM documents WHERE key = ?`, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("load document %q: %w", key, err)
	}
	return []byte(data), nil
}

func (r *documentRepo) Save(ctx context.Context, key string, data []byte) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO documents (key, data, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		key, string(data), time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("save document %q: %w", key, err)
	}
	return nil
}

func (r *documentRepo) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM documents WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("delete document %q: %w", key, err)
	}
	return nil
}
